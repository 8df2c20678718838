package service

import (
	"scribe/internal/models"
)

// CanMutate reports whether the given identity may mutate a resource with the
// recorded owner. A nil identity never owns anything.
func CanMutate(ownerID uint, user *models.User) bool {
	return user != nil && user.ID == ownerID
}
