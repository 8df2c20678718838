package service

import (
	"testing"

	"scribe/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owner := &models.User{ID: 1, Nickname: "alice"}
	stranger := &models.User{ID: 2, Nickname: "bob"}

	assert.True(t, CanMutate(1, owner))
	assert.False(t, CanMutate(1, stranger))
	assert.False(t, CanMutate(2, owner))
	assert.False(t, CanMutate(1, nil))
}
