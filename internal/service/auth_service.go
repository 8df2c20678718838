// Package service contains the application's business logic.
package service

import (
	"context"

	"scribe/internal/auth"
	"scribe/internal/models"
	"scribe/internal/repository"
	"scribe/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login.
type AuthService struct {
	users repository.UserRepository
	codec *auth.TokenCodec
}

// SignupInput carries the signup request fields.
type SignupInput struct {
	Nickname string
	Password string
	Confirm  string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, codec *auth.TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Signup validates the account fields and creates the user. Passwords are
// stored as bcrypt hashes.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateNickname(in.Nickname); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password, in.Nickname); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password != in.Confirm {
		return nil, models.NewValidationError("password confirmation does not match")
	}

	existing, err := s.users.GetByNickname(ctx, in.Nickname)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}
	if existing != nil {
		return nil, models.NewValidationError("nickname is already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewUnexpectedError(err)
	}

	user := &models.User{
		Nickname: in.Nickname,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, models.NewUnexpectedError(err)
	}

	return user, nil
}

// Login checks the credential pair and issues a token. A wrong nickname and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, nickname, password string) (string, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return "", models.NewUnexpectedError(err)
	}
	if user == nil {
		return "", models.NewValidationError("check your nickname and password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.NewValidationError("check your nickname and password")
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", models.NewUnexpectedError(err)
	}
	return token, nil
}
