package app

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"carpoolhub/internal/model"
	"carpoolhub/internal/repository"
)

type AccountService struct {
	userRepo *repository.UserRepository
}

type UpdateAccountInput struct {
	UserID   uint
	Username string
	// Password is optional; blank keeps the current hash.
	Password string
	Email    string
}

func NewAccountService(userRepo *repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Update edits the single row identified by UserID. Posts created before the
// edit keep their original username/email snapshot.
func (s *AccountService) Update(input UpdateAccountInput) (*model.User, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if !lenBetween(username, usernameMinLen, usernameMaxLen) ||
		!lenBetween(email, emailMinLen, emailMaxLen) {
		return nil, ErrInvalidInput
	}
	if password != "" && !lenBetween(password, passwordMinLen, passwordMaxLen) {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if username != user.Username {
		existing, err := s.userRepo.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrUsernameExists
		}
	}
	if email != user.Email {
		existing, err := s.userRepo.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailExists
		}
	}

	user.Username = username
	user.Email = email
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
