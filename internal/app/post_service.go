package app

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"carpoolhub/internal/model"
	"carpoolhub/internal/repository"
)

var (
	ErrLocationEmpty = errors.New("location is empty")
	ErrUserNotFound  = errors.New("user not found")
)

type PostService struct {
	postRepo *repository.PostRepository
	userRepo *repository.UserRepository
}

type CreatePostInput struct {
	UserID   uint
	Location string
}

func NewPostService(postRepo *repository.PostRepository, userRepo *repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create snapshots the owner's username and email onto the post. The snapshot
// is frozen at creation time; later account edits do not touch it.
func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, ErrLocationEmpty
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{
		Username: user.Username,
		Email:    user.Email,
		Location: location,
	}
	if err := s.postRepo.CreateForUser(post, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListAll() ([]model.Post, error) {
	return s.postRepo.ListAll()
}
