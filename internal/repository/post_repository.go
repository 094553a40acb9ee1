package repository

import (
	"fmt"

	"gorm.io/gorm"

	"carpoolhub/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreateForUser inserts the post and bumps the owner's post count in one
// transaction. The increment is a single UPDATE expression so concurrent
// submissions cannot lose counts.
func (r *PostRepository) CreateForUser(post *model.Post, ownerID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("create post failed: %w", err)
		}

		res := tx.Model(&model.User{}).
			Where("id = ?", ownerID).
			Update("post_count", gorm.Expr("post_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("increment post count failed: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListAll returns every post in creation order.
func (r *PostRepository) ListAll() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) CountByUsername(username string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Post{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count posts failed: %w", err)
	}
	return count, nil
}
