package repository

import (
	"context"

	"gorm.io/gorm"

	"lostfound/internal/model"
)

// PostRepository defines post persistence operations. Absence of a record is
// reported as gorm.ErrRecordNotFound and is a normal outcome for FindByID.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	ListAll(ctx context.Context) ([]model.Post, error)
	SetResolved(ctx context.Context, id uint) (*model.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post. The database assigns id and created_at.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post by ID.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll lists every post, newest first.
func (r *postRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// SetResolved flips is_resolved to true and returns the updated record.
// The write is a single atomic row update; guard checks belong to the caller.
func (r *postRepository) SetResolved(ctx context.Context, id uint) (*model.Post, error) {
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_resolved", true).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
