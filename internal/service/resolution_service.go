package service

import (
	"context"

	"gorm.io/gorm"

	"lostfound/internal/cache"
	"lostfound/internal/errors"
	"lostfound/internal/model"
	"lostfound/internal/repository"
)

// ResolutionService is the state machine moving a post from open to resolved.
// Each post has exactly two states: open (is_resolved=false) and resolved
// (is_resolved=true), and resolved is terminal. The transition is gated by the
// secret chosen at creation time.
type ResolutionService interface {
	MarkFound(ctx context.Context, id uint, secret string) (*model.Post, error)
	MarkReturned(ctx context.Context, id uint, secret string) (*model.Post, error)
}

type resolutionService struct {
	postRepo repository.PostRepository
	cache    *cache.Client
}

// NewResolutionService creates a new resolution service.
func NewResolutionService(postRepo repository.PostRepository, cache *cache.Client) ResolutionService {
	return &resolutionService{
		postRepo: postRepo,
		cache:    cache,
	}
}

// MarkFound resolves a lost post: the owner's item has been found.
func (s *resolutionService) MarkFound(ctx context.Context, id uint, secret string) (*model.Post, error) {
	return s.resolve(ctx, id, secret, model.PostTypeLost,
		errors.ErrOnlyLostCanBeFound, errors.ErrAlreadyFound, "post.found")
}

// MarkReturned resolves a found post: the item has been returned to its owner.
func (s *resolutionService) MarkReturned(ctx context.Context, id uint, secret string) (*model.Post, error) {
	return s.resolve(ctx, id, secret, model.PostTypeFound,
		errors.ErrOnlyFoundCanBeReturned, errors.ErrAlreadyReturned, "post.returned")
}

// resolve runs the guard chain and, only if every guard passes, commits the
// single terminal transition. Guard order is fixed so error precedence is
// deterministic: existence, type, resolved state, secret presence, secret
// match. Nothing is written on any failure.
func (s *resolutionService) resolve(ctx context.Context, id uint, secret string, wantType model.PostType, wrongTypeErr, alreadyErr error, event string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, err
	}

	if post.Type != wantType {
		return nil, wrongTypeErr
	}

	if post.IsResolved {
		return nil, alreadyErr
	}

	// Legacy records may predate the mandatory-secret creation policy.
	if post.Secret == "" {
		return nil, errors.ErrNoSecretSet
	}

	// Exact case-sensitive comparison, no normalization.
	if post.Secret != secret {
		return nil, errors.ErrIncorrectSecret
	}

	updated, err := s.postRepo.SetResolved(ctx, id)
	if err != nil {
		return nil, err
	}

	// Invalidate the cached list and notify consumers to re-fetch.
	_ = s.cache.Delete(ctx, cache.PostsListKey)
	_ = s.cache.Publish(ctx, cache.PostsEventsChannel, event)

	return updated, nil
}
