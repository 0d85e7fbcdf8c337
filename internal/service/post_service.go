package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"lostfound/internal/cache"
	"lostfound/internal/errors"
	"lostfound/internal/media"
	"lostfound/internal/model"
	"lostfound/internal/repository"
)

const postsListTTL = 30 * time.Second

// ImageUpload is one raw image from a multipart creation request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PostService handles listing and creation of posts.
type PostService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	CreatePost(ctx context.Context, in CreatePostInput, images []ImageUpload) (*model.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	uploader  media.Uploader
	cache     *cache.Client
	validator *PostValidator
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, uploader media.Uploader, cache *cache.Client) PostService {
	return &postService{
		postRepo:  postRepo,
		uploader:  uploader,
		cache:     cache,
		validator: NewPostValidator(),
	}
}

// ListPosts returns every post, newest first, via a cache-aside read.
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	if data, _ := s.cache.Get(ctx, cache.PostsListKey); data != nil {
		var posts []model.Post
		if err := json.Unmarshal(data, &posts); err == nil {
			return posts, nil
		}
	}

	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if data, err := json.Marshal(posts); err == nil {
		_ = s.cache.Set(ctx, cache.PostsListKey, data, postsListTTL)
	}

	return posts, nil
}

// CreatePost ingests images, validates the fields, and persists the post.
// Uploads run in parallel and are all-or-nothing: if any fails, nothing is
// persisted. Field validation runs after ingestion, mirroring the creation
// flow's upload-first contract.
func (s *postService) CreatePost(ctx context.Context, in CreatePostInput, images []ImageUpload) (*model.Post, error) {
	urls, err := s.uploadAll(ctx, images)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		return nil, errors.ErrUploadFailed
	}

	in.ImageURLs = urls
	in = s.validator.Normalize(in)
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	post := in.ToPost()
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.PostsListKey)
	_ = s.cache.Publish(ctx, cache.PostsEventsChannel, "post.created")

	return post, nil
}

// uploadAll fans the uploads out concurrently and preserves input order in
// the returned URLs. The first failure cancels the rest.
func (s *postService) uploadAll(ctx context.Context, images []ImageUpload) ([]string, error) {
	urls := make([]string, len(images))
	if len(images) == 0 {
		return urls, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		g.Go(func() error {
			url, err := s.uploader.Upload(gctx, img.Filename, img.ContentType, img.Data)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
