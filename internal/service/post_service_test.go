package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "lostfound/internal/errors"
	"lostfound/internal/model"
)

// MockUploader is a mock implementation of media.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
}

func TestPostService_CreatePost(t *testing.T) {
	t.Run("creates post with uploaded image urls in order", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockUploader := new(MockUploader)

		mockUploader.On("Upload", mock.Anything, "a.jpg", "image/jpeg", mock.Anything).
			Return("https://cdn.example.com/bucket/lostfound/a.jpg", nil)
		mockUploader.On("Upload", mock.Anything, "b.png", "image/png", mock.Anything).
			Return("https://cdn.example.com/bucket/lostfound/b.png", nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
			Run(func(args mock.Arguments) {
				post := args.Get(1).(*model.Post)
				post.ID = 1
				post.CreatedAt = time.Now()
			}).
			Return(nil)

		svc := NewPostService(mockRepo, mockUploader, nil)
		post, err := svc.CreatePost(context.Background(), validInput(), []ImageUpload{
			{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
			{Filename: "b.png", ContentType: "image/png", Data: []byte("png-bytes")},
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), post.ID)
		assert.False(t, post.IsResolved)
		assert.Equal(t, model.ImageURLList{
			"https://cdn.example.com/bucket/lostfound/a.jpg",
			"https://cdn.example.com/bucket/lostfound/b.png",
		}, post.ImageURLs)
		assert.Equal(t, "pass1234", post.Secret)

		mockRepo.AssertExpectations(t)
		mockUploader.AssertExpectations(t)
	})

	t.Run("any upload failure fails the whole creation", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockUploader := new(MockUploader)

		mockUploader.On("Upload", mock.Anything, "a.jpg", "image/jpeg", mock.Anything).
			Return("https://cdn.example.com/bucket/lostfound/a.jpg", nil).Maybe()
		mockUploader.On("Upload", mock.Anything, "b.png", "image/png", mock.Anything).
			Return("", errors.New("bucket unavailable"))

		svc := NewPostService(mockRepo, mockUploader, nil)
		post, err := svc.CreatePost(context.Background(), validInput(), []ImageUpload{
			{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
			{Filename: "b.png", ContentType: "image/png", Data: []byte("png-bytes")},
		})

		assert.Equal(t, apperrors.ErrUploadFailed, err)
		assert.Nil(t, post)
		// No On("Create"): persistence after a failed upload fails the test.
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation failure never touches the store", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockUploader := new(MockUploader)

		in := validInput()
		in.Secret = "   "

		svc := NewPostService(mockRepo, mockUploader, nil)
		post, err := svc.CreatePost(context.Background(), in, nil)

		assert.Error(t, err)
		assert.Nil(t, post)
		httpErr, ok := err.(*apperrors.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, "Secret password is required", httpErr.Message)
		mockRepo.AssertExpectations(t)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	mockRepo := new(MockPostRepository)
	now := time.Now()
	stored := []model.Post{
		{ID: 3, Type: model.PostTypeLost, Title: "Umbrella", CreatedAt: now},
		{ID: 2, Type: model.PostTypeFound, Title: "Wallet", CreatedAt: now.Add(-time.Hour)},
		{ID: 1, Type: model.PostTypeLost, Title: "Scarf", CreatedAt: now.Add(-2 * time.Hour)},
	}
	mockRepo.On("ListAll", mock.Anything).Return(stored, nil)

	svc := NewPostService(mockRepo, new(MockUploader), nil)
	posts, err := svc.ListPosts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
	mockRepo.AssertExpectations(t)
}
