package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lostfound/internal/errors"
	"lostfound/internal/model"
	"lostfound/internal/service"
)

const (
	maxImages    = 5
	maxImageSize = 10 * 1024 * 1024 // 10MB per file
)

// PostHandler handles the post board endpoints.
type PostHandler struct {
	postService       service.PostService
	resolutionService service.ResolutionService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService, resolutionService service.ResolutionService) *PostHandler {
	return &PostHandler{
		postService:       postService,
		resolutionService: resolutionService,
	}
}

// ResolveRequest represents a mark-found or mark-returned request.
type ResolveRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

// ListPosts godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list posts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Failed to fetch posts",
			Code:  "INTERNAL_ERROR",
		})
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary Create a lost or found post
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param type formData string true "lost or found"
// @Param title formData string true "Item title"
// @Param description formData string false "Item description"
// @Param contactEmail formData string false "Contact email"
// @Param contactPhone formData string false "Contact phone"
// @Param secret formData string true "Resolution password"
// @Param images formData file false "Up to 5 images"
// @Success 201 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	in := service.CreatePostInput{
		Type:         c.FormValue("type"),
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		ContactEmail: c.FormValue("contactEmail"),
		ContactPhone: c.FormValue("contactPhone"),
		Secret:       c.FormValue("secret"),
	}

	images, err := h.readImages(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	post, err := h.postService.CreatePost(c.Request().Context(), in, images)
	if err != nil {
		c.Logger().Errorf("create post: %v", err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, post)
}

// readImages pulls the multipart image files and enforces count, size, and
// content-type limits before any bytes travel to the object store.
func (h *PostHandler) readImages(c echo.Context) ([]service.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all is fine: images are optional.
		return nil, nil
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxImages {
		return nil, errors.NewHTTPError(http.StatusBadRequest, "Maximum 5 images allowed", "VALIDATION_ERROR")
	}

	images := make([]service.ImageUpload, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxImageSize {
			return nil, errors.NewHTTPError(http.StatusBadRequest, "Image file too large (max 10MB)", "VALIDATION_ERROR")
		}
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return nil, errors.NewHTTPError(http.StatusBadRequest, "Only image files are allowed", "VALIDATION_ERROR")
		}

		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
		src.Close()
		if err != nil {
			return nil, err
		}
		if len(data) > maxImageSize {
			return nil, errors.NewHTTPError(http.StatusBadRequest, "Image file too large (max 10MB)", "VALIDATION_ERROR")
		}

		images = append(images, service.ImageUpload{
			Filename:    fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}
	return images, nil
}

// MarkFound godoc
// @Summary Mark a lost post as found
// @Tags posts
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Post id and secret"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Router /mark-found [post]
func (h *PostHandler) MarkFound(c echo.Context) error {
	return h.resolve(c, h.resolutionService.MarkFound)
}

// MarkReturned godoc
// @Summary Mark a found post as returned to its owner
// @Tags posts
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Post id and secret"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Router /mark-returned [post]
func (h *PostHandler) MarkReturned(c echo.Context) error {
	return h.resolve(c, h.resolutionService.MarkReturned)
}

func (h *PostHandler) resolve(c echo.Context, fn func(ctx context.Context, id uint, secret string) (*model.Post, error)) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "id and secret are required",
			Code:  "VALIDATION_ERROR",
		})
	}

	post, err := fn(c.Request().Context(), req.ID, req.Secret)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, post)
}
