package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/services"
)

// PostCreator defines the interface that the service must implement.
type PostCreator interface {
	CreatePost(ctx context.Context, userID int64, title, content string) (int64, error)
}

// CreatePostRequest represents a new forum post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Post title
	// example: Composting tips for small apartments
	Title string `json:"title"`
	// Post body
	// example: I started a worm bin on my balcony last month...
	Content string `json:"content"`
}

// CreatePostResponse represents a successful post creation response
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	// Created post identifier
	// example: 17
	ID int64 `json:"id"`
	// Confirmation message
	// example: Post created successfully
	Message string `json:"message"`
}

// CreatePostErrorResponse represents an error response for post creation
// swagger:model CreatePostErrorResponse
type CreatePostErrorResponse struct {
	// Error message
	// example: Title and content are required
	Error string `json:"error"`
}

// NewCreatePostHandler returns an HTTP handler that publishes a forum post.
// @Summary Create a community post
// @Description Publishes a forum post authored by the authenticated user.
// @Tags community
// @Accept json
// @Produce json
// @Param request body handlers.CreatePostRequest true "Post payload"
// @Success 201 {object} handlers.CreatePostResponse "Post created"
// @Failure 400 {object} handlers.CreatePostErrorResponse "Missing title or content"
// @Failure 401 {object} handlers.CreatePostErrorResponse "Unauthorized"
// @Router /community/posts [post]
// @Security BearerAuth
func NewCreatePostHandler(svc PostCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create post request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "Invalid request body"})
			return
		}

		id, err := svc.CreatePost(ctx, userID, req.Title, req.Content)
		if err != nil {
			if errors.Is(err, services.ErrEmptyPost) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "Title and content are required"})
				return
			}
			logger.Log.Errorw("failed to create post", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreatePostResponse{ID: id, Message: "Post created successfully"})
	}
}
