package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/services"
)

// Commenter defines the interface that the service must implement.
type Commenter interface {
	AddComment(ctx context.Context, postID, userID int64, content string) (int64, error)
}

// AddCommentRequest represents a comment on a forum post
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	// Comment body
	// example: Great idea, I will try this at home
	Content string `json:"content"`
}

// AddCommentResponse represents a successful comment creation response
// swagger:model AddCommentResponse
type AddCommentResponse struct {
	// Created comment identifier
	// example: 42
	ID int64 `json:"id"`
	// Confirmation message
	// example: Comment added successfully
	Message string `json:"message"`
}

// AddCommentErrorResponse represents an error response for comment creation
// swagger:model AddCommentErrorResponse
type AddCommentErrorResponse struct {
	// Error message
	// example: Post not found
	Error string `json:"error"`
}

// NewAddCommentHandler returns an HTTP handler that attaches a comment to a post.
// @Summary Comment on a post
// @Description Adds a comment authored by the authenticated user to an existing post.
// @Tags community
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body handlers.AddCommentRequest true "Comment payload"
// @Success 201 {object} handlers.AddCommentResponse "Comment added"
// @Failure 400 {object} handlers.AddCommentErrorResponse "Missing content"
// @Failure 401 {object} handlers.AddCommentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AddCommentErrorResponse "Post not found"
// @Router /community/posts/{id}/comments [post]
// @Security BearerAuth
func NewAddCommentHandler(svc Commenter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AddCommentErrorResponse{Error: "Unauthorized"})
			return
		}

		postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Errorw("invalid post id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddCommentErrorResponse{Error: "Invalid post id"})
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode add comment request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddCommentErrorResponse{Error: "Invalid request body"})
			return
		}

		id, err := svc.AddComment(ctx, postID, userID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyComment):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddCommentErrorResponse{Error: "Content is required"})
			case errors.Is(err, services.ErrPostNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AddCommentErrorResponse{Error: "Post not found"})
			default:
				logger.Log.Errorw("failed to add comment", "postID", postID, "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddCommentErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddCommentResponse{ID: id, Message: "Comment added successfully"})
	}
}
