package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// PostsReader defines the interface that the service must implement.
type PostsReader interface {
	GetPosts(ctx context.Context, page, limit int64) (*models.PostPage, error)
}

// PostsErrorResponse represents an error response for the post listing
// swagger:model PostsErrorResponse
type PostsErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewPostsHandler returns an HTTP handler for the paginated forum feed.
// @Summary List community posts
// @Description Returns community posts with author names and comment counts, newest first.
// @Tags community
// @Produce json
// @Param page query int false "Page number, defaults to 1"
// @Param limit query int false "Page size, defaults to 10"
// @Success 200 {object} models.PostPage "Page of posts"
// @Failure 401 {object} handlers.PostsErrorResponse "Unauthorized"
// @Router /community/posts [get]
// @Security BearerAuth
func NewPostsHandler(svc PostsReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := userIDFromRequest(ctx, r, tokener); err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostsErrorResponse{Error: "Unauthorized"})
			return
		}

		var page, limit int64
		if v := r.URL.Query().Get("page"); v != "" {
			page, _ = strconv.ParseInt(v, 10, 64)
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, _ = strconv.ParseInt(v, 10, 64)
		}

		posts, err := svc.GetPosts(ctx, page, limit)
		if err != nil {
			logger.Log.Errorw("failed to get posts", "page", page, "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}
