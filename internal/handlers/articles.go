package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// ArticlesReader defines the interface that the service must implement.
type ArticlesReader interface {
	GetArticles(ctx context.Context, page, limit int64, category *string) (*models.ArticlePage, error)
}

// ArticlesErrorResponse represents an error response for article listing
// swagger:model ArticlesErrorResponse
type ArticlesErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewArticlesHandler returns an HTTP handler for the educational article feed.
// @Summary List educational articles
// @Description Returns educational articles with author names, newest first, optionally filtered by category.
// @Tags education
// @Produce json
// @Param page query int false "Page number, defaults to 1"
// @Param limit query int false "Page size, defaults to 10"
// @Param category query string false "Category filter"
// @Success 200 {object} models.ArticlePage "Page of articles"
// @Failure 401 {object} handlers.ArticlesErrorResponse "Unauthorized"
// @Router /education/articles [get]
// @Security BearerAuth
func NewArticlesHandler(svc ArticlesReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := userIDFromRequest(ctx, r, tokener); err != nil {
			logger.Log.Errorw("failed to resolve user from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ArticlesErrorResponse{Error: "Unauthorized"})
			return
		}

		var page, limit int64
		if v := r.URL.Query().Get("page"); v != "" {
			page, _ = strconv.ParseInt(v, 10, 64)
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, _ = strconv.ParseInt(v, 10, 64)
		}
		var category *string
		if v := r.URL.Query().Get("category"); v != "" {
			category = &v
		}

		articles, err := svc.GetArticles(ctx, page, limit, category)
		if err != nil {
			logger.Log.Errorw("failed to get articles", "page", page, "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ArticlesErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(articles)
	}
}
