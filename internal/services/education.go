package services

import (
	"context"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/models"
)

// EducationReader defines read operations for articles and tips.
type EducationReader interface {
	CountArticles(ctx context.Context, category *string) (int64, error)
	GetArticles(ctx context.Context, category *string, limit, offset int64) ([]models.ArticleDB, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetTipsByCategory(ctx context.Context, category string) ([]models.TipDB, error)
}

// EducationService serves educational articles and sustainability tips.
type EducationService struct {
	reader EducationReader
}

// NewEducationService creates a new EducationService.
func NewEducationService(reader EducationReader) *EducationService {
	return &EducationService{reader: reader}
}

// GetArticles returns one page of published articles, optionally filtered by
// category, together with the distinct category list.
func (s *EducationService) GetArticles(ctx context.Context, page, limit int64, category *string) (*models.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.reader.CountArticles(ctx, category)
	if err != nil {
		logger.Log.Errorw("failed to count articles", "error", err)
		return nil, err
	}

	offset := (page - 1) * limit
	articles, err := s.reader.GetArticles(ctx, category, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to get articles", "page", page, "limit", limit, "error", err)
		return nil, err
	}

	categories, err := s.reader.GetCategories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get article categories", "error", err)
		return nil, err
	}

	return &models.ArticlePage{
		Articles:    articles,
		Categories:  categories,
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// GetTips returns the active tips of every category, keyed by category.
func (s *EducationService) GetTips(ctx context.Context) (map[string][]models.TipDB, error) {
	tips := make(map[string][]models.TipDB, len(models.TipCategories))

	for _, category := range models.TipCategories {
		categoryTips, err := s.reader.GetTipsByCategory(ctx, category)
		if err != nil {
			logger.Log.Errorw("failed to get tips", "category", category, "error", err)
			return nil, err
		}
		tips[category] = categoryTips
	}

	return tips, nil
}
