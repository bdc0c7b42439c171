package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// AddCategory stores the trimmed name. A name the user already has fails
// with store.ErrCategoryAlreadyExists.
func (s *categoryService) AddCategory(ctx context.Context, userID int64, req models.AddCategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := s.categoryRepository.CreateCategory(ctx, models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
	})
	if err != nil {
		log.Debug().Err(err).Str("func", "*categoryService.AddCategory").Int64("user_id", userID).Msg("category was not created")
		return models.Category{}, fmt.Errorf("error adding category: %w", err)
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	return categories, nil
}
