package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] over the
// "categories" table.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory relies on the UNIQUE(user_id, name) index for duplicate
// detection and reports it as [ErrCategoryAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	category.CreatedAt = now()
	query, args, err := r.db.queries.createCategory(category)
	if err != nil {
		return models.Category{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		if conflict := r.db.uniqueViolation(err); conflict != nil {
			return models.Category{}, conflict
		}

		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Int64("user_id", category.UserID).Msg("error inserting category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return category, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.queries.getCategory(userID, categoryID)
	if err != nil {
		return models.Category{}, err
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Category{}, ErrCategoryNotFound
	case err != nil:
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Int64("category_id", categoryID).Msg("error reading category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.queries.listCategories(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Int64("user_id", userID).Msg("error listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*categoryRepository.ListCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(rowsErr))
	}

	return categories, nil
}

func scanCategory(row rowScanner) (models.Category, error) {
	var category models.Category
	err := row.Scan(&category.ID, &category.UserID, &category.Name, &category.CreatedAt)
	return category, err
}
