package postgres

import (
	"context"
	"strings"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return translateWriteError(err, repository.ErrCategoryAlreadyExists, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).
		Model(categoryM).
		Select("*").
		Omit("id", "created_at").
		Updates(categoryM)
	if result.Error != nil {
		return translateWriteError(result.Error, repository.ErrCategoryAlreadyExists, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories by ids")
	}

	return toCategoryDomains(categoryMs), nil
}

// List returns categories sorted by order then name.
func (repo *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryMs []model.CategoryModel
	if err := query.Order("sort_order ASC").Order("name ASC").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(categoryMs), nil
}

// ExistsByName compares names case-insensitively, ignoring excludeID when set.
func (repo *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check category name")
	}

	return count > 0, nil
}

func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}

	return count, nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}
