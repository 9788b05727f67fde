package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        service.CategoryCache
	sanitizer    service.TextSanitizer
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Cache        service.CategoryCache
	Sanitizer    service.TextSanitizer
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		cache:        params.Cache,
		sanitizer:    params.Sanitizer,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns categories sorted by order then name. The active listing is
// served from the cache when possible; cache failures fall back to the store.
func (srv *categoryService) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	if activeOnly {
		cached, found, err := srv.cache.GetActive(ctx)
		if err != nil {
			srv.log(ctx).Warn("Category cache read failed", slog.Any("error", err))
		}
		if found {
			return cached, nil
		}
	}

	categories, err := srv.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	if activeOnly {
		if err := srv.cache.SetActive(ctx, categories); err != nil {
			srv.log(ctx).Warn("Category cache write failed", slog.Any("error", err))
		}
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *categoryService) Create(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	if isBlank(input.Name) {
		return nil, domainerrors.NewValidationError("Le nom de la catégorie est requis")
	}

	category := &entity.Category{ID: uuid.New(), IsActive: true}
	if err := srv.apply(ctx, category, input); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.invalidate(ctx)

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID.String()), slog.String("name", category.Name))

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, id uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.apply(ctx, category, input); err != nil {
		return nil, err
	}

	if err := srv.save(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category that no product references.
func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}

	inUse, err := srv.productRepo.Count(ctx, repository.ProductFilter{CategoryID: &id})
	if err != nil {
		return errors.Wrap(err, "failed to count category products")
	}
	if inUse > 0 {
		return domainerrors.NewCategoryInUseError(inUse)
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}
	srv.invalidate(ctx)

	return nil
}

func (srv *categoryService) ToggleStatus(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	category.IsActive = !category.IsActive
	if err := srv.save(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// apply copies the supplied fields onto category and enforces the
// case-insensitive name uniqueness, ignoring category itself.
func (srv *categoryService) apply(ctx context.Context, category *entity.Category, input usecase.CategoryInput) error {
	if input.Name != nil {
		name := srv.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return domainerrors.NewValidationError("Le nom de la catégorie est requis")
		}
		if !strings.EqualFold(name, category.Name) {
			exists, err := srv.categoryRepo.ExistsByName(ctx, name, category.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check category name")
			}
			if exists {
				return domainerrors.ErrCategoryAlreadyExists
			}
		}
		category.Name = name
	}
	if input.Description != nil {
		category.Description = srv.sanitizer.Sanitize(*input.Description)
	}
	if input.Image != nil {
		category.Image = strings.TrimSpace(*input.Image)
	}
	if input.Order != nil {
		category.Order = *input.Order
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	return nil
}

func (srv *categoryService) save(ctx context.Context, category *entity.Category) error {
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return domainerrors.ErrCategoryNotFound
		case errors.Is(err, repository.ErrCategoryAlreadyExists):
			return domainerrors.ErrCategoryAlreadyExists
		}

		return errors.Wrap(err, "failed to update category")
	}
	srv.invalidate(ctx)

	return nil
}

func (srv *categoryService) invalidate(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Category cache invalidation failed", slog.Any("error", err))
	}
}
