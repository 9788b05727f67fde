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
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(productM).Error; err != nil {
			return err
		}

		return replaceProductTags(tx, productM.ID, productM.Tags)
	})
	if err != nil {
		return translateWriteError(err, nil, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update saves every editable field of an existing product. Counters that
// are maintained atomically (views, sold count) are never overwritten here.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(productM).
			Select("*").
			Omit("id", "views", "sold_count", "created_at").
			Updates(productM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return replaceProductTags(tx, productM.ID, productM.Tags)
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return err
	}
	if err != nil {
		return translateWriteError(err, nil, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// replaceProductTags rewrites the search rows of a product. Duplicate tags are stored once.
func replaceProductTags(tx *gorm.DB, productID uuid.UUID, tags []string) error {
	if err := tx.Where("product_id = ?", productID).Delete(&model.ProductTagModel{}).Error; err != nil {
		return err
	}

	rows := make([]model.ProductTagModel, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok || tag == "" {
			continue
		}
		seen[tag] = struct{}{}
		rows = append(rows, model.ProductTagModel{ProductID: productID, Tag: tag})
	}
	if len(rows) == 0 {
		return nil
	}

	return tx.Create(&rows).Error
}

// FindByID retrieves a product by ID from the primary.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDAndMerchant retrieves a product only if merchantID owns it.
func (repo *productRepository) FindByIDAndMerchant(ctx context.Context, id, merchantID uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id and merchant")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products with the given IDs. Missing IDs are skipped.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(productMs), nil
}

// List returns one page of matching products and the total match count.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	var total int64
	if err := applyProductFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	query := applyProductSort(applyProductFilter(repo.db.WithContext(ctx), filter), filter.Sort)
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productMs []model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), total, nil
}

// Count returns the number of products matching filter. Paging fields are ignored.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64
	if err := applyProductFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func applyProductFilter(db *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.IsApproved != nil {
		db = db.Where("is_approved = ?", *filter.IsApproved)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MerchantID != nil {
		db = db.Where("merchant_id = ?", *filter.MerchantID)
	}
	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		if filter.SearchTags {
			db = db.Where(
				`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR EXISTS (`+
					`SELECT 1 FROM product_tags pt WHERE pt.product_id = products.id AND LOWER(pt.tag) LIKE ? ESCAPE '\'))`,
				pattern, pattern, pattern,
			)
		} else {
			db = db.Where(
				`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`,
				pattern, pattern,
			)
		}
	}

	return db
}

func applyProductSort(db *gorm.DB, sort repository.ProductSort) *gorm.DB {
	switch sort {
	case repository.ProductSortPriceAsc:
		return db.Order("price ASC").Order("created_at DESC")
	case repository.ProductSortPriceDesc:
		return db.Order("price DESC").Order("created_at DESC")
	case repository.ProductSortPopular:
		return db.Order("sold_count DESC").Order("views DESC").Order("created_at DESC")
	default:
		return db.Order("created_at DESC")
	}
}

// containsPattern builds a lowercase LIKE pattern matching term literally.
func containsPattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(strings.ToLower(term)) + "%"
}

// Delete removes a product permanently.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.deleteWhere(ctx, id, "id = ?", id)
}

// DeleteByIDAndMerchant removes a product only if merchantID owns it.
func (repo *productRepository) DeleteByIDAndMerchant(ctx context.Context, id, merchantID uuid.UUID) error {
	return repo.deleteWhere(ctx, id, "id = ? AND merchant_id = ?", id, merchantID)
}

// deleteWhere removes the product matching the condition together with its tag rows.
func (repo *productRepository) deleteWhere(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where(query, args...).Delete(&model.ProductModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return tx.Where("product_id = ?", id).Delete(&model.ProductTagModel{}).Error
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return err
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// IncrementViews atomically adds one to the view counter without touching updated_at.
func (repo *productRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment product views")
	}

	return nil
}

// ReserveStock atomically moves quantity units from stock to the sold count.
// The guard on stock makes concurrent reservations safe without row locks.
func (repo *productRepository) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"sold_count": gorm.Expr("sold_count + ?", quantity),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reserve stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check product existence")
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	return repository.ErrInsufficientStock
}

// ReleaseStock reverts a previous reservation. The sold count never drops below zero.
func (repo *productRepository) ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", quantity),
			"sold_count": gorm.Expr("CASE WHEN sold_count >= ? THEN sold_count - ? ELSE 0 END", quantity, quantity),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
