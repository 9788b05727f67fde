package postgres

import (
	"context"

	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// schemaModels lists the tables in dependency order.
var schemaModels = []any{
	&model.UserModel{},
	&model.MerchantProfileModel{},
	&model.DeliveryProfileModel{},
	&model.AddressModel{},
	&model.CategoryModel{},
	&model.ProductModel{},
	&model.ProductTagModel{},
	&model.OrderModel{},
	&model.OrderItemModel{},
	&model.OrderStatusChangeModel{},
}

// schemaIndexes holds expression indexes GORM tags cannot describe. They are valid on
// both PostgreSQL and SQLite.
var schemaIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_lower ON categories (LOWER(name))`,
	`CREATE INDEX IF NOT EXISTS idx_products_public ON products (is_approved, is_active, status)`,
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.AutoMigrate(schemaModels...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	for _, stmt := range schemaIndexes {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to create index")
		}
	}

	return nil
}
