package postgres

import (
	"context"
	"math"
	"testing"
	"time"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type productFixture struct {
	db         *gorm.DB
	repo       repository.ProductRepository
	merchantID uuid.UUID
	categoryID uuid.UUID
}

func newProductFixture(t *testing.T) productFixture {
	db := newTestDB(t)

	return productFixture{
		db:         db,
		repo:       NewProductRepository(db),
		merchantID: uuid.New(),
		categoryID: uuid.New(),
	}
}

func (f productFixture) create(t *testing.T, name string, price float64, createdAt time.Time, approved bool) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:        name,
		Description: "Description de " + name,
		Price:       price,
		Stock:       5,
		CategoryID:  f.categoryID,
		MerchantID:  f.merchantID,
		IsActive:    true,
		Tags:        []string{"promo"},
		CreatedAt:   createdAt,
	}
	if approved {
		product.Approve()
	} else {
		product.RequireReview()
	}
	require.NoError(t, f.repo.Create(context.Background(), product))

	return product
}

func TestProductRepository_CreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)

	compare := 2000.0
	product := f.create(t, "Savon", 1500, time.Time{}, false)
	product.Specifications = []entity.Specification{{Key: "Poids", Value: "200g"}}
	product.ComparePrice = &compare
	require.NoError(t, f.repo.IncrementViews(ctx, product.ID))

	product.Name = "Savon noir"
	product.Approve()
	require.NoError(t, f.repo.Update(ctx, product))

	found, err := f.repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Savon noir", found.Name)
	assert.Equal(t, entity.ProductStatusApproved, found.Status)
	assert.True(t, found.IsApproved)
	assert.Equal(t, []string{"promo"}, found.Tags)
	assert.Equal(t, []string{}, found.Images)
	require.Len(t, found.Specifications, 1)
	assert.Equal(t, "200g", found.Specifications[0].Value)
	require.NotNil(t, found.ComparePrice)
	assert.InDelta(t, 2000.0, *found.ComparePrice, 0.001)
	assert.Equal(t, int64(1), found.Views, "update must not reset the view counter")

	_, err = f.repo.FindByIDAndMerchant(ctx, product.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	missing := &entity.Product{ID: uuid.New(), Name: "x", CategoryID: f.categoryID, MerchantID: f.merchantID}
	assert.ErrorIs(t, f.repo.Update(ctx, missing), repository.ErrProductNotFound)
}

func TestProductRepository_List(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cheap := f.create(t, "Riz 5kg", 3000, base, true)
	pricey := f.create(t, "Huile 100%", 9000, base.Add(time.Hour), true)
	f.create(t, "Sucre", 1000, base.Add(2*time.Hour), false)

	approved := entity.ProductStatusApproved
	products, total, err := f.repo.List(ctx, repository.ProductFilter{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, products, 2)
	assert.Equal(t, pricey.ID, products[0].ID, "newest first by default")

	products, _, err = f.repo.List(ctx, repository.ProductFilter{Status: &approved, Sort: repository.ProductSortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, cheap.ID, products[0].ID)

	products, total, err = f.repo.List(ctx, repository.ProductFilter{Search: "100%"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "percent sign is matched literally")
	assert.Equal(t, pricey.ID, products[0].ID)

	products, total, err = f.repo.List(ctx, repository.ProductFilter{Search: "RIZ"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, cheap.ID, products[0].ID)

	_, total, err = f.repo.List(ctx, repository.ProductFilter{Search: "promo"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total, "tags are only searched on request")

	_, total, err = f.repo.List(ctx, repository.ProductFilter{Search: "promo", SearchTags: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	minPrice, maxPrice := 2000.0, 5000.0
	products, total, err = f.repo.List(ctx, repository.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, cheap.ID, products[0].ID)

	products, total, err = f.repo.List(ctx, repository.ProductFilter{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 1)

	farPage := entity.PageRequest{Page: math.MaxInt, Limit: 20}.Normalize()
	products, total, err = f.repo.List(ctx, repository.ProductFilter{Offset: farPage.Offset(), Limit: farPage.Limit})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, products, "a page past the end is empty")

	count, err := f.repo.Count(ctx, repository.ProductFilter{MerchantID: &f.merchantID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestProductRepository_TagSearch(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)

	bag := f.create(t, "Portefeuille", 7000, time.Time{}, true)
	bag.Tags = []string{"Cuir & Co", "mode", "mode"}
	require.NoError(t, f.repo.Update(ctx, bag))
	f.create(t, "Savon", 500, time.Time{}, true)

	search := func(term string) []*entity.Product {
		t.Helper()
		products, _, err := f.repo.List(ctx, repository.ProductFilter{Search: term, SearchTags: true})
		require.NoError(t, err)

		return products
	}

	found := search("cuir & co")
	require.Len(t, found, 1)
	assert.Equal(t, bag.ID, found[0].ID)
	assert.Len(t, search("MODE"), 1)
	assert.Empty(t, search(`","`), "separators between tags are not searchable")
	assert.Empty(t, search(`"mode"`))

	bag.Tags = []string{"soldes"}
	require.NoError(t, f.repo.Update(ctx, bag))
	assert.Empty(t, search("cuir"))
	assert.Len(t, search("soldes"), 1)

	require.NoError(t, f.repo.Delete(ctx, bag.ID))
	var rows int64
	require.NoError(t, f.db.Model(&model.ProductTagModel{}).Where("product_id = ?", bag.ID).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestProductRepository_Stock(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)

	product := f.create(t, "Riz", 3000, time.Time{}, true)

	require.NoError(t, f.repo.ReserveStock(ctx, product.ID, 3))
	assert.ErrorIs(t, f.repo.ReserveStock(ctx, product.ID, 3), repository.ErrInsufficientStock)
	assert.ErrorIs(t, f.repo.ReserveStock(ctx, uuid.New(), 1), repository.ErrProductNotFound)

	found, err := f.repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Stock)
	assert.Equal(t, int64(3), found.SoldCount)

	require.NoError(t, f.repo.ReleaseStock(ctx, product.ID, 3))
	found, err = f.repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Stock)
	assert.Equal(t, int64(0), found.SoldCount)
}

func TestProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)

	product := f.create(t, "Riz", 3000, time.Time{}, true)

	assert.ErrorIs(t, f.repo.DeleteByIDAndMerchant(ctx, product.ID, uuid.New()), repository.ErrProductNotFound)
	require.NoError(t, f.repo.DeleteByIDAndMerchant(ctx, product.ID, f.merchantID))
	assert.ErrorIs(t, f.repo.Delete(ctx, product.ID), repository.ErrProductNotFound)

	byIDs, err := f.repo.FindByIDs(ctx, []uuid.UUID{product.ID})
	require.NoError(t, err)
	assert.Empty(t, byIDs)
}
