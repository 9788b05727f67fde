package impl

import (
	"context"
	"fmt"
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

const unknownMerchantName = "Inconnu"

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	sanitizer    service.TextSanitizer
	notifier     service.NotificationService
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	UserRepo     repository.UserRepository
	Sanitizer    service.TextSanitizer
	Notifier     service.NotificationService
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		userRepo:     params.UserRepo,
		sanitizer:    params.Sanitizer,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Admin path ---

func (srv *productService) AdminList(ctx context.Context, query usecase.AdminProductQuery) ([]*entity.ProductView, error) {
	filter, err := statusBucketFilter(query.Status)
	if err != nil {
		return nil, err
	}
	filter.CategoryID = query.CategoryID
	filter.MerchantID = query.MerchantID
	filter.Search = strings.TrimSpace(query.Search)

	products, _, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return srv.enrich(ctx, products)
}

func (srv *productService) AdminGet(ctx context.Context, id uuid.UUID) (*entity.ProductView, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.enrichOne(ctx, product)
}

// AdminCreate creates a product on behalf of a merchant. It is published immediately.
func (srv *productService) AdminCreate(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if isBlank(input.Name) || isBlank(input.Description) || input.Price == nil || input.CategoryID == nil || input.MerchantID == nil {
		return nil, domainerrors.NewValidationError("Veuillez fournir le nom, la description, le prix, la catégorie et le marchand")
	}

	if err := srv.ensureMerchantExists(ctx, *input.MerchantID); err != nil {
		return nil, err
	}

	product := &entity.Product{ID: uuid.New(), MerchantID: *input.MerchantID, IsActive: true}
	if err := srv.applyInput(ctx, product, input); err != nil {
		return nil, err
	}
	product.Approve()
	if err := srv.applyAdminStatus(product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created by admin", slog.String("productID", product.ID.String()))

	return product, nil
}

func (srv *productService) AdminUpdate(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MerchantID != nil && *input.MerchantID != product.MerchantID {
		if err := srv.ensureMerchantExists(ctx, *input.MerchantID); err != nil {
			return nil, err
		}
		product.MerchantID = *input.MerchantID
	}
	if err := srv.applyInput(ctx, product, input); err != nil {
		return nil, err
	}
	if err := srv.applyAdminStatus(product, input); err != nil {
		return nil, err
	}

	if err := srv.save(ctx, product, domainerrors.ErrProductNotFound); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// Approve publishes the product and notifies its merchant.
func (srv *productService) Approve(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Approve()
	if err := srv.save(ctx, product, domainerrors.ErrProductNotFound); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product approved", slog.String("productID", product.ID.String()))
	srv.notifyMerchant(ctx, product, "Produit approuvé",
		fmt.Sprintf("Votre produit \"%s\" a été approuvé", product.Name))

	return product, nil
}

// Reject refuses the product and notifies its merchant. An empty reason
// stores the default rejection reason.
func (srv *productService) Reject(ctx context.Context, id uuid.UUID, reason string) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Reject(srv.sanitizer.Sanitize(reason))
	if err := srv.save(ctx, product, domainerrors.ErrProductNotFound); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product rejected", slog.String("productID", product.ID.String()))
	srv.notifyMerchant(ctx, product, "Produit rejeté",
		fmt.Sprintf("Votre produit \"%s\" a été rejeté: %s", product.Name, product.RejectionReason))

	return product, nil
}

// --- Merchant path ---

func (srv *productService) MerchantList(ctx context.Context, merchantID uuid.UUID, query usecase.MerchantProductQuery) ([]*entity.ProductView, error) {
	filter, err := statusBucketFilter(query.Status)
	if err != nil {
		return nil, err
	}
	filter.MerchantID = &merchantID
	filter.Search = strings.TrimSpace(query.Search)

	products, _, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return srv.enrich(ctx, products)
}

// MerchantCreate creates a product owned by merchantID, pending review.
func (srv *productService) MerchantCreate(ctx context.Context, merchantID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	merchant, err := srv.userRepo.FindByID(ctx, merchantID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find merchant")
	}
	if merchant == nil || merchant.Role != entity.RoleMerchant || !merchant.IsApproved() {
		return nil, domainerrors.ErrMerchantNotApproved
	}

	if isBlank(input.Name) || isBlank(input.Description) || input.Price == nil || input.CategoryID == nil {
		return nil, domainerrors.NewValidationError("Veuillez fournir le nom, la description, le prix et la catégorie")
	}

	product := &entity.Product{ID: uuid.New(), MerchantID: merchantID, IsActive: true}
	if err := srv.applyInput(ctx, product, merchantInput(input)); err != nil {
		return nil, err
	}
	product.RequireReview()

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product submitted for review", slog.String("productID", product.ID.String()), slog.String("merchantID", merchantID.String()))

	return product, nil
}

// MerchantUpdate edits a product owned by merchantID. Supplying a name,
// description or price sends the product back to review.
func (srv *productService) MerchantUpdate(ctx context.Context, merchantID, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByIDAndMerchant(ctx, id, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotOwned
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	input = merchantInput(input)
	if err := srv.applyInput(ctx, product, input); err != nil {
		return nil, err
	}
	if input.Name != nil || input.Description != nil || input.Price != nil {
		product.RequireReview()
	}

	if err := srv.save(ctx, product, domainerrors.ErrProductNotOwned); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) MerchantDelete(ctx context.Context, merchantID, id uuid.UUID) error {
	if err := srv.productRepo.DeleteByIDAndMerchant(ctx, id, merchantID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotOwned
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// --- Public path ---

// PublicList pages through the published catalogue.
func (srv *productService) PublicList(ctx context.Context, query usecase.PublicProductQuery) (*usecase.ProductPage, error) {
	page := query.Page.Normalize()
	approved := entity.ProductStatusApproved
	yes := true

	filter := repository.ProductFilter{
		Status:     &approved,
		IsApproved: &yes,
		IsActive:   &yes,
		CategoryID: query.CategoryID,
		Search:     strings.TrimSpace(query.Search),
		SearchTags: true,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		Sort:       publicSort(query.Sort),
		Offset:     page.Offset(),
		Limit:      page.Limit,
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public products")
	}

	views, err := srv.enrich(ctx, products)
	if err != nil {
		return nil, err
	}

	return &usecase.ProductPage{
		Products:   views,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// PublicGet returns a published product and counts the view.
func (srv *productService) PublicGet(ctx context.Context, id uuid.UUID) (*entity.ProductView, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsPubliclyVisible() {
		return nil, domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.IncrementViews(ctx, product.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count product view")
	}
	product.Views++

	return srv.enrichOne(ctx, product)
}

// --- helpers ---

func (srv *productService) findProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) save(ctx context.Context, product *entity.Product, notFound error) error {
	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return notFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (srv *productService) ensureMerchantExists(ctx context.Context, merchantID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, merchantID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidMerchant
		}

		return errors.Wrap(err, "failed to find merchant")
	}

	return nil
}

func (srv *productService) ensureCategoryExists(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrInvalidCategory
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

// applyInput copies the catalogue fields of input onto product. Free text
// is stripped of markup before it is stored.
func (srv *productService) applyInput(ctx context.Context, product *entity.Product, input usecase.ProductInput) error {
	if input.Name != nil {
		name := srv.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return domainerrors.NewValidationError("Le nom du produit est requis")
		}
		product.Name = name
	}
	if input.Description != nil {
		description := srv.sanitizer.Sanitize(*input.Description)
		if description == "" {
			return domainerrors.NewValidationError("La description du produit est requise")
		}
		product.Description = description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return domainerrors.NewValidationError("Le prix doit être positif")
		}
		product.Price = *input.Price
	}
	if input.ComparePrice != nil {
		if *input.ComparePrice < 0 {
			return domainerrors.NewValidationError("Le prix comparé doit être positif")
		}
		comparePrice := *input.ComparePrice
		product.ComparePrice = &comparePrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return domainerrors.NewValidationError("Le stock doit être positif")
		}
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	if input.Images != nil {
		product.Images = compactStrings(*input.Images, strings.TrimSpace)
	}
	if input.CategoryID != nil {
		if *input.CategoryID != product.CategoryID {
			if err := srv.ensureCategoryExists(ctx, *input.CategoryID); err != nil {
				return err
			}
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Tags != nil {
		product.Tags = compactStrings(*input.Tags, srv.sanitizer.Sanitize)
	}
	if input.Specifications != nil {
		specs := make([]entity.Specification, 0, len(*input.Specifications))
		for _, spec := range *input.Specifications {
			key := srv.sanitizer.Sanitize(spec.Key)
			if key == "" {
				continue
			}
			specs = append(specs, entity.Specification{Key: key, Value: srv.sanitizer.Sanitize(spec.Value)})
		}
		product.Specifications = specs
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	return nil
}

// applyAdminStatus applies an explicit status write from the admin path.
func (srv *productService) applyAdminStatus(product *entity.Product, input usecase.ProductInput) error {
	reason := ""
	if input.RejectionReason != nil {
		reason = srv.sanitizer.Sanitize(*input.RejectionReason)
	}

	if input.Status == nil {
		if input.RejectionReason != nil && product.Status == entity.ProductStatusRejected {
			product.Reject(reason)
		}

		return nil
	}

	switch status := *input.Status; status {
	case entity.ProductStatusApproved:
		product.Approve()
	case entity.ProductStatusRejected:
		product.Reject(reason)
	case entity.ProductStatusPending, entity.ProductStatusInactive:
		product.SetStatus(status)
	default:
		return domainerrors.NewValidationError("Statut de produit invalide")
	}

	return nil
}

func (srv *productService) notifyMerchant(ctx context.Context, product *entity.Product, title, body string) {
	merchant, err := srv.userRepo.FindByID(ctx, product.MerchantID)
	if err != nil {
		srv.log(ctx).Debug("Merchant not notified", slog.String("productID", product.ID.String()), slog.Any("error", err))

		return
	}

	pushToUser(ctx, srv.log(ctx), srv.notifier, merchant, title, body, map[string]string{
		"type":      "product_status",
		"productId": product.ID.String(),
		"status":    string(product.Status),
	})
}

func (srv *productService) enrichOne(ctx context.Context, product *entity.Product) (*entity.ProductView, error) {
	views, err := srv.enrich(ctx, []*entity.Product{product})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// enrich resolves category and merchant display names in two batched lookups.
func (srv *productService) enrich(ctx context.Context, products []*entity.Product) ([]*entity.ProductView, error) {
	views := make([]*entity.ProductView, 0, len(products))
	if len(products) == 0 {
		return views, nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(products))
	merchantIDs := make([]uuid.UUID, 0, len(products))
	seen := make(map[uuid.UUID]struct{}, 2*len(products))
	for _, p := range products {
		if _, ok := seen[p.CategoryID]; !ok {
			seen[p.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
		if _, ok := seen[p.MerchantID]; !ok {
			seen[p.MerchantID] = struct{}{}
			merchantIDs = append(merchantIDs, p.MerchantID)
		}
	}

	categories, err := srv.categoryRepo.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product categories")
	}
	merchants, err := srv.userRepo.FindByIDs(ctx, merchantIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product merchants")
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	merchantNames := make(map[uuid.UUID]string, len(merchants))
	for _, m := range merchants {
		merchantNames[m.ID] = merchantDisplayName(m)
	}

	for _, p := range products {
		view := &entity.ProductView{
			Product:      *p,
			CategoryName: entity.UncategorizedName,
			MerchantName: unknownMerchantName,
		}
		if name, ok := categoryNames[p.CategoryID]; ok && name != "" {
			view.CategoryName = name
		}
		if name, ok := merchantNames[p.MerchantID]; ok && name != "" {
			view.MerchantName = name
		}
		views = append(views, view)
	}

	return views, nil
}

func merchantDisplayName(user *entity.User) string {
	if shop := user.ShopName(); shop != "" {
		return shop
	}

	return user.Name
}

// merchantInput drops the fields a merchant may not set.
func merchantInput(input usecase.ProductInput) usecase.ProductInput {
	input.MerchantID = nil
	input.Status = nil
	input.RejectionReason = nil

	return input
}

// statusBucketFilter maps a listing status bucket onto a repository filter.
func statusBucketFilter(bucket string) (repository.ProductFilter, error) {
	var filter repository.ProductFilter

	bucket = strings.TrimSpace(bucket)
	if bucket == "" || bucket == roleFilterAll {
		return filter, nil
	}

	status := entity.ProductStatus(bucket)
	if !status.IsValid() {
		return filter, domainerrors.NewValidationError("Statut de produit invalide")
	}
	filter.Status = &status

	switch status {
	case entity.ProductStatusPending:
		no := false
		filter.IsApproved = &no
	case entity.ProductStatusApproved:
		yes := true
		filter.IsApproved = &yes
	}

	return filter, nil
}

func publicSort(sort string) repository.ProductSort {
	switch repository.ProductSort(sort) {
	case repository.ProductSortPriceAsc:
		return repository.ProductSortPriceAsc
	case repository.ProductSortPriceDesc:
		return repository.ProductSortPriceDesc
	case repository.ProductSortPopular:
		return repository.ProductSortPopular
	default:
		return repository.ProductSortNewest
	}
}

func compactStrings(values []string, clean func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = clean(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
