package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the admin, merchant and public product routes.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest is the body of the product create and update routes.
// Merchant, Status and RejectionReason are ignored outside the admin routes.
type ProductRequest struct {
	Name            *string                 `json:"name"`
	Description     *string                 `json:"description"`
	Price           *float64                `json:"price"`
	ComparePrice    *float64                `json:"comparePrice" validate:"omitempty,gte=0"`
	Stock           *int                    `json:"stock" validate:"omitempty,gte=0"`
	Image           *string                 `json:"image"`
	Images          *[]string               `json:"images"`
	Category        *uuid.UUID              `json:"category"`
	Merchant        *uuid.UUID              `json:"merchant"`
	Tags            *[]string               `json:"tags"`
	Specifications  *[]entity.Specification `json:"specifications"`
	IsActive        *bool                   `json:"isActive"`
	Status          *string                 `json:"status" validate:"omitempty,oneof=pending approved rejected inactive"`
	RejectionReason *string                 `json:"rejectionReason" validate:"omitempty,max=500"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	input := usecase.ProductInput{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		ComparePrice:    r.ComparePrice,
		Stock:           r.Stock,
		Image:           r.Image,
		Images:          r.Images,
		CategoryID:      r.Category,
		MerchantID:      r.Merchant,
		Tags:            r.Tags,
		Specifications:  r.Specifications,
		IsActive:        r.IsActive,
		RejectionReason: r.RejectionReason,
	}
	if r.Status != nil {
		status := entity.ProductStatus(*r.Status)
		input.Status = &status
	}

	return input
}

// RejectProductRequest is the body of PUT /api/admin/products/:id/reject.
type RejectProductRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// PublicProductQuery holds the paging parameters of GET /api/products.
type PublicProductQuery struct {
	Page  int
	Limit int
	Sort  string
}

// AdminList returns products filtered by ?status=, ?category=, ?merchant= and ?search=.
func (h *ProductHandler) AdminList(c echo.Context) error {
	categoryID, err := queryUUID(c, "category")
	if err != nil {
		return err
	}
	merchantID, err := queryUUID(c, "merchant")
	if err != nil {
		return err
	}

	products, err := h.productUC.AdminList(c.Request().Context(), usecase.AdminProductQuery{
		Status:     c.QueryParam("status"),
		CategoryID: categoryID,
		MerchantID: merchantID,
		Search:     c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]ProductResponse{"products": presentProductViews(products)})
}

// AdminGet returns a product in any status.
func (h *ProductHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.AdminGet(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]ProductResponse{"product": presentProductView(product)})
}

// AdminCreate creates an approved product on behalf of a merchant.
func (h *ProductHandler) AdminCreate(c echo.Context) error {
	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.AdminCreate(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, map[string]ProductResponse{"product": presentProduct(product)}, "Produit créé")
}

// AdminUpdate edits any product field.
func (h *ProductHandler) AdminUpdate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.AdminUpdate(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]ProductResponse{"product": presentProduct(product)}, "Produit mis à jour")
}

// AdminDelete removes a product.
func (h *ProductHandler) AdminDelete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.AdminDelete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "Produit supprimé")
}

// Approve publishes a product.
func (h *ProductHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.Approve(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]ProductResponse{"product": presentProduct(product)}, "Produit approuvé")
}

// Reject refuses a product with an optional reason.
func (h *ProductHandler) Reject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RejectProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Reject(c.Request().Context(), id, req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]ProductResponse{"product": presentProduct(product)}, "Produit rejeté")
}

// MerchantList returns the current merchant's products.
func (h *ProductHandler) MerchantList(c echo.Context) error {
	merchantID, err := currentUserID(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.MerchantList(c.Request().Context(), merchantID, usecase.MerchantProductQuery{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]ProductResponse{"products": presentProductViews(products)})
}

// MerchantCreate submits a product for approval.
func (h *ProductHandler) MerchantCreate(c echo.Context) error {
	merchantID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.MerchantCreate(c.Request().Context(), merchantID, req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, map[string]ProductResponse{"product": presentProduct(product)}, "Produit créé, en attente d'approbation")
}

// MerchantUpdate edits one of the current merchant's products.
func (h *ProductHandler) MerchantUpdate(c echo.Context) error {
	merchantID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.MerchantUpdate(c.Request().Context(), merchantID, id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]ProductResponse{"product": presentProduct(product)}, "Produit mis à jour")
}

// MerchantDelete removes one of the current merchant's products.
func (h *ProductHandler) MerchantDelete(c echo.Context) error {
	merchantID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.MerchantDelete(c.Request().Context(), merchantID, id); err != nil {
		return err
	}

	return response.Message(c, "Produit supprimé")
}

// PublicList returns one page of the public catalogue.
func (h *ProductHandler) PublicList(c echo.Context) error {
	var q PublicProductQuery
	if err := echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		String("sort", &q.Sort).
		BindError(); err != nil {
		return err
	}

	categoryID, err := queryUUID(c, "category")
	if err != nil {
		return err
	}
	minPrice, err := queryFloat(c, "minPrice")
	if err != nil {
		return err
	}
	maxPrice, err := queryFloat(c, "maxPrice")
	if err != nil {
		return err
	}

	page, err := h.productUC.PublicList(c.Request().Context(), usecase.PublicProductQuery{
		CategoryID: categoryID,
		Search:     c.QueryParam("search"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Sort:       q.Sort,
		Page:       entity.PageRequest{Page: q.Page, Limit: q.Limit},
	})
	if err != nil {
		return err
	}

	return response.OK(c, presentProductPage(page))
}

// PublicGet returns a published product and counts the view.
func (h *ProductHandler) PublicGet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.PublicGet(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]ProductResponse{"product": presentProductView(product)})
}
