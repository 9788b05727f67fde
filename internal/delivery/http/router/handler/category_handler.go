package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the public and admin category routes.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CategoryRequest is the body of the category create and update routes.
type CategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

func (r CategoryRequest) toInput() usecase.CategoryInput {
	return usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Order:       r.Order,
		IsActive:    r.IsActive,
	}
}

// PublicList returns the active categories.
func (h *CategoryHandler) PublicList(c echo.Context) error {
	categories, err := h.categoryUC.List(c.Request().Context(), true)
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]CategoryResponse{"categories": presentCategories(categories)})
}

// AdminList returns every category, or only active ones with ?active=true.
func (h *CategoryHandler) AdminList(c echo.Context) error {
	active, err := queryBool(c, "active")
	if err != nil {
		return err
	}

	categories, err := h.categoryUC.List(c.Request().Context(), active != nil && *active)
	if err != nil {
		return err
	}

	return response.OK(c, map[string][]CategoryResponse{"categories": presentCategories(categories)})
}

// Get returns a single category.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]CategoryResponse{"category": presentCategory(category)})
}

// Create adds a category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, map[string]CategoryResponse{"category": presentCategory(category)}, "Catégorie créée")
}

// Update edits a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]CategoryResponse{"category": presentCategory(category)}, "Catégorie mise à jour")
}

// Delete removes an unused category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "Catégorie supprimée")
}

// ToggleStatus flips the active flag of a category.
func (h *CategoryHandler) ToggleStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return err
	}

	message := "Catégorie désactivée"
	if category.IsActive {
		message = "Catégorie activée"
	}

	return response.Success(c, http.StatusOK, map[string]CategoryResponse{"category": presentCategory(category)}, message)
}
