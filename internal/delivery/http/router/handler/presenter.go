package handler

import (
	"time"

	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the client view of a user. The password hash and OTP never leave the server.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	IsActive   bool      `json:"isActive"`
	IsApproved bool      `json:"isApproved"`

	ShopName        string `json:"shopName,omitempty"`
	ShopDescription string `json:"shopDescription,omitempty"`
	ShopAddress     string `json:"shopAddress,omitempty"`
	ShopPhone       string `json:"shopPhone,omitempty"`

	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`

	Addresses []AddressResponse `json:"addresses,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// AddressResponse is a client delivery address.
type AddressResponse struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	FullAddress string    `json:"fullAddress"`
	City        string    `json:"city"`
	Quarter     string    `json:"quarter,omitempty"`
	Details     string    `json:"details,omitempty"`
	IsDefault   bool      `json:"isDefault"`
}

func presentUser(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:         u.ID,
		Phone:      u.Phone,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role.String(),
		Avatar:     u.Avatar,
		IsActive:   u.IsActive,
		IsApproved: u.IsApproved(),
		Addresses:  presentAddresses(u.Addresses),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}

	if m := u.Merchant; m != nil {
		resp.ShopName = m.ShopName
		resp.ShopDescription = m.ShopDescription
		resp.ShopAddress = m.ShopAddress
		resp.ShopPhone = m.ShopPhone
	}
	if d := u.Delivery; d != nil {
		resp.VehicleType = string(d.VehicleType)
		resp.VehicleNumber = d.VehicleNumber
	}

	return resp
}

func presentUsers(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, presentUser(u))
	}

	return out
}

func presentAddresses(addrs []entity.Address) []AddressResponse {
	if len(addrs) == 0 {
		return nil
	}

	out := make([]AddressResponse, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, AddressResponse{
			ID:          a.ID,
			Label:       a.Label,
			FullAddress: a.FullAddress,
			City:        a.City,
			Quarter:     a.Quarter,
			Details:     a.Details,
			IsDefault:   a.IsDefault,
		})
	}

	return out
}

// ProductResponse is a product as returned by every product route.
// CategoryName and MerchantName are only filled on listing reads.
type ProductResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Price           float64                `json:"price"`
	ComparePrice    *float64               `json:"comparePrice,omitempty"`
	Stock           int                    `json:"stock"`
	Image           string                 `json:"image,omitempty"`
	Images          []string               `json:"images"`
	Category        uuid.UUID              `json:"category"`
	CategoryName    string                 `json:"categoryName,omitempty"`
	Merchant        uuid.UUID              `json:"merchant"`
	MerchantName    string                 `json:"merchantName,omitempty"`
	Status          string                 `json:"status"`
	IsApproved      bool                   `json:"isApproved"`
	IsActive        bool                   `json:"isActive"`
	RejectionReason string                 `json:"rejectionReason,omitempty"`
	Tags            []string               `json:"tags"`
	Specifications  []entity.Specification `json:"specifications"`
	Views           int64                  `json:"views"`
	SoldCount       int64                  `json:"soldCount"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func presentProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		ComparePrice:    p.ComparePrice,
		Stock:           p.Stock,
		Image:           p.Image,
		Images:          nonNil(p.Images),
		Category:        p.CategoryID,
		Merchant:        p.MerchantID,
		Status:          string(p.Status),
		IsApproved:      p.IsApproved,
		IsActive:        p.IsActive,
		RejectionReason: p.RejectionReason,
		Tags:            nonNil(p.Tags),
		Specifications:  nonNil(p.Specifications),
		Views:           p.Views,
		SoldCount:       p.SoldCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func presentProductView(v *entity.ProductView) ProductResponse {
	resp := presentProduct(&v.Product)
	resp.CategoryName = v.CategoryName
	resp.MerchantName = v.MerchantName

	return resp
}

func presentProductViews(views []*entity.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, presentProductView(v))
	}

	return out
}

// ProductPageResponse is one page of the public catalogue.
type ProductPageResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination entity.Pagination `json:"pagination"`
}

func presentProductPage(page *usecase.ProductPage) ProductPageResponse {
	return ProductPageResponse{
		Products:   presentProductViews(page.Products),
		Pagination: page.Pagination,
	}
}

// CategoryResponse is a product category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func presentCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		Order:       c.Order,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func presentCategories(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, presentCategory(c))
	}

	return out
}

// OrderResponse is an order with its lines and audit trail.
type OrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	OrderNumber     string                 `json:"orderNumber"`
	Client          uuid.UUID              `json:"client"`
	Delivery        *uuid.UUID             `json:"delivery,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	DeliveryAddress OrderAddressResponse   `json:"deliveryAddress"`
	Note            string                 `json:"note,omitempty"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Status          string                 `json:"status"`
	StatusHistory   []StatusChangeResponse `json:"statusHistory"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	Product  uuid.UUID `json:"product"`
	Merchant uuid.UUID `json:"merchant"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// OrderAddressResponse is the delivery address captured at order time.
type OrderAddressResponse struct {
	Label       string `json:"label,omitempty"`
	FullAddress string `json:"fullAddress"`
	City        string `json:"city"`
	Quarter     string `json:"quarter,omitempty"`
	Details     string `json:"details,omitempty"`
}

// StatusChangeResponse is one status history entry.
type StatusChangeResponse struct {
	From      string    `json:"from,omitempty"`
	Status    string    `json:"status"`
	ChangedBy uuid.UUID `json:"changedBy"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date"`
}

func presentOrder(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			Product:  it.ProductID,
			Merchant: it.MerchantID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	history := make([]StatusChangeResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, StatusChangeResponse{
			From:      string(h.From),
			Status:    string(h.To),
			ChangedBy: h.ChangedBy,
			Note:      h.Note,
			Date:      h.CreatedAt,
		})
	}

	addr := o.DeliveryAddress

	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Client:      o.ClientID,
		Delivery:    o.DeliveryID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		DeliveryAddress: OrderAddressResponse{
			Label:       addr.Label,
			FullAddress: addr.FullAddress,
			City:        addr.City,
			Quarter:     addr.Quarter,
			Details:     addr.Details,
		},
		Note:          o.Note,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		StatusHistory: history,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func presentOrders(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, presentOrder(o))
	}

	return out
}

// StatsResponse holds the admin dashboard counters.
type StatsResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalProducts    int64   `json:"totalProducts"`
	TotalCategories  int64   `json:"totalCategories"`
	PendingProducts  int64   `json:"pendingProducts"`
	PendingMerchants int64   `json:"pendingMerchants"`
	TotalOrders      int64   `json:"totalOrders"`
	PendingOrders    int64   `json:"pendingOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

func presentStats(s *entity.DashboardStats) StatsResponse {
	return StatsResponse(*s)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
