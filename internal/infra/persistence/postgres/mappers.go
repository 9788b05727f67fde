package postgres

import (
	"market/internal/domain/entity"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Phone:        data.Phone,
		PasswordHash: data.Password,
		Name:         data.Name,
		Role:         entity.Role(data.Role),
		Avatar:       data.Avatar,
		IsActive:     data.IsActive,
		FCMToken:     data.FCMToken,
		Merchant:     toMerchantProfileDomain(data.MerchantProfile),
		Delivery:     toDeliveryProfileDomain(data.DeliveryProfile),
		Addresses:    make([]entity.Address, 0, len(data.Addresses)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Email != nil {
		user.Email = *data.Email
	}
	if data.OTPCode != "" && data.OTPExpiresAt != nil {
		user.OTP = &entity.OTP{Code: data.OTPCode, ExpiresAt: *data.OTPExpiresAt}
	}
	for i := range data.Addresses {
		user.Addresses = append(user.Addresses, *toAddressDomain(&data.Addresses[i]))
	}

	return user
}

func toUserDomains(data []model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for i := range data {
		users = append(users, toUserDomain(&data[i]))
	}

	return users
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:              data.ID,
		Phone:           data.Phone,
		Password:        data.PasswordHash,
		Name:            data.Name,
		Role:            string(data.Role),
		Avatar:          data.Avatar,
		IsActive:        data.IsActive,
		FCMToken:        data.FCMToken,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		MerchantProfile: fromMerchantProfileDomain(data.ID, data.Merchant),
		DeliveryProfile: fromDeliveryProfileDomain(data.ID, data.Delivery),
	}
	if data.Email != "" {
		email := data.Email
		userM.Email = &email
	}
	if data.OTP != nil {
		expiresAt := data.OTP.ExpiresAt
		userM.OTPCode = data.OTP.Code
		userM.OTPExpiresAt = &expiresAt
	}
	for i := range data.Addresses {
		addressM := fromAddressDomain(&data.Addresses[i])
		addressM.UserID = data.ID
		userM.Addresses = append(userM.Addresses, *addressM)
	}

	return userM
}

func toMerchantProfileDomain(data *model.MerchantProfileModel) *entity.MerchantProfile {
	if data == nil {
		return nil
	}

	return &entity.MerchantProfile{
		UserID:          data.UserID,
		ShopName:        data.ShopName,
		ShopDescription: data.ShopDescription,
		ShopAddress:     data.ShopAddress,
		ShopPhone:       data.ShopPhone,
		IsApproved:      data.IsApproved,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromMerchantProfileDomain(userID uuid.UUID, data *entity.MerchantProfile) *model.MerchantProfileModel {
	if data == nil {
		return nil
	}

	return &model.MerchantProfileModel{
		UserID:          userID,
		ShopName:        data.ShopName,
		ShopDescription: data.ShopDescription,
		ShopAddress:     data.ShopAddress,
		ShopPhone:       data.ShopPhone,
		IsApproved:      data.IsApproved,
	}
}

func toDeliveryProfileDomain(data *model.DeliveryProfileModel) *entity.DeliveryProfile {
	if data == nil {
		return nil
	}

	return &entity.DeliveryProfile{
		UserID:        data.UserID,
		VehicleType:   entity.VehicleType(data.VehicleType),
		VehicleNumber: data.VehicleNumber,
		IsApproved:    data.IsApproved,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromDeliveryProfileDomain(userID uuid.UUID, data *entity.DeliveryProfile) *model.DeliveryProfileModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryProfileModel{
		UserID:        userID,
		VehicleType:   string(data.VehicleType),
		VehicleNumber: data.VehicleNumber,
		IsApproved:    data.IsApproved,
	}
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:          data.ID,
		UserID:      data.UserID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		City:        data.City,
		Quarter:     data.Quarter,
		Details:     data.Details,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		City:        data.City,
		Quarter:     data.Quarter,
		Details:     data.Details,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		ComparePrice:    data.ComparePrice,
		Stock:           data.Stock,
		Image:           data.Image,
		Images:          nonNilStrings(data.Images),
		CategoryID:      data.CategoryID,
		MerchantID:      data.MerchantID,
		Status:          entity.ProductStatus(data.Status),
		IsApproved:      data.IsApproved,
		IsActive:        data.IsActive,
		RejectionReason: data.RejectionReason,
		Tags:            nonNilStrings(data.Tags),
		Specifications:  nonNilSpecifications(data.Specifications),
		Views:           data.Views,
		SoldCount:       data.SoldCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toProductDomains(data []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for i := range data {
		products = append(products, toProductDomain(&data[i]))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		ComparePrice:    data.ComparePrice,
		Stock:           data.Stock,
		Image:           data.Image,
		Images:          nonNilStrings(data.Images),
		CategoryID:      data.CategoryID,
		MerchantID:      data.MerchantID,
		Status:          string(data.Status),
		IsApproved:      data.IsApproved,
		IsActive:        data.IsActive,
		RejectionReason: data.RejectionReason,
		Tags:            nonNilStrings(data.Tags),
		Specifications:  nonNilSpecifications(data.Specifications),
		Views:           data.Views,
		SoldCount:       data.SoldCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func nonNilSpecifications(values []entity.Specification) []entity.Specification {
	if values == nil {
		return []entity.Specification{}
	}

	return values
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Order:       data.SortOrder,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCategoryDomains(data []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for i := range data {
		categories = append(categories, toCategoryDomain(&data[i]))
	}

	return categories
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		SortOrder:   data.Order,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		ClientID:    data.ClientID,
		DeliveryID:  data.DeliveryID,
		Items:       make([]entity.OrderItem, 0, len(data.Items)),
		TotalAmount: data.TotalAmount,
		DeliveryAddress: entity.OrderAddress{
			Label:       data.DeliveryAddress.Label,
			FullAddress: data.DeliveryAddress.FullAddress,
			City:        data.DeliveryAddress.City,
			Quarter:     data.DeliveryAddress.Quarter,
			Details:     data.DeliveryAddress.Details,
		},
		Note:          data.Note,
		PaymentMethod: data.PaymentMethod,
		Status:        entity.OrderStatus(data.Status),
		StatusHistory: make([]entity.OrderStatusChange, 0, len(data.History)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	for _, item := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			MerchantID: item.MerchantID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	for _, change := range data.History {
		order.StatusHistory = append(order.StatusHistory, toOrderStatusChangeDomain(change))
	}

	return order
}

func toOrderDomains(data []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for i := range data {
		orders = append(orders, toOrderDomain(&data[i]))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		ClientID:      data.ClientID,
		DeliveryID:    data.DeliveryID,
		TotalAmount:   data.TotalAmount,
		PaymentMethod: data.PaymentMethod,
		Status:        string(data.Status),
		Note:          data.Note,
		DeliveryAddress: model.OrderAddressModel{
			Label:       data.DeliveryAddress.Label,
			FullAddress: data.DeliveryAddress.FullAddress,
			City:        data.DeliveryAddress.City,
			Quarter:     data.DeliveryAddress.Quarter,
			Details:     data.DeliveryAddress.Details,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    data.ID,
			ProductID:  item.ProductID,
			MerchantID: item.MerchantID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	for _, change := range data.StatusHistory {
		orderM.History = append(orderM.History, fromOrderStatusChangeDomain(data.ID, change))
	}

	return orderM
}

func toOrderStatusChangeDomain(data model.OrderStatusChangeModel) entity.OrderStatusChange {
	return entity.OrderStatusChange{
		ID:        data.ID,
		OrderID:   data.OrderID,
		From:      entity.OrderStatus(data.FromStatus),
		To:        entity.OrderStatus(data.ToStatus),
		ChangedBy: data.ChangedBy,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}

func fromOrderStatusChangeDomain(orderID uuid.UUID, data entity.OrderStatusChange) model.OrderStatusChangeModel {
	return model.OrderStatusChangeModel{
		ID:         data.ID,
		OrderID:    orderID,
		FromStatus: string(data.From),
		ToStatus:   string(data.To),
		ChangedBy:  data.ChangedBy,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
	}
}
