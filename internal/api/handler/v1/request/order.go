package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

var errEmptyItems = errors.New("items must contain at least one menu")

type OrderItemRequest struct {
	MenuID   uint `json:"menu_id" example:"1"`
	Quantity int  `json:"quantity" example:"2"`
}

func (req OrderItemRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.MenuID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type CreateOrderRequest struct {
	StandID uint               `json:"stand_id" example:"1"`
	Items   []OrderItemRequest `json:"items"`
}

func (req *CreateOrderRequest) Validate() error {
	if len(req.Items) == 0 {
		return errEmptyItems
	}

	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StandID, validation.Required),
	)
	if err != nil {
		return err
	}

	for i, item := range req.Items {
		if err = item.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return nil
}

func (req *CreateOrderRequest) ToLines() []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.OrderLine{MenuID: item.MenuID, Quantity: item.Quantity})
	}

	return lines
}

type UpdateOrderRequest struct {
	Status domain.OrderStatus `json:"status" example:"COOKING" enums:"PENDING,COOKING,READY,COMPLETED,CANCELLED"`
}

func (req *UpdateOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required),
	)
}

// ListOrdersQuery filters orders to a calendar month. Month 0 means the whole
// year, year 0 the current year.
type ListOrdersQuery struct {
	Month int `form:"month" example:"3"`
	Year  int `form:"year" example:"2025"`
}
