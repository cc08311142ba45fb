package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

type CreateMenuRequest struct {
	Name        string          `json:"name" example:"Bakso Urat"`
	Description string          `json:"description,omitempty" example:"Bakso urat dengan mie kuning"`
	Price       int64           `json:"price" example:"15000"`
	Type        domain.MenuType `json:"type" example:"FOOD" enums:"FOOD,DRINK"`
	Photo       string          `json:"photo,omitempty" example:"https://cdn.example.com/bakso.jpg"`
	// Only read for SUPERADMIN callers.
	StandID uint `json:"stand_id,omitempty" example:"1"`
}

func (req *CreateMenuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Price, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Type, validation.Required, validation.In(domain.MenuTypeFood, domain.MenuTypeDrink)),
		validation.Field(&req.Photo, is.URL),
	)
}

func (req *CreateMenuRequest) ToMenu() domain.Menu {
	return domain.Menu{
		StandID:     req.StandID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		Photo:       req.Photo,
	}
}

type UpdateMenuRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *int64           `json:"price,omitempty"`
	Type        *domain.MenuType `json:"type,omitempty"`
	Photo       *string          `json:"photo,omitempty"`
}

func (req *UpdateMenuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Price, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&req.Type, validation.NilOrNotEmpty, validation.In(domain.MenuTypeFood, domain.MenuTypeDrink)),
		validation.Field(&req.Photo, is.URL),
	)
}

func (req *UpdateMenuRequest) ToUpdate() domain.MenuUpdate {
	return domain.MenuUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		Photo:       req.Photo,
	}
}

type CreateDiscountRequest struct {
	Name       string    `json:"name" example:"Promo Ramadan"`
	Percentage int       `json:"percentage" example:"25" minimum:"0" maximum:"100"`
	StartDate  time.Time `json:"start_date" example:"2025-06-01T00:00:00Z"`
	EndDate    time.Time `json:"end_date" example:"2025-06-30T23:59:59Z"`
	MenuIDs    []uint    `json:"menu_ids,omitempty"`
	// Only read for SUPERADMIN callers.
	StandID uint `json:"stand_id,omitempty" example:"1"`
}

func (req *CreateDiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Percentage, validation.Min(0), validation.Max(100)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
}

func (req *CreateDiscountRequest) ToDiscount() domain.Discount {
	return domain.Discount{
		Name:       req.Name,
		Percentage: req.Percentage,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		StandID:    req.StandID,
		MenuIDs:    req.MenuIDs,
	}
}

// UpdateDiscountRequest replaces the linked menu set when menu_ids is present,
// including an empty list.
type UpdateDiscountRequest struct {
	Name       *string    `json:"name,omitempty"`
	Percentage *int       `json:"percentage,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	MenuIDs    *[]uint    `json:"menu_ids,omitempty"`
}

func (req *UpdateDiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Percentage, validation.Min(0), validation.Max(100)),
	)
}

func (req *UpdateDiscountRequest) ToUpdate() domain.DiscountUpdate {
	update := domain.DiscountUpdate{
		Name:       req.Name,
		Percentage: req.Percentage,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if req.MenuIDs != nil {
		update.MenuIDs = *req.MenuIDs
		if update.MenuIDs == nil {
			update.MenuIDs = []uint{}
		}
	}

	return update
}
