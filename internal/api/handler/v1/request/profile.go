package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

var phoneExp = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

type CreateStudentRequest struct {
	Name    string `json:"name" example:"Budi Santoso"`
	Address string `json:"address" example:"Jl. Melati No. 5"`
	Phone   string `json:"phone" example:"081234567890"`
	Photo   string `json:"photo,omitempty" example:"https://cdn.example.com/budi.jpg"`
}

func (req *CreateStudentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Address, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.Photo, is.URL),
	)
}

func (req *CreateStudentRequest) ToStudent() domain.Student {
	return domain.Student{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Photo:   req.Photo,
	}
}

type UpdateStudentRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Photo   *string `json:"photo,omitempty"`
}

func (req *UpdateStudentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Address, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.Phone, validation.NilOrNotEmpty, validation.Match(phoneExp)),
		validation.Field(&req.Photo, is.URL),
	)
}

func (req *UpdateStudentRequest) ToUpdate() domain.StudentUpdate {
	return domain.StudentUpdate{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Photo:   req.Photo,
	}
}

type CreateStandRequest struct {
	StandName string `json:"stand_name" example:"Bakso Pak Kumis"`
	OwnerName string `json:"owner_name" example:"Pak Kumis"`
	Phone     string `json:"phone" example:"081234567890"`
}

func (req *CreateStandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StandName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.OwnerName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
	)
}

func (req *CreateStandRequest) ToStand() domain.Stand {
	return domain.Stand{
		StandName: req.StandName,
		OwnerName: req.OwnerName,
		Phone:     req.Phone,
	}
}

type UpdateStandRequest struct {
	StandName *string `json:"stand_name,omitempty"`
	OwnerName *string `json:"owner_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (req *UpdateStandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StandName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.OwnerName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Phone, validation.NilOrNotEmpty, validation.Match(phoneExp)),
	)
}

func (req *UpdateStandRequest) ToUpdate() domain.StandUpdate {
	return domain.StandUpdate{
		StandName: req.StandName,
		OwnerName: req.OwnerName,
		Phone:     req.Phone,
	}
}
