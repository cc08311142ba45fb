package domain

import (
	"time"

	"github.com/google/uuid"
)

type Stand struct {
	ID        uint      `json:"id"`
	StandName string    `json:"stand_name"`
	OwnerName string    `json:"owner_name"`
	Phone     string    `json:"phone"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MonthlyIncome struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Total int64  `json:"total"`
}

type MenuSales struct {
	MenuID      uint   `json:"menu_id"`
	MenuName    string `json:"menu_name"`
	TotalSold   int64  `json:"total_sold"`
	TotalIncome int64  `json:"total_income"`
}

type StandStats struct {
	MonthlyIncome         []MonthlyIncome `json:"monthly_income"`
	TotalOrders           int64           `json:"total_orders"`
	AverageIncomePerOrder float64         `json:"average_income_per_order"`
	TotalItemsSold        int64           `json:"total_items_sold"`
	TopSellingMenus       []MenuSales     `json:"top_selling_menus"`
}

type StandUpdate struct {
	StandName *string
	OwnerName *string
	Phone     *string
}

func (u StandUpdate) Apply(s Stand) Stand {
	if u.StandName != nil {
		s.StandName = *u.StandName
	}
	if u.OwnerName != nil {
		s.OwnerName = *u.OwnerName
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	return s
}
