package domain

import (
	"time"
)

type MenuType string

const (
	MenuTypeFood  MenuType = "FOOD"
	MenuTypeDrink MenuType = "DRINK"
)

type Menu struct {
	ID          uint       `json:"id"`
	StandID     uint       `json:"stand_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Type        MenuType   `json:"type"`
	Photo       string     `json:"photo,omitempty"`
	Discounts   []Discount `json:"-"`
	Discount    *Discount  `json:"discount,omitempty"` // best discount active at read time
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// WithBestDiscount attaches the best discount active at t, if any.
func (m Menu) WithBestDiscount(t time.Time) Menu {
	m.Discount = nil
	if d, ok := BestDiscount(m.Discounts, t); ok {
		m.Discount = &d
	}
	return m
}

type Discount struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Percentage int       `json:"percentage"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	StandID    uint      `json:"stand_id"`
	MenuIDs    []uint    `json:"menu_ids,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsActiveAt reports whether t lies inside [StartDate, EndDate].
func (d Discount) IsActiveAt(t time.Time) bool {
	return !t.Before(d.StartDate) && !t.After(d.EndDate)
}

// BestDiscount picks the active discount with the highest percentage.
// Equal percentages resolve to the lowest discount ID.
func BestDiscount(discounts []Discount, t time.Time) (Discount, bool) {
	var (
		best  Discount
		found bool
	)
	for _, d := range discounts {
		if !d.IsActiveAt(t) {
			continue
		}
		if !found ||
			d.Percentage > best.Percentage ||
			(d.Percentage == best.Percentage && d.ID < best.ID) {
			best = d
			found = true
		}
	}

	return best, found
}

type MenuUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	Type        *MenuType
	Photo       *string
}

func (u MenuUpdate) Apply(m Menu) Menu {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Price != nil {
		m.Price = *u.Price
	}
	if u.Type != nil {
		m.Type = *u.Type
	}
	if u.Photo != nil {
		m.Photo = *u.Photo
	}
	return m
}

// DiscountUpdate changes a discount. A nil MenuIDs keeps the linked menus, a
// non-nil one replaces them.
type DiscountUpdate struct {
	Name       *string
	Percentage *int
	StartDate  *time.Time
	EndDate    *time.Time
	MenuIDs    []uint
}

func (u DiscountUpdate) Apply(d Discount) Discount {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Percentage != nil {
		d.Percentage = *u.Percentage
	}
	if u.StartDate != nil {
		d.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		d.EndDate = *u.EndDate
	}
	d.MenuIDs = u.MenuIDs
	return d
}
