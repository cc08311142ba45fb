package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrMenuNotFound = errors.New("menu not found")

type Menu struct {
	ID          uint   `gorm:"primaryKey"`
	StandID     uint   `gorm:"not null;index"`
	Stand       Stand  `gorm:"foreignKey:StandID"`
	Name        string `gorm:"not null"`
	Description string
	Price       int64      `gorm:"not null"`
	Type        string     `gorm:"not null"` // "FOOD" or "DRINK"
	Photo       string
	Discounts   []Discount `gorm:"many2many:menu_discounts;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MenuDAO struct {
	db *gorm.DB
}

func NewMenuDAO(db *gorm.DB) *MenuDAO {
	return &MenuDAO{
		db: db,
	}
}

func (d *MenuDAO) Insert(ctx context.Context, menu Menu) (Menu, error) {
	result := d.db.WithContext(ctx).Omit("Stand", "Discounts").Create(&menu)
	if result.Error != nil {
		return Menu{}, result.Error
	}

	return menu, nil
}

// FindByID loads the menu with the discounts active at the given instant.
func (d *MenuDAO) FindByID(ctx context.Context, id uint, at time.Time) (Menu, error) {
	return findMenuActiveAt(d.db.WithContext(ctx), id, at)
}

func (d *MenuDAO) FindByStandID(ctx context.Context, standID uint, at time.Time) ([]Menu, error) {
	var menus []Menu

	result := d.db.WithContext(ctx).
		Preload("Discounts", activeDiscounts(at)).
		Where("stand_id = ?", standID).
		Order("id").
		Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

func (d *MenuDAO) Update(ctx context.Context, menu Menu) (Menu, error) {
	result := d.db.WithContext(ctx).
		Model(&Menu{ID: menu.ID}).
		Updates(map[string]interface{}{
			"name":        menu.Name,
			"description": menu.Description,
			"price":       menu.Price,
			"type":        menu.Type,
			"photo":       menu.Photo,
		})
	if result.Error != nil {
		return Menu{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Menu{}, ErrMenuNotFound
	}

	var updated Menu
	if err := d.db.WithContext(ctx).First(&updated, menu.ID).Error; err != nil {
		return Menu{}, err
	}

	return updated, nil
}

// Delete unlinks the menu from its discounts and removes it. Order items keep
// their snapshot.
func (d *MenuDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM menu_discounts WHERE menu_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Menu{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMenuNotFound
		}

		return nil
	})
}

func findMenuActiveAt(db *gorm.DB, id uint, at time.Time) (Menu, error) {
	var menu Menu

	result := db.Preload("Discounts", activeDiscounts(at)).First(&menu, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Menu{}, ErrMenuNotFound
		}

		return Menu{}, result.Error
	}

	return menu, nil
}

func activeDiscounts(at time.Time) func(db *gorm.DB) *gorm.DB {
	at = at.UTC()

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start_date <= ? AND end_date >= ?", at, at).Order("id")
	}
}
