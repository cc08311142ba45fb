package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDiscountNotFound = errors.New("discount not found")

type Discount struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	Percentage int       `gorm:"not null"`
	StartDate  time.Time `gorm:"not null;index"`
	EndDate    time.Time `gorm:"not null;index"`
	StandID    uint      `gorm:"not null;index"`
	Stand      Stand     `gorm:"foreignKey:StandID"`
	Menus      []Menu    `gorm:"many2many:menu_discounts;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type DiscountDAO struct {
	db *gorm.DB
}

func NewDiscountDAO(db *gorm.DB) *DiscountDAO {
	return &DiscountDAO{
		db: db,
	}
}

// Insert stores the discount and links it to the given menus.
func (d *DiscountDAO) Insert(ctx context.Context, discount Discount, menuIDs []uint) (Discount, error) {
	discount.StartDate = discount.StartDate.UTC()
	discount.EndDate = discount.EndDate.UTC()
	discount.Menus = menuRefs(menuIDs)

	result := d.db.WithContext(ctx).Omit("Stand", "Menus.*").Create(&discount)
	if result.Error != nil {
		return Discount{}, result.Error
	}

	return d.FindByID(ctx, discount.ID)
}

func (d *DiscountDAO) FindByID(ctx context.Context, id uint) (Discount, error) {
	var discount Discount

	result := d.db.WithContext(ctx).Preload("Menus", orderByID).First(&discount, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Discount{}, ErrDiscountNotFound
		}

		return Discount{}, result.Error
	}

	return discount, nil
}

func (d *DiscountDAO) FindAll(ctx context.Context) ([]Discount, error) {
	var discounts []Discount

	result := d.db.WithContext(ctx).Preload("Menus", orderByID).Order("id").Find(&discounts)
	if result.Error != nil {
		return nil, result.Error
	}

	return discounts, nil
}

func (d *DiscountDAO) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Discount, error) {
	var discounts []Discount

	result := d.db.WithContext(ctx).
		Preload("Menus", orderByID).
		Joins("JOIN stands ON stands.id = discounts.stand_id").
		Where("stands.owner_id = ?", ownerID).
		Order("discounts.id").
		Find(&discounts)
	if result.Error != nil {
		return nil, result.Error
	}

	return discounts, nil
}

// Update replaces the discount fields. When menuIDs is not nil the linked menu
// set is replaced as well.
func (d *DiscountDAO) Update(ctx context.Context, discount Discount, menuIDs []uint) (Discount, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Discount{ID: discount.ID}).
			Updates(map[string]interface{}{
				"name":       discount.Name,
				"percentage": discount.Percentage,
				"start_date": discount.StartDate.UTC(),
				"end_date":   discount.EndDate.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDiscountNotFound
		}

		if menuIDs == nil {
			return nil
		}

		if err := tx.Exec("DELETE FROM menu_discounts WHERE discount_id = ?", discount.ID).Error; err != nil {
			return err
		}
		for _, menuID := range uniqueIDs(menuIDs) {
			if err := tx.Exec(
				"INSERT INTO menu_discounts (menu_id, discount_id) VALUES (?, ?)", menuID, discount.ID,
			).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Discount{}, err
	}

	return d.FindByID(ctx, discount.ID)
}

func (d *DiscountDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM menu_discounts WHERE discount_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Discount{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDiscountNotFound
		}

		return nil
	})
}

func menuRefs(ids []uint) []Menu {
	ids = uniqueIDs(ids)
	menus := make([]Menu, 0, len(ids))
	for _, id := range ids {
		menus = append(menus, Menu{ID: id})
	}

	return menus
}

// uniqueIDs drops repeated ids, keeping the first occurrence order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
