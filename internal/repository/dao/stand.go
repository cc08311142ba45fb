package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStandNotFound      = errors.New("stand not found")
	ErrStandAlreadyExists = errors.New("owner already has a stand")
)

type Stand struct {
	ID        uint      `gorm:"primaryKey"`
	StandName string    `gorm:"not null"`
	OwnerName string    `gorm:"not null"`
	Phone     string    `gorm:"not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Owner     User      `gorm:"foreignKey:OwnerID"`
	Menus     []Menu    `gorm:"foreignKey:StandID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StandDAO struct {
	db *gorm.DB
}

func NewStandDAO(db *gorm.DB) *StandDAO {
	return &StandDAO{
		db: db,
	}
}

func (d *StandDAO) Insert(ctx context.Context, stand Stand) (Stand, error) {
	result := d.db.WithContext(ctx).Omit("Owner", "Menus").Create(&stand)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_stands_owner_id") {
			return Stand{}, ErrStandAlreadyExists
		}

		return Stand{}, result.Error
	}

	return stand, nil
}

func (d *StandDAO) FindByID(ctx context.Context, id uint) (Stand, error) {
	return findStand(d.db.WithContext(ctx), "id = ?", id)
}

func (d *StandDAO) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (Stand, error) {
	return findStand(d.db.WithContext(ctx), "owner_id = ?", ownerID)
}

func (d *StandDAO) FindAll(ctx context.Context) ([]Stand, error) {
	var stands []Stand

	result := d.db.WithContext(ctx).Order("id").Find(&stands)
	if result.Error != nil {
		return nil, result.Error
	}

	return stands, nil
}

func (d *StandDAO) Update(ctx context.Context, stand Stand) (Stand, error) {
	result := d.db.WithContext(ctx).
		Model(&Stand{ID: stand.ID}).
		Updates(map[string]interface{}{
			"stand_name": stand.StandName,
			"owner_name": stand.OwnerName,
			"phone":      stand.Phone,
		})
	if result.Error != nil {
		return Stand{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Stand{}, ErrStandNotFound
	}

	return d.FindByID(ctx, stand.ID)
}

// Delete removes the stand together with its menus, discounts and orders.
func (d *StandDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findStand(tx, "id = ?", id); err != nil {
			return err
		}

		menuIDs := tx.Model(&Menu{}).Select("id").Where("stand_id = ?", id)
		if err := tx.Exec("DELETE FROM menu_discounts WHERE menu_id IN (?)", menuIDs).Error; err != nil {
			return err
		}

		discountIDs := tx.Model(&Discount{}).Select("id").Where("stand_id = ?", id)
		if err := tx.Exec("DELETE FROM menu_discounts WHERE discount_id IN (?)", discountIDs).Error; err != nil {
			return err
		}

		orderIDs := tx.Model(&Order{}).Select("id").Where("stand_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&OrderItem{}).Error; err != nil {
			return err
		}

		for _, model := range []interface{}{&Order{}, &Discount{}, &Menu{}} {
			if err := tx.Where("stand_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&Stand{}, id).Error
	})
}

func findStand(db *gorm.DB, query string, args ...interface{}) (Stand, error) {
	var stand Stand

	result := db.Where(query, args...).First(&stand)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stand{}, ErrStandNotFound
		}

		return Stand{}, result.Error
	}

	return stand, nil
}
