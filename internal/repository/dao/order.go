package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type Order struct {
	ID        uint        `gorm:"primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	User      User        `gorm:"foreignKey:UserID"`
	StandID   uint        `gorm:"not null;index"`
	Stand     Stand       `gorm:"foreignKey:StandID"`
	Status    string      `gorm:"not null;default:'PENDING'"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `gorm:"index"`
	UpdatedAt time.Time
}

// OrderItem keeps a snapshot of the menu at ordering time. MenuID is a plain
// reference so deleting a menu never touches past orders.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"not null;index"`
	MenuID   uint   `gorm:"not null;index"`
	MenuName string `gorm:"not null"`
	Quantity int    `gorm:"not null"`
	Price    int64  `gorm:"not null"` // line total after discount
}

type MenuSales struct {
	MenuID      uint
	MenuName    string
	TotalSold   int64
	TotalIncome int64
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// Transaction runs fn with a DAO bound to a single database transaction.
// PostgreSQL transactions run at REPEATABLE READ.
func (d *OrderDAO) Transaction(ctx context.Context, fn func(tx *OrderDAO) error) error {
	var opts []*sql.TxOptions
	if d.db.Dialector.Name() == "postgres" {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderDAO{db: tx})
	}, opts...)
}

func (d *OrderDAO) FindStand(ctx context.Context, id uint) (Stand, error) {
	return findStand(d.db.WithContext(ctx), "id = ?", id)
}

func (d *OrderDAO) FindMenu(ctx context.Context, id uint, at time.Time) (Menu, error) {
	return findMenuActiveAt(d.db.WithContext(ctx), id, at)
}

// Insert stores the order and its items.
func (d *OrderDAO) Insert(ctx context.Context, order Order) (Order, error) {
	result := d.db.WithContext(ctx).Omit("User", "Stand").Create(&order)
	if result.Error != nil {
		return Order{}, result.Error
	}

	return order, nil
}

func (d *OrderDAO) FindByID(ctx context.Context, id uint) (Order, error) {
	var order Order

	result := d.withDetails(ctx).First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

// FindVisibleTo returns the orders placed by the user or placed at a stand the
// user owns, created in [from, to).
func (d *OrderDAO) FindVisibleTo(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Order, error) {
	var orders []Order

	result := d.withDetails(ctx).
		Select("orders.*").
		Joins("JOIN stands ON stands.id = orders.stand_id").
		Where("orders.user_id = ? OR stands.owner_id = ?", userID, userID).
		Where("orders.created_at >= ? AND orders.created_at < ?", from.UTC(), to.UTC()).
		Order("orders.created_at DESC").
		Order("orders.id DESC").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *OrderDAO) UpdateStatus(ctx context.Context, id uint, status string) (Order, error) {
	result := d.db.WithContext(ctx).Model(&Order{ID: id}).Update("status", status)
	if result.Error != nil {
		return Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Order{}, ErrOrderNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *OrderDAO) Delete(ctx context.Context, id uint) error {
	return d.Transaction(ctx, func(tx *OrderDAO) error {
		if err := tx.db.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}

		result := tx.db.Delete(&Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}

		return nil
	})
}

// FindByStand returns the stand's orders created in [from, to) with their items.
func (d *OrderDAO) FindByStand(ctx context.Context, standID uint, from, to time.Time) ([]Order, error) {
	var orders []Order

	result := d.db.WithContext(ctx).
		Preload("Items").
		Where("stand_id = ? AND created_at >= ? AND created_at < ?", standID, from.UTC(), to.UTC()).
		Order("created_at").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// TopSellingMenus aggregates the stand's order items in [from, to) by menu.
func (d *OrderDAO) TopSellingMenus(
	ctx context.Context, standID uint, from, to time.Time, limit int,
) ([]MenuSales, error) {
	var sales []MenuSales

	result := d.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.menu_id AS menu_id, " +
			"MAX(order_items.menu_name) AS menu_name, " +
			"CAST(SUM(order_items.quantity) AS BIGINT) AS total_sold, " +
			"CAST(SUM(order_items.price) AS BIGINT) AS total_income").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.stand_id = ? AND orders.created_at >= ? AND orders.created_at < ?",
			standID, from.UTC(), to.UTC()).
		Group("order_items.menu_id").
		Order("total_sold DESC").
		Order("order_items.menu_id ASC").
		Limit(limit).
		Scan(&sales)
	if result.Error != nil {
		return nil, result.Error
	}

	return sales, nil
}

func (d *OrderDAO) withDetails(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Items", orderByID).
		Preload("Stand").
		Preload("User.Student")
}
