package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

type OrderDAO interface {
	Transaction(ctx context.Context, fn func(tx *dao.OrderDAO) error) error
	FindStand(ctx context.Context, id uint) (dao.Stand, error)
	FindMenu(ctx context.Context, id uint, at time.Time) (dao.Menu, error)
	Insert(ctx context.Context, order dao.Order) (dao.Order, error)
	FindByID(ctx context.Context, id uint) (dao.Order, error)
	FindVisibleTo(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]dao.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Order, error)
	Delete(ctx context.Context, id uint) error
	FindByStand(ctx context.Context, standID uint, from, to time.Time) ([]dao.Order, error)
	TopSellingMenus(ctx context.Context, standID uint, from, to time.Time, limit int) ([]dao.MenuSales, error)
}

// OrderTx is the part of the order store usable inside a transaction.
type OrderTx interface {
	FindStand(ctx context.Context, id uint) (domain.Stand, error)
	FindMenu(ctx context.Context, id uint, at time.Time) (domain.Menu, error)
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

// InTx runs fn against a repository bound to one database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *OrderRepository) InTx(ctx context.Context, fn func(tx OrderTx) error) error {
	err := r.dao.Transaction(ctx, func(tx *dao.OrderDAO) error {
		return fn(NewOrderRepository(tx))
	})
	if err != nil {
		return fmt.Errorf("r.dao.Transaction -> %w", err)
	}

	return nil
}

func (r *OrderRepository) FindStand(ctx context.Context, id uint) (domain.Stand, error) {
	found, err := r.dao.FindStand(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.FindStand -> %w", err)
	}

	return standDaoToDomain(found), nil
}

func (r *OrderRepository) FindMenu(ctx context.Context, id uint, at time.Time) (domain.Menu, error) {
	found, err := r.dao.FindMenu(ctx, id, at)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.FindMenu -> %w", err)
	}

	return menuDaoToDomain(found), nil
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	items := make([]dao.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dao.OrderItem{
			MenuID:   item.MenuID,
			MenuName: item.MenuName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	created, err := r.dao.Insert(ctx, dao.Order{
		UserID:  order.UserID,
		StandID: order.StandID,
		Status:  string(order.Status),
		Items:   items,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return orderDaoToDomain(created), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return orderDaoToDomain(found), nil
}

func (r *OrderRepository) FindVisibleTo(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	found, err := r.dao.FindVisibleTo(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVisibleTo -> %w", err)
	}

	return ordersDaoToDomain(found), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) (domain.Order, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return orderDaoToDomain(updated), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OrderRepository) FindByStand(ctx context.Context, standID uint, from, to time.Time) ([]domain.Order, error) {
	found, err := r.dao.FindByStand(ctx, standID, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStand -> %w", err)
	}

	return ordersDaoToDomain(found), nil
}

func (r *OrderRepository) TopSellingMenus(
	ctx context.Context, standID uint, from, to time.Time, limit int,
) ([]domain.MenuSales, error) {
	found, err := r.dao.TopSellingMenus(ctx, standID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopSellingMenus -> %w", err)
	}

	sales := make([]domain.MenuSales, 0, len(found))
	for _, s := range found {
		sales = append(sales, domain.MenuSales{
			MenuID:      s.MenuID,
			MenuName:    s.MenuName,
			TotalSold:   s.TotalSold,
			TotalIncome: s.TotalIncome,
		})
	}

	return sales, nil
}

func orderDaoToDomain(order dao.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderItem{
			ID:       item.ID,
			OrderID:  item.OrderID,
			MenuID:   item.MenuID,
			MenuName: item.MenuName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	studentName := order.User.Username
	if order.User.Student != nil {
		studentName = order.User.Student.Name
	}

	return domain.Order{
		ID:          order.ID,
		UserID:      order.UserID,
		StandID:     order.StandID,
		Status:      domain.OrderStatus(order.Status),
		Items:       items,
		StandName:   order.Stand.StandName,
		StudentName: studentName,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func ordersDaoToDomain(found []dao.Order) []domain.Order {
	orders := make([]domain.Order, 0, len(found))
	for _, o := range found {
		orders = append(orders, orderDaoToDomain(o))
	}

	return orders
}
