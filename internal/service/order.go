package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/authz"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository"
)

var (
	ErrOrderNotFound           = repository.ErrOrderNotFound
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrMenuNotInStand          = errors.New("menu does not belong to this stand")
	ErrInvalidStatus           = errors.New("unknown order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrInvalidMonth            = errors.New("month must be between 0 and 12")
	ErrInvalidYear             = errors.New("year must be between 1 and 9999")
)

type OrderRepository interface {
	InTx(ctx context.Context, fn func(tx repository.OrderTx) error) error
	FindStand(ctx context.Context, id uint) (domain.Stand, error)
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindVisibleTo(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) (domain.Order, error)
	Delete(ctx context.Context, id uint) error
}

// ReceiptBranding is the fixed text printed on every receipt.
type ReceiptBranding struct {
	Title    string
	Subtitle string
	Footer   []string
}

type OrderService struct {
	orders   OrderRepository
	loc      *time.Location
	branding ReceiptBranding
	now      func() time.Time
}

func NewOrderService(orders OrderRepository, loc *time.Location, branding ReceiptBranding) *OrderService {
	return &OrderService{
		orders:   orders,
		loc:      loc,
		branding: branding,
		now:      time.Now,
	}
}

// CreateOrder prices every line with the best discount active now and stores
// the order with its items in one transaction. Nothing is written when a line
// fails.
func (s *OrderService) CreateOrder(
	ctx context.Context, p domain.Principal, standID uint, lines []domain.OrderLine,
) (domain.PlacedOrder, error) {
	if err := authz.Authorize(p, authz.Roles(domain.RoleStudent)); err != nil {
		return domain.PlacedOrder{}, err
	}
	if len(lines) == 0 {
		return domain.PlacedOrder{}, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return domain.PlacedOrder{}, ErrInvalidQuantity
		}
	}

	now := s.now()

	var placed domain.PlacedOrder
	err := s.orders.InTx(ctx, func(tx repository.OrderTx) error {
		if _, err := tx.FindStand(ctx, standID); err != nil {
			if errors.Is(err, ErrStandNotFound) {
				return fmt.Errorf("stand with id %d: %w", standID, ErrStandNotFound)
			}
			return fmt.Errorf("tx.FindStand -> %w", err)
		}

		items := make([]domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			menu, err := tx.FindMenu(ctx, line.MenuID, now)
			if errors.Is(err, ErrMenuNotFound) {
				return fmt.Errorf("menu with id %d: %w", line.MenuID, ErrMenuNotFound)
			}
			if err != nil {
				return fmt.Errorf("tx.FindMenu -> %w", err)
			}
			if menu.StandID != standID {
				return fmt.Errorf("menu with id %d: %w", menu.ID, ErrMenuNotInStand)
			}

			var percentage int
			if discount, ok := domain.BestDiscount(menu.Discounts, now); ok {
				percentage = discount.Percentage
			}

			items = append(items, domain.OrderItem{
				MenuID:   menu.ID,
				MenuName: menu.Name,
				Quantity: line.Quantity,
				Price:    domain.LinePrice(menu.Price, line.Quantity, percentage),
			})
		}

		created, err := tx.Create(ctx, domain.Order{
			UserID:  p.ID,
			StandID: standID,
			Status:  domain.OrderPending,
			Items:   items,
		})
		if err != nil {
			return fmt.Errorf("tx.Create -> %w", err)
		}

		placed.TotalPrice = domain.Order{Items: items}.Total()
		created.Items = nil
		placed.Order = created

		return nil
	})
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("s.orders.InTx -> %w", err)
	}

	return placed, nil
}

// UpdateStatus moves an order forward. Only the owner of the order's stand may
// do so.
func (s *OrderService) UpdateStatus(
	ctx context.Context, p domain.Principal, orderID uint, status domain.OrderStatus,
) (domain.Order, error) {
	if !status.IsValid() {
		return domain.Order{}, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.orders.FindByID -> %w", err)
	}

	stand, err := s.orders.FindStand(ctx, order.StandID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.orders.FindStand -> %w", err)
	}

	if err = authz.Authorize(p, authz.OwnedBy(stand.OwnerID)); err != nil {
		return domain.Order{}, err
	}

	if !order.Status.CanTransitionTo(status) {
		return domain.Order{}, fmt.Errorf("%s to %s: %w", order.Status, status, ErrInvalidStatusTransition)
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.orders.UpdateStatus -> %w", err)
	}

	return updated, nil
}

// FindAll lists the orders the principal placed or received at their stand.
// Month 1..12 selects that month of year, month 0 the whole year. Year 0 means
// the current year in the canteen time zone.
func (s *OrderService) FindAll(ctx context.Context, p domain.Principal, month, year int) ([]domain.Order, error) {
	if month < 0 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if year == 0 {
		year = s.now().In(s.loc).Year()
	}
	if year < 1 || year > 9999 {
		return nil, ErrInvalidYear
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(1, 0, 0)
	if month != 0 {
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
		to = from.AddDate(0, 1, 0)
	}

	orders, err := s.orders.FindVisibleTo(ctx, p.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("s.orders.FindVisibleTo -> %w", err)
	}

	return orders, nil
}

// FindOne returns an order to the student who placed it.
func (s *OrderService) FindOne(ctx context.Context, p domain.Principal, orderID uint) (domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.orders.FindByID -> %w", err)
	}

	if err = authz.Authorize(p, authz.OwnedBy(order.UserID)); err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, p domain.Principal, orderID uint) error {
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return fmt.Errorf("s.orders.FindByID -> %w", err)
	}

	if err := authz.Authorize(p, authz.SuperadminOnly()); err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("s.orders.Delete -> %w", err)
	}

	return nil
}

// BuildReceipt assembles the printable receipt of an order for the student
// who placed it.
func (s *OrderService) BuildReceipt(ctx context.Context, p domain.Principal, orderID uint) (domain.Receipt, error) {
	order, err := s.FindOne(ctx, p, orderID)
	if err != nil {
		return domain.Receipt{}, err
	}

	lines := make([]domain.ReceiptLine, 0, len(order.Items))
	for _, item := range order.Items {
		var unitPrice float64
		if item.Quantity > 0 {
			unitPrice = float64(item.Price) / float64(item.Quantity)
		}

		lines = append(lines, domain.ReceiptLine{
			Name:      item.MenuName,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Total:     item.Price,
		})
	}

	return domain.Receipt{
		Title:       s.branding.Title,
		Subtitle:    s.branding.Subtitle,
		Footer:      s.branding.Footer,
		OrderID:     order.ID,
		IssuedAt:    order.CreatedAt.In(s.loc),
		StudentName: order.StudentName,
		StandName:   order.StandName,
		Lines:       lines,
		GrandTotal:  order.Total(),
	}, nil
}
