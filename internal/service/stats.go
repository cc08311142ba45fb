package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

const (
	statsMonths   = 12
	topMenusLimit = 5
)

type StatsOrderRepository interface {
	FindByStand(ctx context.Context, standID uint, from, to time.Time) ([]domain.Order, error)
	TopSellingMenus(ctx context.Context, standID uint, from, to time.Time, limit int) ([]domain.MenuSales, error)
}

type StandOwnerFinder interface {
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error)
}

type StatsService struct {
	stands StandOwnerFinder
	orders StatsOrderRepository
	loc    *time.Location
	now    func() time.Time
}

func NewStatsService(stands StandOwnerFinder, orders StatsOrderRepository, loc *time.Location) *StatsService {
	return &StatsService{
		stands: stands,
		orders: orders,
		loc:    loc,
		now:    time.Now,
	}
}

// GetStandStats summarises the owner's stand over the last twelve calendar
// months, the current month included.
func (s *StatsService) GetStandStats(ctx context.Context, ownerID uuid.UUID) (domain.StandStats, error) {
	stand, err := s.stands.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return domain.StandStats{}, fmt.Errorf("s.stands.FindByOwnerID -> %w", err)
	}

	now := s.now().In(s.loc)
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	from := currentMonth.AddDate(0, -(statsMonths - 1), 0)
	to := currentMonth.AddDate(0, 1, 0)

	orders, err := s.orders.FindByStand(ctx, stand.ID, from, to)
	if err != nil {
		return domain.StandStats{}, fmt.Errorf("s.orders.FindByStand -> %w", err)
	}

	topMenus, err := s.orders.TopSellingMenus(ctx, stand.ID, from, to, topMenusLimit)
	if err != nil {
		return domain.StandStats{}, fmt.Errorf("s.orders.TopSellingMenus -> %w", err)
	}

	monthly := make([]domain.MonthlyIncome, statsMonths)
	for i := range monthly {
		m := from.AddDate(0, i, 0)
		monthly[i] = domain.MonthlyIncome{Month: m.Month().String(), Year: m.Year()}
	}

	var totalIncome, itemsSold int64
	for _, order := range orders {
		createdAt := order.CreatedAt.In(s.loc)
		idx := (createdAt.Year()-from.Year())*12 + int(createdAt.Month()) - int(from.Month())
		income := order.Total()
		if idx >= 0 && idx < statsMonths {
			monthly[idx].Total += income
		}

		totalIncome += income
		for _, item := range order.Items {
			itemsSold += int64(item.Quantity)
		}
	}

	stats := domain.StandStats{
		MonthlyIncome:   monthly,
		TotalOrders:     int64(len(orders)),
		TotalItemsSold:  itemsSold,
		TopSellingMenus: topMenus,
	}
	if stats.TotalOrders > 0 {
		stats.AverageIncomePerOrder = float64(totalIncome) / float64(stats.TotalOrders)
	}

	return stats, nil
}
