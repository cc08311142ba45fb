package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

func TestStatsService_GetStandStats(t *testing.T) {
	ownerID := uuid.New()
	stands := &mockStandRepo{
		findByOwnerIDFn: func(_ context.Context, id uuid.UUID) (domain.Stand, error) {
			assert.Equal(t, ownerID, id)
			return domain.Stand{ID: 3, OwnerID: id}, nil
		},
	}

	wantFrom := time.Date(2023, 4, 1, 0, 0, 0, 0, wib)
	wantTo := time.Date(2024, 4, 1, 0, 0, 0, 0, wib)
	top := []domain.MenuSales{{MenuID: 1, MenuName: "Bakso", TotalSold: 5, TotalIncome: 70000}}

	orders := &mockOrderRepo{
		findByStandFn: func(_ context.Context, standID uint, from, to time.Time) ([]domain.Order, error) {
			assert.Equal(t, uint(3), standID)
			assert.True(t, wantFrom.Equal(from), "from = %v", from)
			assert.True(t, wantTo.Equal(to), "to = %v", to)

			return []domain.Order{
				{
					CreatedAt: time.Date(2023, 4, 5, 2, 0, 0, 0, time.UTC),
					Items:     []domain.OrderItem{{Quantity: 2, Price: 30000}},
				},
				{
					// 1 March 03:00 in the canteen zone.
					CreatedAt: time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC),
					Status:    domain.OrderCancelled,
					Items:     []domain.OrderItem{{Quantity: 1, Price: 15000}, {Quantity: 1, Price: 5000}},
				},
				{
					CreatedAt: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
					Items:     []domain.OrderItem{{Quantity: 1, Price: 20000}},
				},
			}, nil
		},
		topSellingFn: func(_ context.Context, standID uint, from, to time.Time, limit int) ([]domain.MenuSales, error) {
			assert.Equal(t, 5, limit)
			assert.True(t, wantFrom.Equal(from))
			assert.True(t, wantTo.Equal(to))
			return top, nil
		},
	}

	svc := NewStatsService(stands, orders, wib)
	svc.now = fixedClock(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	stats, err := svc.GetStandStats(context.Background(), ownerID)
	require.NoError(t, err)

	require.Len(t, stats.MonthlyIncome, 12)
	assert.Equal(t, domain.MonthlyIncome{Month: "April", Year: 2023, Total: 30000}, stats.MonthlyIncome[0])
	assert.Equal(t, domain.MonthlyIncome{Month: "February", Year: 2024, Total: 20000}, stats.MonthlyIncome[10])
	assert.Equal(t, domain.MonthlyIncome{Month: "March", Year: 2024, Total: 20000}, stats.MonthlyIncome[11])
	assert.Equal(t, domain.MonthlyIncome{Month: "May", Year: 2023}, stats.MonthlyIncome[1])

	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(5), stats.TotalItemsSold)
	assert.InDelta(t, 23333.33, stats.AverageIncomePerOrder, 0.01)
	assert.Equal(t, top, stats.TopSellingMenus)
}

func TestStatsService_NoOrders(t *testing.T) {
	stands := &mockStandRepo{
		findByOwnerIDFn: func(_ context.Context, id uuid.UUID) (domain.Stand, error) {
			return domain.Stand{ID: 1, OwnerID: id}, nil
		},
	}
	orders := &mockOrderRepo{
		findByStandFn: func(context.Context, uint, time.Time, time.Time) ([]domain.Order, error) {
			return nil, nil
		},
		topSellingFn: func(context.Context, uint, time.Time, time.Time, int) ([]domain.MenuSales, error) {
			return []domain.MenuSales{}, nil
		},
	}

	svc := NewStatsService(stands, orders, time.UTC)
	svc.now = fixedClock(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC))

	stats, err := svc.GetStandStats(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.AverageIncomePerOrder)
	assert.Equal(t, "February", stats.MonthlyIncome[0].Month)
	assert.Equal(t, 2023, stats.MonthlyIncome[0].Year)
	assert.Equal(t, "January", stats.MonthlyIncome[11].Month)
	assert.Equal(t, 2024, stats.MonthlyIncome[11].Year)
}

func TestStatsService_StandNotFound(t *testing.T) {
	stands := &mockStandRepo{
		findByOwnerIDFn: func(context.Context, uuid.UUID) (domain.Stand, error) {
			return domain.Stand{}, ErrStandNotFound
		},
	}

	svc := NewStatsService(stands, &mockOrderRepo{}, time.UTC)

	_, err := svc.GetStandStats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStandNotFound)
}
