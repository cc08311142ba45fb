package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/canteen-api/internal/db"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gdb))

	return gdb
}

func TestOrderRepository_InTx(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(dao.NewUserDAO(gdb))
	owner, err := users.Create(ctx, domain.User{Username: "owner", Password: "x", Role: domain.RoleAdminStand})
	require.NoError(t, err)
	student, err := users.Create(ctx, domain.User{Username: "andi", Password: "x", Role: domain.RoleStudent})
	require.NoError(t, err)

	stand, err := NewStandRepository(dao.NewStandDAO(gdb)).Create(ctx, domain.Stand{
		StandName: "Bakso", OwnerName: "Pak Kumis", Phone: "0812", OwnerID: owner.ID,
	})
	require.NoError(t, err)
	menu, err := NewMenuRepository(dao.NewMenuDAO(gdb)).Create(ctx, domain.Menu{
		StandID: stand.ID, Name: "Bakso Urat", Price: 15000, Type: domain.MenuTypeFood,
	})
	require.NoError(t, err)

	now := time.Now()
	_, err = NewDiscountRepository(dao.NewDiscountDAO(gdb)).Create(ctx, domain.Discount{
		Name: "Promo", Percentage: 10, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
		StandID: stand.ID, MenuIDs: []uint{menu.ID},
	})
	require.NoError(t, err)

	repo := NewOrderRepository(dao.NewOrderDAO(gdb))

	var created domain.Order
	err = repo.InTx(ctx, func(tx OrderTx) error {
		m, err := tx.FindMenu(ctx, menu.ID, now)
		if err != nil {
			return err
		}
		require.Len(t, m.Discounts, 1)

		created, err = tx.Create(ctx, domain.Order{
			UserID:  student.ID,
			StandID: stand.ID,
			Status:  domain.OrderPending,
			Items:   []domain.OrderItem{{MenuID: m.ID, MenuName: m.Name, Quantity: 1, Price: 13500}},
		})
		return err
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakso", found.StandName)
	assert.Equal(t, "andi", found.StudentName)
	assert.Equal(t, int64(13500), found.Total())

	errBoom := errors.New("boom")
	err = repo.InTx(ctx, func(tx OrderTx) error {
		if _, err := tx.Create(ctx, domain.Order{UserID: student.ID, StandID: stand.ID, Status: domain.OrderPending}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	orders, err := repo.FindVisibleTo(ctx, student.ID, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestRepository_NotFoundErrors(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	_, err := NewOrderRepository(dao.NewOrderDAO(gdb)).FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = NewStandRepository(dao.NewStandDAO(gdb)).FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrStandNotFound)

	_, err = NewMenuRepository(dao.NewMenuDAO(gdb)).FindByID(ctx, 1, time.Now())
	assert.ErrorIs(t, err, ErrMenuNotFound)

	_, err = NewDiscountRepository(dao.NewDiscountDAO(gdb)).FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}
