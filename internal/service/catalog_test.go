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

func newStandFinder(stands ...domain.Stand) *mockStandRepo {
	return &mockStandRepo{
		findByIDFn: func(_ context.Context, id uint) (domain.Stand, error) {
			for _, s := range stands {
				if s.ID == id {
					return s, nil
				}
			}
			return domain.Stand{}, ErrStandNotFound
		},
		findByOwnerIDFn: func(_ context.Context, ownerID uuid.UUID) (domain.Stand, error) {
			for _, s := range stands {
				if s.OwnerID == ownerID {
					return s, nil
				}
			}
			return domain.Stand{}, ErrStandNotFound
		},
	}
}

func TestStandService(t *testing.T) {
	owner := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	intruder := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	superadmin := domain.Principal{ID: uuid.New(), Role: domain.RoleSuperadmin}
	student := domain.Principal{ID: uuid.New(), Role: domain.RoleStudent}

	repo := newStandFinder(domain.Stand{ID: 1, StandName: "Bakso", OwnerID: owner.ID})
	repo.createFn = func(_ context.Context, stand domain.Stand) (domain.Stand, error) {
		stand.ID = 2
		return stand, nil
	}
	repo.updateFn = func(_ context.Context, stand domain.Stand) (domain.Stand, error) {
		return stand, nil
	}
	var deleted bool
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}
	svc := NewStandService(repo)
	ctx := context.Background()

	created, err := svc.CreateStand(ctx, intruder, domain.Stand{StandName: "Soto", OwnerID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, intruder.ID, created.OwnerID)

	_, err = svc.CreateStand(ctx, student, domain.Stand{StandName: "Soto"})
	assert.ErrorIs(t, err, ErrForbidden)

	name := "Bakso Pak Kumis"
	updated, err := svc.UpdateOwnStand(ctx, owner, domain.StandUpdate{StandName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.StandName)

	_, err = svc.UpdateStand(ctx, intruder, 1, domain.StandUpdate{StandName: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStand(ctx, superadmin, 1, domain.StandUpdate{StandName: &name})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteStand(ctx, owner, 1), ErrForbidden)
	assert.ErrorIs(t, svc.DeleteStand(ctx, superadmin, 9), ErrStandNotFound)
	assert.False(t, deleted)
	require.NoError(t, svc.DeleteStand(ctx, superadmin, 1))
	assert.True(t, deleted)
}

func TestMenuService_CreateMenu(t *testing.T) {
	owner := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	superadmin := domain.Principal{ID: uuid.New(), Role: domain.RoleSuperadmin}
	stands := newStandFinder(
		domain.Stand{ID: 1, OwnerID: owner.ID},
		domain.Stand{ID: 2, OwnerID: uuid.New()},
	)
	menus := &mockMenuRepo{
		createFn: func(_ context.Context, menu domain.Menu) (domain.Menu, error) {
			menu.ID = 10
			return menu, nil
		},
	}
	svc := NewMenuService(menus, stands)
	ctx := context.Background()

	created, err := svc.CreateMenu(ctx, owner, domain.Menu{Name: "Bakso", Price: 15000})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.StandID)

	_, err = svc.CreateMenu(ctx, owner, domain.Menu{StandID: 2, Name: "Bakso"})
	assert.ErrorIs(t, err, ErrForbidden)

	created, err = svc.CreateMenu(ctx, superadmin, domain.Menu{StandID: 2, Name: "Soto"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), created.StandID)

	_, err = svc.CreateMenu(ctx, superadmin, domain.Menu{Name: "Soto"})
	assert.ErrorIs(t, err, ErrStandRequired)

	_, err = svc.CreateMenu(ctx, superadmin, domain.Menu{StandID: 3, Name: "Soto"})
	assert.ErrorIs(t, err, ErrStandNotFound)
}

func TestMenuService_GetStandMenus(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	stands := newStandFinder(domain.Stand{ID: 1, OwnerID: uuid.New()})
	menus := &mockMenuRepo{
		findByStandIDFn: func(_ context.Context, standID uint, at time.Time) ([]domain.Menu, error) {
			assert.Equal(t, now, at)
			return []domain.Menu{
				{ID: 1, StandID: standID, Discounts: []domain.Discount{
					{ID: 1, Percentage: 10, StartDate: now, EndDate: now},
					{ID: 2, Percentage: 25, StartDate: now, EndDate: now},
				}},
				{ID: 2, StandID: standID},
			}, nil
		},
	}
	svc := NewMenuService(menus, stands)
	svc.now = fixedClock(now)

	got, err := svc.GetStandMenus(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Discount)
	assert.Equal(t, 25, got[0].Discount.Percentage)
	assert.Nil(t, got[1].Discount)

	_, err = svc.GetStandMenus(context.Background(), 9)
	assert.ErrorIs(t, err, ErrStandNotFound)
}

func TestMenuService_UpdateDelete(t *testing.T) {
	owner := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	intruder := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	superadmin := domain.Principal{ID: uuid.New(), Role: domain.RoleSuperadmin}
	stands := newStandFinder(domain.Stand{ID: 1, OwnerID: owner.ID})
	menus := &mockMenuRepo{
		findByIDFn: func(_ context.Context, id uint, _ time.Time) (domain.Menu, error) {
			if id != 5 {
				return domain.Menu{}, ErrMenuNotFound
			}
			return domain.Menu{ID: 5, StandID: 1, Name: "Bakso", Price: 15000}, nil
		},
		updateFn: func(_ context.Context, menu domain.Menu) (domain.Menu, error) {
			return menu, nil
		},
		deleteFn: func(context.Context, uint) error { return nil },
	}
	svc := NewMenuService(menus, stands)
	ctx := context.Background()

	price := int64(17000)
	updated, err := svc.UpdateMenu(ctx, owner, 5, domain.MenuUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(17000), updated.Price)
	assert.Equal(t, "Bakso", updated.Name)

	_, err = svc.UpdateMenu(ctx, intruder, 5, domain.MenuUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateMenu(ctx, intruder, 6, domain.MenuUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrMenuNotFound)

	assert.ErrorIs(t, svc.DeleteMenu(ctx, intruder, 5), ErrForbidden)
	assert.NoError(t, svc.DeleteMenu(ctx, superadmin, 5))
}

func TestDiscountService(t *testing.T) {
	owner := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	intruder := domain.Principal{ID: uuid.New(), Role: domain.RoleAdminStand}
	stands := newStandFinder(
		domain.Stand{ID: 1, OwnerID: owner.ID},
		domain.Stand{ID: 2, OwnerID: intruder.ID},
	)
	menus := &mockMenuRepo{
		findByIDFn: func(_ context.Context, id uint, _ time.Time) (domain.Menu, error) {
			switch id {
			case 10, 11:
				return domain.Menu{ID: id, StandID: 1}, nil
			case 20:
				return domain.Menu{ID: id, StandID: 2}, nil
			}
			return domain.Menu{}, ErrMenuNotFound
		},
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	discounts := &mockDiscountRepo{
		createFn: func(_ context.Context, d domain.Discount) (domain.Discount, error) {
			d.ID = 7
			return d, nil
		},
		findByIDFn: func(_ context.Context, id uint) (domain.Discount, error) {
			if id != 7 {
				return domain.Discount{}, ErrDiscountNotFound
			}
			return domain.Discount{ID: 7, StandID: 1, Percentage: 10, StartDate: start, EndDate: end, MenuIDs: []uint{10}}, nil
		},
		updateFn: func(_ context.Context, d domain.Discount) (domain.Discount, error) {
			return d, nil
		},
		deleteFn: func(context.Context, uint) error { return nil },
	}
	svc := NewDiscountService(discounts, stands, menus)
	ctx := context.Background()

	created, err := svc.CreateDiscount(ctx, owner, domain.Discount{
		Name: "Januari", Percentage: 20, StartDate: start, EndDate: end, MenuIDs: []uint{10, 11},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.StandID)

	_, err = svc.CreateDiscount(ctx, owner, domain.Discount{Percentage: 20, StartDate: start, EndDate: end, MenuIDs: []uint{20}})
	assert.ErrorIs(t, err, ErrMenuNotInStand)

	_, err = svc.CreateDiscount(ctx, owner, domain.Discount{Percentage: 20, StartDate: start, EndDate: end, MenuIDs: []uint{99}})
	assert.ErrorIs(t, err, ErrMenuNotFound)

	_, err = svc.CreateDiscount(ctx, owner, domain.Discount{Percentage: 20, StartDate: end, EndDate: start})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.CreateDiscount(ctx, owner, domain.Discount{Percentage: 101, StartDate: start, EndDate: end})
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	pct := 30
	updated, err := svc.UpdateDiscount(ctx, owner, 7, domain.DiscountUpdate{Percentage: &pct})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Percentage)
	assert.Nil(t, updated.MenuIDs)

	_, err = svc.UpdateDiscount(ctx, owner, 7, domain.DiscountUpdate{MenuIDs: []uint{20}})
	assert.ErrorIs(t, err, ErrMenuNotInStand)

	_, err = svc.GetDiscount(ctx, intruder, 7)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, svc.DeleteDiscount(ctx, intruder, 7), ErrForbidden)
	assert.ErrorIs(t, svc.DeleteDiscount(ctx, owner, 8), ErrDiscountNotFound)
	assert.NoError(t, svc.DeleteDiscount(ctx, owner, 7))
}
