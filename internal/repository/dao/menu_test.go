package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuDAO_FindByID_ActiveDiscounts(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	menu := seedMenu(t, gdb, stand.ID, "Bakso Urat", 15000)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	discounts := NewDiscountDAO(gdb)
	_, err := discounts.Insert(ctx, Discount{
		Name: "Active", Percentage: 10, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour), StandID: stand.ID,
	}, []uint{menu.ID})
	require.NoError(t, err)
	_, err = discounts.Insert(ctx, Discount{
		Name: "Expired", Percentage: 50, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour), StandID: stand.ID,
	}, []uint{menu.ID})
	require.NoError(t, err)
	_, err = discounts.Insert(ctx, Discount{
		Name: "Starts on the dot", Percentage: 5, StartDate: now, EndDate: now.Add(time.Hour), StandID: stand.ID,
	}, []uint{menu.ID})
	require.NoError(t, err)

	d := NewMenuDAO(gdb)

	found, err := d.FindByID(ctx, menu.ID, now)
	require.NoError(t, err)
	require.Len(t, found.Discounts, 2)
	assert.Equal(t, "Active", found.Discounts[0].Name)
	assert.Equal(t, "Starts on the dot", found.Discounts[1].Name)

	menus, err := d.FindByStandID(ctx, stand.ID, now.Add(-30*time.Hour))
	require.NoError(t, err)
	require.Len(t, menus, 1)
	require.Len(t, menus[0].Discounts, 1)
	assert.Equal(t, "Expired", menus[0].Discounts[0].Name)

	_, err = d.FindByID(ctx, menu.ID+1, now)
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestMenuDAO_UpdateDelete(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	menu := seedMenu(t, gdb, stand.ID, "Bakso Urat", 15000)
	d := NewMenuDAO(gdb)

	menu.Price = 17000
	menu.Type = "DRINK"
	updated, err := d.Update(ctx, menu)
	require.NoError(t, err)
	assert.Equal(t, int64(17000), updated.Price)
	assert.Equal(t, "DRINK", updated.Type)

	now := time.Now()
	discount, err := NewDiscountDAO(gdb).Insert(ctx, Discount{
		Name: "Promo", Percentage: 10, StartDate: now, EndDate: now.Add(time.Hour), StandID: stand.ID,
	}, []uint{menu.ID})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, menu.ID))
	assert.ErrorIs(t, d.Delete(ctx, menu.ID), ErrMenuNotFound)

	found, err := NewDiscountDAO(gdb).FindByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Menus)
}

func TestDiscountDAO(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	other := seedUser(t, gdb, "other", "ADMIN_STAND")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	otherStand := seedStand(t, gdb, other.ID, "Es Teh")
	bakso := seedMenu(t, gdb, stand.ID, "Bakso", 15000)
	mie := seedMenu(t, gdb, stand.ID, "Mie Ayam", 12000)
	d := NewDiscountDAO(gdb)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	created, err := d.Insert(ctx, Discount{
		Name: "Januari", Percentage: 20, StartDate: start, EndDate: end, StandID: stand.ID,
	}, []uint{bakso.ID})
	require.NoError(t, err)
	require.Len(t, created.Menus, 1)
	assert.Equal(t, bakso.ID, created.Menus[0].ID)
	assert.True(t, start.Equal(created.StartDate))

	twice, err := d.Insert(ctx, Discount{
		Name: "Twice", Percentage: 10, StartDate: start, EndDate: end, StandID: stand.ID,
	}, []uint{mie.ID, mie.ID})
	require.NoError(t, err)
	require.Len(t, twice.Menus, 1)
	require.NoError(t, d.Delete(ctx, twice.ID))

	_, err = d.Insert(ctx, Discount{
		Name: "Other", Percentage: 5, StartDate: start, EndDate: end, StandID: otherStand.ID,
	}, nil)
	require.NoError(t, err)

	created.Percentage = 25
	updated, err := d.Update(ctx, created, []uint{bakso.ID, mie.ID})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Percentage)
	assert.Len(t, updated.Menus, 2)

	repeated, err := d.Update(ctx, updated, []uint{mie.ID, mie.ID, bakso.ID})
	require.NoError(t, err)
	require.Len(t, repeated.Menus, 2)
	assert.Equal(t, bakso.ID, repeated.Menus[0].ID)
	assert.Equal(t, mie.ID, repeated.Menus[1].ID)

	updated.Name = "Januari Ceria"
	kept, err := d.Update(ctx, updated, nil)
	require.NoError(t, err)
	assert.Equal(t, "Januari Ceria", kept.Name)
	assert.Len(t, kept.Menus, 2)

	mine, err := d.FindByOwnerID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, d.Delete(ctx, created.ID))
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrDiscountNotFound)

	_, err = d.Update(ctx, Discount{ID: created.ID}, nil)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}
