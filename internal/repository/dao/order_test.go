package dao

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDAO_Transaction(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	student := seedUser(t, gdb, "student", "STUDENT")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	menu := seedMenu(t, gdb, stand.ID, "Bakso Urat", 15000)
	d := NewOrderDAO(gdb)

	var created Order
	err := d.Transaction(ctx, func(tx *OrderDAO) error {
		if _, err := tx.FindStand(ctx, stand.ID); err != nil {
			return err
		}
		m, err := tx.FindMenu(ctx, menu.ID, time.Now())
		if err != nil {
			return err
		}

		created, err = tx.Insert(ctx, Order{
			UserID:  student.ID,
			StandID: stand.ID,
			Status:  "PENDING",
			Items:   []OrderItem{{MenuID: m.ID, MenuName: m.Name, Quantity: 2, Price: 30000}},
		})
		return err
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakso", found.Stand.StandName)
	require.Len(t, found.Items, 1)
	assert.Equal(t, int64(30000), found.Items[0].Price)
}

func TestOrderDAO_Transaction_Rollback(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	student := seedUser(t, gdb, "student", "STUDENT")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	d := NewOrderDAO(gdb)

	errBoom := errors.New("boom")
	err := d.Transaction(ctx, func(tx *OrderDAO) error {
		if _, err := tx.Insert(ctx, Order{
			UserID:  student.ID,
			StandID: stand.ID,
			Status:  "PENDING",
			Items:   []OrderItem{{MenuID: 1, MenuName: "x", Quantity: 1, Price: 1}},
		}); err != nil {
			return err
		}

		_, err := tx.FindMenu(ctx, 42, time.Now())
		if err != nil {
			return errBoom
		}
		return nil
	})
	assert.ErrorIs(t, err, errBoom)

	var count int64
	require.NoError(t, gdb.Model(&Order{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, gdb.Model(&OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderDAO_FindVisibleTo(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	otherOwner := seedUser(t, gdb, "other-owner", "ADMIN_STAND")
	student := seedUser(t, gdb, "student", "STUDENT")
	otherStudent := seedUser(t, gdb, "other-student", "STUDENT")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	otherStand := seedStand(t, gdb, otherOwner.ID, "Es Teh")

	require.NoError(t, gdb.Create(&Student{UserID: student.ID, Name: "Budi", Address: "-", Phone: "-"}).Error)

	item := OrderItem{MenuID: 1, MenuName: "Bakso", Quantity: 1, Price: 15000}
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	may20 := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	jun1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	o1 := seedOrder(t, gdb, student.ID, stand.ID, may1, item)
	o2 := seedOrder(t, gdb, student.ID, otherStand.ID, may20, item)
	o3 := seedOrder(t, gdb, otherStudent.ID, stand.ID, may20, item)
	seedOrder(t, gdb, otherStudent.ID, otherStand.ID, may20, item)
	seedOrder(t, gdb, student.ID, stand.ID, jun1, item)

	d := NewOrderDAO(gdb)

	got, err := d.FindVisibleTo(ctx, student.ID, may1, jun1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, o2.ID, got[0].ID)
	assert.Equal(t, o1.ID, got[1].ID)
	require.NotNil(t, got[1].User.Student)
	assert.Equal(t, "Budi", got[1].User.Student.Name)
	assert.Equal(t, "Bakso", got[1].Stand.StandName)
	assert.Len(t, got[1].Items, 1)

	got, err = d.FindVisibleTo(ctx, owner.ID, may1, jun1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, o3.ID, got[0].ID)
	assert.Equal(t, o1.ID, got[1].ID)
	assert.Nil(t, got[0].User.Student)
}

func TestOrderDAO_UpdateStatusDelete(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	student := seedUser(t, gdb, "student", "STUDENT")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	order := seedOrder(t, gdb, student.ID, stand.ID, time.Now(),
		OrderItem{MenuID: 1, MenuName: "Bakso", Quantity: 1, Price: 15000})
	d := NewOrderDAO(gdb)

	updated, err := d.UpdateStatus(ctx, order.ID, "COOKING")
	require.NoError(t, err)
	assert.Equal(t, "COOKING", updated.Status)
	assert.Equal(t, student.ID, updated.UserID)

	_, err = d.UpdateStatus(ctx, order.ID+1, "COOKING")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	require.NoError(t, d.Delete(ctx, order.ID))
	assert.ErrorIs(t, d.Delete(ctx, order.ID), ErrOrderNotFound)

	var count int64
	require.NoError(t, gdb.Model(&OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = d.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderDAO_Stats(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, gdb, "owner", "ADMIN_STAND")
	otherOwner := seedUser(t, gdb, "other-owner", "ADMIN_STAND")
	student := seedUser(t, gdb, "student", "STUDENT")
	stand := seedStand(t, gdb, owner.ID, "Bakso")
	otherStand := seedStand(t, gdb, otherOwner.ID, "Es Teh")

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	at := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	seedOrder(t, gdb, student.ID, stand.ID, at,
		OrderItem{MenuID: 2, MenuName: "Mie", Quantity: 3, Price: 30000},
		OrderItem{MenuID: 1, MenuName: "Bakso", Quantity: 2, Price: 27000})
	seedOrder(t, gdb, student.ID, stand.ID, at.AddDate(0, 1, 0),
		OrderItem{MenuID: 1, MenuName: "Bakso", Quantity: 1, Price: 15000},
		OrderItem{MenuID: 3, MenuName: "Es", Quantity: 1, Price: 5000})
	seedOrder(t, gdb, student.ID, stand.ID, from.AddDate(-1, 0, 0),
		OrderItem{MenuID: 3, MenuName: "Es", Quantity: 10, Price: 50000})
	seedOrder(t, gdb, student.ID, otherStand.ID, at,
		OrderItem{MenuID: 9, MenuName: "Teh", Quantity: 50, Price: 150000})

	d := NewOrderDAO(gdb)

	orders, err := d.FindByStand(ctx, stand.ID, from, to)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 2)

	sales, err := d.TopSellingMenus(ctx, stand.ID, from, to, 2)
	require.NoError(t, err)
	assert.Equal(t, []MenuSales{
		{MenuID: 1, MenuName: "Bakso", TotalSold: 3, TotalIncome: 42000},
		{MenuID: 2, MenuName: "Mie", TotalSold: 3, TotalIncome: 30000},
	}, sales)
}
