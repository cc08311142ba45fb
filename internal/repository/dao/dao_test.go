package dao

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/canteen-api/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, InitTables(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username, role string) User {
	t.Helper()

	user, err := NewUserDAO(gdb).Insert(context.Background(), User{
		Username: username,
		Password: "hashed",
		Role:     role,
	})
	require.NoError(t, err)

	return user
}

func seedStand(t *testing.T, gdb *gorm.DB, owner uuid.UUID, name string) Stand {
	t.Helper()

	stand, err := NewStandDAO(gdb).Insert(context.Background(), Stand{
		StandName: name,
		OwnerName: "Bu " + name,
		Phone:     "0812",
		OwnerID:   owner,
	})
	require.NoError(t, err)

	return stand
}

func seedMenu(t *testing.T, gdb *gorm.DB, standID uint, name string, price int64) Menu {
	t.Helper()

	menu, err := NewMenuDAO(gdb).Insert(context.Background(), Menu{
		StandID: standID,
		Name:    name,
		Price:   price,
		Type:    "FOOD",
	})
	require.NoError(t, err)

	return menu
}

func seedOrder(t *testing.T, gdb *gorm.DB, userID uuid.UUID, standID uint, createdAt time.Time, items ...OrderItem) Order {
	t.Helper()

	order, err := NewOrderDAO(gdb).Insert(context.Background(), Order{
		UserID:    userID,
		StandID:   standID,
		Status:    "PENDING",
		Items:     items,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: createdAt.UTC(),
	})
	require.NoError(t, err)

	return order
}
