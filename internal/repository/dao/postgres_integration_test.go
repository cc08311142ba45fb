//go:build integration

package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/canteen-api/internal/db"
)

var postgresDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct pool: %s", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=canteen",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=canteen",
			"listen_addresses='*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start resource: %s", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("postgres://canteen:secret@%s/canteen?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		postgresDB, err = db.OpenPostgresWithURL(dsn)
		if err != nil {
			return err
		}
		sqlDB, err := postgresDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres: %s", err)
	}

	if err = DropAllTables(postgresDB); err != nil {
		log.Fatalf("could not reset schema: %s", err)
	}
	if err = InitTables(postgresDB); err != nil {
		log.Fatalf("could not migrate: %s", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge resource: %s", err)
	}

	os.Exit(code)
}

func TestPostgres_UniqueViolations(t *testing.T) {
	ctx := context.Background()
	users := NewUserDAO(postgresDB)

	user, err := users.Insert(ctx, User{Username: "pg-owner", Password: "x", Role: "ADMIN_STAND"})
	require.NoError(t, err)

	_, err = users.Insert(ctx, User{Username: "pg-owner", Password: "x", Role: "ADMIN_STAND"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	stands := NewStandDAO(postgresDB)
	_, err = stands.Insert(ctx, Stand{StandName: "A", OwnerName: "A", Phone: "1", OwnerID: user.ID})
	require.NoError(t, err)

	_, err = stands.Insert(ctx, Stand{StandName: "B", OwnerName: "B", Phone: "2", OwnerID: user.ID})
	assert.ErrorIs(t, err, ErrStandAlreadyExists)
}

func TestPostgres_OrderTransactionAndStats(t *testing.T) {
	ctx := context.Background()
	users := NewUserDAO(postgresDB)

	owner, err := users.Insert(ctx, User{Username: "pg-stats-owner", Password: "x", Role: "ADMIN_STAND"})
	require.NoError(t, err)
	student, err := users.Insert(ctx, User{Username: "pg-stats-student", Password: "x", Role: "STUDENT"})
	require.NoError(t, err)

	stand, err := NewStandDAO(postgresDB).Insert(ctx, Stand{StandName: "PG", OwnerName: "PG", Phone: "1", OwnerID: owner.ID})
	require.NoError(t, err)
	menu, err := NewMenuDAO(postgresDB).Insert(ctx, Menu{StandID: stand.ID, Name: "Nasi", Price: 10000, Type: "FOOD"})
	require.NoError(t, err)

	d := NewOrderDAO(postgresDB)
	err = d.Transaction(ctx, func(tx *OrderDAO) error {
		m, err := tx.FindMenu(ctx, menu.ID, time.Now())
		if err != nil {
			return err
		}
		_, err = tx.Insert(ctx, Order{
			UserID:  student.ID,
			StandID: stand.ID,
			Status:  "PENDING",
			Items:   []OrderItem{{MenuID: m.ID, MenuName: m.Name, Quantity: 3, Price: 30000}},
		})
		return err
	})
	require.NoError(t, err)

	now := time.Now()
	sales, err := d.TopSellingMenus(ctx, stand.ID, now.Add(-time.Hour), now.Add(time.Hour), 5)
	require.NoError(t, err)
	assert.Equal(t, []MenuSales{{MenuID: menu.ID, MenuName: "Nasi", TotalSold: 3, TotalIncome: 30000}}, sales)

	orders, err := d.FindVisibleTo(ctx, owner.ID, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
