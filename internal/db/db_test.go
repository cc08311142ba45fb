package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/canteen-api/internal/config"
)

func TestOpen_SQLite(t *testing.T) {
	conf := &config.AppConfig{
		API:    &config.APIConfig{DatabaseDriver: config.DriverSQLite},
		SQLite: &config.SQLiteConfig{Path: ":memory:"},
	}

	db, err := Open(conf, "")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", db.Dialector.Name())
	assert.Equal(t, time.UTC, db.NowFunc().Location())

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
