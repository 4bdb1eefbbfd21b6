package database

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "postgres from fields",
			config: DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "orders", SSLMode: "disable"},
			expected: "host=db user=pizza password=secret dbname=orders port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins",
			config:   DatabaseConfig{Driver: "postgresql", URL: "postgres://pizza:secret@db:5432/orders", Host: "ignored"},
			expected: "postgres://pizza:secret@db:5432/orders",
		},
		{
			name:     "sqlite file enables foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "pizza.sqlite"},
			expected: "pizza.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite memory",
			config:   DatabaseConfig{Driver: "", Path: ":memory:"},
			expected: ":memory:",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", URL: "postgres://pizza:secret@db/orders", Password: "secret"}

	out := cfg.String()

	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "[REDACTED]")
}

func TestMaskURL(t *testing.T) {
	assert.Equal(t, "", MaskURL(""))
	assert.Equal(t, "postgres://pizza:%5BREDACTED%5D@db/orders", MaskURL("postgres://pizza:secret@db/orders"))
	assert.Equal(t, "postgres://db/orders", MaskURL("postgres://db/orders"))
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := InitDatabase(context.Background(), DatabaseConfig{Driver: "oracle"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitDatabaseMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(context.Background(), DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, Seed(db))
	// a second run leaves the catalog alone
	require.NoError(t, Seed(db))

	var sizes, pizzas int64
	require.NoError(t, db.Model(&models.PizzaSize{}).Count(&sizes).Error)
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.Equal(t, int64(4), sizes)
	assert.Equal(t, int64(4), pizzas)
}
