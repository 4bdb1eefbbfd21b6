package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRunUsage(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, run(context.Background(), db, nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run(context.Background(), db, []string{"drop-tables"}, &bytes.Buffer{}), errUsage)
	assert.Error(t, run(context.Background(), db, []string{"retire-pizza"}, &bytes.Buffer{}))
}

func TestCreateClient(t *testing.T) {
	db := setupTestDB(t)
	var out bytes.Buffer

	err := run(context.Background(), db, []string{"create-client", "-role", "admin", "-id", "ops", "-secret", "s3cr3t"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Client ID: ops")

	var client models.OAuthClient
	require.NoError(t, db.Where("id = ?", "ops").Take(&client).Error)
	assert.True(t, client.VerifyPassword("s3cr3t"))
	assert.NotEqual(t, "s3cr3t", client.Secret)

	var user models.User
	require.NoError(t, db.Where("id = ?", client.UserID).Take(&user).Error)
	assert.Equal(t, models.RoleAdmin, user.Role)

	err = run(context.Background(), db, []string{"create-client", "-id", "ops"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "already exists")
}

func TestRetireAndPurgePizza(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	pizza := models.Pizza{Name: "Marinara"}
	require.NoError(t, db.Create(&pizza).Error)
	order := models.Order{OrderState: models.OrderAccepted}
	require.NoError(t, db.Create(&order).Error)
	item := models.OrderItem{OrderID: order.ID, PizzaID: &pizza.ID, NumberOfPizzas: 1, IsActive: true}
	require.NoError(t, db.Create(&item).Error)

	id := []string{"-id", "1"}
	require.NoError(t, run(ctx, db, append([]string{"retire-pizza"}, id...), &bytes.Buffer{}))
	var stored models.Pizza
	require.NoError(t, db.Where("id = ?", pizza.ID).Take(&stored).Error)
	assert.True(t, stored.IsDeleted)

	require.NoError(t, run(ctx, db, append([]string{"purge-pizza"}, id...), &bytes.Buffer{}))
	var count int64
	require.NoError(t, db.Model(&models.Pizza{}).Where("id = ?", pizza.ID).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded models.OrderItem
	require.NoError(t, db.Where("id = ?", item.ID).Take(&reloaded).Error)
	assert.Nil(t, reloaded.PizzaID)

	assert.Error(t, run(ctx, db, append([]string{"purge-pizza"}, id...), &bytes.Buffer{}))
}

func TestRetireSizeAndPurgeTokens(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&models.PizzaSize{SizeName: models.SizeLarge}).Error)
	require.NoError(t, db.Create(&models.OAuthToken{ClientID: "c", AccessToken: "stale", ExpiresAt: time.Now().Add(-time.Minute)}).Error)

	require.NoError(t, run(ctx, db, []string{"retire-size", "-id", "1"}, &bytes.Buffer{}))
	require.NoError(t, run(ctx, db, []string{"purge-size", "-id", "1"}, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, run(ctx, db, []string{"purge-tokens"}, &out))
	assert.Equal(t, "1 expired tokens removed\n", out.String())
}
