package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUser(t *testing.T) {
	users := NewUserService(setupTestDB(t))

	created, err := users.EnsureUser(testCtx, "ops@pizza.local", "Ops", models.RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	again, err := users.EnsureUser(testCtx, "ops@pizza.local", "Someone else", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, models.RoleAdmin, again.Role)

	_, err = users.EnsureUser(testCtx, "root@pizza.local", "Root", "superuser")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = users.GetUserByEmail(testCtx, "nobody@pizza.local")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCreateClient(t *testing.T) {
	clients := NewClientService(setupTestDB(t))

	client := &models.OAuthClient{ID: "kitchen", UserID: 1, GrantTypes: "client_credentials"}
	require.NoError(t, clients.CreateClient(testCtx, client, "s3cr3t"))
	assert.NotEqual(t, "s3cr3t", client.Secret)

	stored, err := clients.GetClientByID(testCtx, "kitchen")
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword("s3cr3t"))

	err = clients.CreateClient(testCtx, &models.OAuthClient{ID: "empty"}, "")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = clients.GetClientByID(testCtx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
