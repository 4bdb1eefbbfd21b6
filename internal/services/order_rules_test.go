package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOrderUpdate(t *testing.T) {
	testCases := []struct {
		name    string
		state   models.OrderState
		fields  []string
		allowed bool
	}{
		{"accepted any subset", models.OrderAccepted, []string{"customer", "order_state"}, true},
		{"accepted customer only", models.OrderAccepted, []string{"customer"}, true},
		{"accepted empty", models.OrderAccepted, []string{}, true},
		{"processing state only", models.OrderProcessing, []string{"order_state"}, true},
		{"canceled customer", models.OrderCanceled, []string{"customer"}, true},
		{"sent state only", models.OrderSent, []string{"order_state"}, true},
		{"delivered state only", models.OrderDelivered, []string{"order_state"}, true},
		{"sent customer", models.OrderSent, []string{"customer"}, false},
		{"sent both", models.OrderSent, []string{"customer", "order_state"}, false},
		{"delivered empty", models.OrderDelivered, []string{}, false},
		{"delivered nil", models.OrderDelivered, nil, false},
		{"sent with extra key", models.OrderSent, []string{"order_state", "items"}, false},
		{"accepted unknown key", models.OrderAccepted, []string{"items"}, false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOrderUpdate(tt.state, tt.fields)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestCheckOrderUpdateLockedMessage(t *testing.T) {
	err := CheckOrderUpdate(models.OrderSent, []string{"customer"})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Order can't be changed already. It is in state: S", validationErr.Message)
	assert.Equal(t, models.ErrOrderLocked, validationErr.Code)
	assert.Empty(t, validationErr.Field)
}
