package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
)

// Writable order fields, named as they appear in request bodies.
const (
	FieldCustomer   = "customer"
	FieldOrderState = "order_state"
)

// CheckOrderUpdate decides whether an update touching fields may be applied
// to an order currently in state. fields must be the raw set of keys the
// client submitted, not what survived binding.
//
// A locked order (Sent, Delivered) accepts exactly {order_state} and nothing
// else, whatever state is requested. Any other order accepts any subset of
// the writable fields.
func CheckOrderUpdate(state models.OrderState, fields []string) error {
	if state.Locked() {
		if len(fields) == 1 && fields[0] == FieldOrderState {
			return nil
		}
		err := errs.NewValidationError("",
			fmt.Sprintf("Order can't be changed already. It is in state: %s", state))
		err.Code = models.ErrOrderLocked
		return err
	}

	for _, field := range fields {
		if field != FieldCustomer && field != FieldOrderState {
			return errs.NewValidationError(field, "Unknown field.")
		}
	}
	return nil
}
