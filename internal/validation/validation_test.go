package validation

import (
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title  string  `json:"title" validate:"required,max=5"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Count  *int    `json:"count" validate:"required,min=1,max=10"`
	Hidden string  `json:"-" validate:"omitempty,oneof=a b"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func TestStruct(t *testing.T) {
	testCases := []struct {
		name    string
		input   sample
		field   string
		message string
	}{
		{"blank", sample{Count: intPtr(1)}, "title", "This field may not be blank."},
		{"too long", sample{Title: "pizzas", Count: intPtr(1)}, "title", "Ensure this field has no more than 5 characters."},
		{"bad email", sample{Title: "ok", Email: strPtr("Jane Doe <jane@example.com>"), Count: intPtr(1)}, "email", "Enter a valid email address."},
		{"missing count", sample{Title: "ok"}, "count", "This field is required."},
		{"zero count", sample{Title: "ok", Count: intPtr(0)}, "count", "Ensure this value is greater than or equal to 1."},
		{"big count", sample{Title: "ok", Count: intPtr(11)}, "count", "Ensure this value is less than or equal to 10."},
		{"choice", sample{Title: "ok", Count: intPtr(1), Hidden: "c"}, "Hidden", `"c" is not a valid choice.`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)

			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}

	assert.NoError(t, Struct(sample{Title: "ok", Email: strPtr("jane@example.com"), Count: intPtr(3)}))
}

func TestVarCountsCharacters(t *testing.T) {
	assert.NoError(t, Var("name", strings.Repeat("é", 5), "required,max=5"))
	assert.NoError(t, Var("name", strings.Repeat("ж", 5), "required,max=5"))

	err := Var("name", strings.Repeat("é", 6), "required,max=5")
	assert.EqualError(t, err, "name: Ensure this field has no more than 5 characters.")
}

func TestTranslatePassesOtherErrors(t *testing.T) {
	assert.NoError(t, Translate(nil, "name"))
	assert.ErrorIs(t, Translate(errs.ErrNotFound, "name"), errs.ErrNotFound)
}
