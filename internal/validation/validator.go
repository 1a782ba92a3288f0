package validation

import validatorv10 "github.com/go-playground/validator/v10"

// New returns the validator instance shared by all handlers.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// CreateOrderRequest fields in validation precedence order, each with
// the message the storefront expects.
var orderFieldOrder = []string{"Items", "CustomerPhone", "TotalAmount"}

var orderFieldMessages = map[string]string{
	"Items":         "items array is required and cannot be empty",
	"CustomerPhone": "customerPhone is required",
	"TotalAmount":   "totalAmount is required and must be positive",
}

// OrderErrorMessage picks the highest-precedence failed field of a
// CreateOrderRequest validation error and returns its message.
func OrderErrorMessage(err error) string {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return err.Error()
	}

	failed := map[string]bool{}
	for _, fe := range ve {
		failed[fe.StructField()] = true
	}
	for _, field := range orderFieldOrder {
		if failed[field] {
			return orderFieldMessages[field]
		}
	}
	return ve.Error()
}
