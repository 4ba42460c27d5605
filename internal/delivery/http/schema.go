package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// instructionRequest is the inbound body shape. The schema check runs before
// the interpreter; schema violations are reported outside the interpreter's
// status-code taxonomy.
type instructionRequest struct {
	Accounts    []accountPayload `json:"accounts" validate:"required,dive"`
	Instruction string           `json:"instruction" validate:"required"`
}

type accountPayload struct {
	ID       string `json:"id" validate:"required"`
	Balance  int64  `json:"balance" validate:"gte=0"`
	Currency string `json:"currency" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkSchema trims the instruction and validates the request shape,
// returning a caller-readable description of the first violation.
func checkSchema(req *instructionRequest) error {
	req.Instruction = strings.TrimSpace(req.Instruction)

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "instructionRequest."))
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "gte":
		return fmt.Errorf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Errorf("%s failed validation on %s", field, fe.Tag())
	}
}
