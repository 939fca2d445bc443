// Package validator plugs go-playground/validator into Echo's Validator slot.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the Echo validator used for structural checks on bound DTOs.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs the struct tags on a bound payload. Callers decide how a
// failure maps onto the wire contract.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
