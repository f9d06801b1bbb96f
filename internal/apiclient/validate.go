package apiclient

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"sponsortrack/internal/models"
)

// dealPresence catches fields whose absence decodes to a valid zero value.
type dealPresence struct {
	Value *decimal.Decimal `json:"value" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(models.Deal)
		if d.Value.IsNegative() {
			sl.ReportError(d.Value, "Value", "value", "nonnegative", "")
		}
	}, models.Deal{})
	return v
}
