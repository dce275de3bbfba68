package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// RegisterValidators installs custom binding validations on gin's
// validator engine. Call once before handling requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("datestr", validDateString)
}

// validDateString accepts calendar dates in YYYY-MM-DD form
func validDateString(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}
