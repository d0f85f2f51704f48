// Package validator wraps go-playground struct validation with readable
// error messages for config loading.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		msg := fmt.Sprintf("%s violates %q", ve.Namespace(), ve.Tag())
		if ve.Param() != "" {
			msg += fmt.Sprintf("=%s", ve.Param())
		}
		msgs = append(msgs, msg)
	}

	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
