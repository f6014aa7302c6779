package api

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const utf8Tag = "utf8"

var (
	registerOnce sync.Once
	registerErr  error
)

// validUTF8 rejects strings carrying invalid UTF-8 sequences.
var validUTF8 validator.Func = func(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return utf8.ValidString(field.String())
}

// jsonTagName makes validation errors refer to the fields by their json names.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// addValidators installs the json tag names and the custom rules on v.
func addValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonTagName)
	if err := v.RegisterValidation(utf8Tag, validUTF8); err != nil {
		return fmt.Errorf("cannot register %q validation: %w", utf8Tag, err)
	}
	return nil
}

// registerValidators configures gin's validator engine once per process.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = addValidators(v)
	})
	return registerErr
}
