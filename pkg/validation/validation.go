// Package validation contains the argument checks shared by the tracking facades.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	ReasonString         = "is not a valid string"
	ReasonObject         = "is not a valid json object"
	ReasonNumber         = "is not a valid number"
	ReasonPropertyNumber = "property value is not a valid number"
)

// InvalidArgumentError describes a parameter that failed validation.
type InvalidArgumentError struct {
	Param  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument returns an InvalidArgumentError for param.
func NewInvalidArgument(param, reason string) error {
	return &InvalidArgumentError{Param: param, Reason: reason}
}

// IsValidString returns whether v is a string that is neither empty nor only whitespace.
func IsValidString(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	return strings.TrimSpace(s) != ""
}

// IsValidStringOrUndefined is IsValidString but also accepts nil.
func IsValidStringOrUndefined(v interface{}) bool {
	return v == nil || IsValidString(v)
}

// IsValidObject returns whether v has an object shape. nil, maps, slices, arrays and
// structs all count.
func IsValidObject(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return true
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}

	return false
}

// IsValidObjectOrUndefined is IsValidObject. Go has a single nil so both variants agree.
func IsValidObjectOrUndefined(v interface{}) bool {
	return IsValidObject(v)
}

// String returns an InvalidArgumentError when v is not a valid string.
func String(param string, v interface{}) error {
	if !IsValidString(v) {
		return NewInvalidArgument(param, ReasonString)
	}

	return nil
}

// Object returns an InvalidArgumentError when v is not a valid object.
func Object(param string, v interface{}) error {
	if !IsValidObject(v) {
		return NewInvalidArgument(param, ReasonObject)
	}

	return nil
}

// Number parses v as a finite number.
func Number(param string, v interface{}) (float64, error) {
	n, ok := toFinite(v)
	if !ok {
		return 0, NewInvalidArgument(param, ReasonNumber)
	}

	return n, nil
}

// PropertyNumber is Number for a value inside a property bag.
func PropertyNumber(param string, v interface{}) (float64, error) {
	n, ok := toFinite(v)
	if !ok {
		return 0, NewInvalidArgument(param, ReasonPropertyNumber)
	}

	return n, nil
}

func toFinite(v interface{}) (float64, bool) {
	switch v.(type) {
	case nil, bool:
		return 0, false
	}

	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}
