package tracking

import (
	"encoding/json"
	"reflect"

	"github.com/soapboxsocial/tracker/pkg/validation"
)

// PropertyBag maps property names to JSON serializable values.
type PropertyBag map[string]interface{}

// Validate checks that every key is a non-empty string and the bag serializes to JSON.
func (p PropertyBag) Validate(param string) error {
	for key := range p {
		if key == "" {
			return validation.NewInvalidArgument(param, validation.ReasonObject)
		}
	}

	_, err := json.Marshal(p)
	if err != nil {
		return validation.NewInvalidArgument(param, validation.ReasonObject)
	}

	return nil
}

// Clone returns a deep copy of the bag. Nested maps and slices are copied as well.
func (p PropertyBag) Clone() PropertyBag {
	if p == nil {
		return nil
	}

	out := make(PropertyBag, len(p))
	for key, val := range p {
		out[key] = cloneValue(val)
	}

	return out
}

// Merge returns a new bag with the keys of p overlaid by each of others in order.
func (p PropertyBag) Merge(others ...map[string]interface{}) PropertyBag {
	out := make(PropertyBag, len(p))
	for key, val := range p {
		out[key] = val
	}

	for _, other := range others {
		for key, val := range other {
			out[key] = val
		}
	}

	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case PropertyBag:
		return val.Clone()
	case map[string]interface{}:
		return map[string]interface{}(PropertyBag(val).Clone())
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}

		return out
	}

	return v
}

// PropertyInput is either a single named property or a whole property bag.
type PropertyInput struct {
	name  string
	value interface{}
	bag   PropertyBag
	isBag bool
}

// Property returns an input holding a single property.
func Property(name string, value interface{}) PropertyInput {
	return PropertyInput{name: name, value: value}
}

// Properties returns an input holding a full bag.
func Properties(bag PropertyBag) PropertyInput {
	return PropertyInput{bag: bag, isBag: true}
}

// resolve returns the bag the input stands for. The bag form is deep copied.
func (in PropertyInput) resolve() (PropertyBag, error) {
	if !in.isBag {
		err := validation.String("prop", in.name)
		if err != nil {
			return nil, err
		}

		bag := PropertyBag{in.name: in.value}
		err = bag.Validate("prop")
		if err != nil {
			return nil, err
		}

		return bag, nil
	}

	if in.bag == nil {
		return nil, validation.NewInvalidArgument("prop", validation.ReasonObject)
	}

	err := in.bag.Validate("prop")
	if err != nil {
		return nil, err
	}

	return in.bag.Clone(), nil
}

// List normalizes value to a list. Slices and arrays are converted, anything else is wrapped.
func List(value interface{}) []interface{} {
	if list, ok := value.([]interface{}); ok {
		return list
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []interface{}{}
		}

		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}

		return out
	}

	return []interface{}{value}
}

// validateValue checks that a single list mutation value serializes to JSON.
func validateValue(name string, value interface{}) error {
	return PropertyBag{name: value}.Validate("value")
}

// bagOrEmpty validates an optional bag and normalizes nil to an empty bag.
func bagOrEmpty(param string, bag PropertyBag) (PropertyBag, error) {
	if bag == nil {
		return PropertyBag{}, nil
	}

	err := bag.Validate(param)
	if err != nil {
		return nil, err
	}

	return bag, nil
}
