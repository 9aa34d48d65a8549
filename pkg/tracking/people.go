package tracking

import (
	"context"

	"github.com/soapboxsocial/tracker/pkg/platform"
	"github.com/soapboxsocial/tracker/pkg/validation"
)

// People updates the profile of the identified user.
type People struct {
	token    string
	delegate Delegate
	lists    listPacker
}

func newPeople(token string, delegate Delegate, p platform.Platform) *People {
	return &People{
		token:    token,
		delegate: delegate,
		lists:    packerFor(p, delegate),
	}
}

// Set sets profile properties, overwriting existing values.
func (p *People) Set(ctx context.Context, in PropertyInput) error {
	bag, err := in.resolve()
	if err != nil {
		return err
	}

	return p.delegate.Set(ctx, p.token, bag)
}

// SetOnce sets profile properties that are not already set.
func (p *People) SetOnce(ctx context.Context, in PropertyInput) error {
	bag, err := in.resolve()
	if err != nil {
		return err
	}

	return p.delegate.SetOnce(ctx, p.token, bag)
}

// Increment adds to numeric profile properties. A single property with a nil value is
// incremented by 1.
func (p *People) Increment(ctx context.Context, in PropertyInput) error {
	bag := PropertyBag{}

	if in.isBag {
		if in.bag == nil {
			return validation.NewInvalidArgument("prop", validation.ReasonObject)
		}

		err := in.bag.Validate("prop")
		if err != nil {
			return err
		}

		for key, val := range in.bag {
			n, err := validation.PropertyNumber(key, val)
			if err != nil {
				return err
			}

			bag[key] = n
		}

		return p.delegate.Increment(ctx, p.token, bag)
	}

	err := validation.String("prop", in.name)
	if err != nil {
		return err
	}

	by := float64(1)
	if in.value != nil {
		by, err = validation.Number("by", in.value)
		if err != nil {
			return err
		}
	}

	bag[in.name] = by
	return p.delegate.Increment(ctx, p.token, bag)
}

// Append appends value to the list property name.
func (p *People) Append(ctx context.Context, name string, value interface{}) error {
	err := validation.String("name", name)
	if err != nil {
		return err
	}

	err = validateValue(name, value)
	if err != nil {
		return err
	}

	return p.lists.append(ctx, p.token, name, value)
}

// Union merges value into the list property name, skipping values already present.
func (p *People) Union(ctx context.Context, name string, value interface{}) error {
	err := validation.String("name", name)
	if err != nil {
		return err
	}

	values := List(value)
	err = validateValue(name, values)
	if err != nil {
		return err
	}

	return p.lists.union(ctx, p.token, name, values)
}

// Remove removes value from the list property name.
func (p *People) Remove(ctx context.Context, name string, value interface{}) error {
	err := validation.String("name", name)
	if err != nil {
		return err
	}

	err = validateValue(name, value)
	if err != nil {
		return err
	}

	return p.lists.remove(ctx, p.token, name, value)
}

// Unset removes the property name from the profile.
func (p *People) Unset(ctx context.Context, name string) error {
	err := validation.String("propertyName", name)
	if err != nil {
		return err
	}

	return p.delegate.Unset(ctx, p.token, name)
}

// TrackCharge records a revenue transaction on the profile.
func (p *People) TrackCharge(ctx context.Context, charge interface{}, properties PropertyBag) error {
	amount, err := validation.Number("charge", charge)
	if err != nil {
		return err
	}

	props, err := bagOrEmpty("properties", properties)
	if err != nil {
		return err
	}

	return p.delegate.TrackCharge(ctx, p.token, amount, props)
}

func (p *People) ClearCharges(ctx context.Context) error {
	return p.delegate.ClearCharges(ctx, p.token)
}

// DeleteUser deletes the profile.
func (p *People) DeleteUser(ctx context.Context) error {
	return p.delegate.DeleteUser(ctx, p.token)
}
