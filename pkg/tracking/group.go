package tracking

import (
	"context"

	"github.com/soapboxsocial/tracker/pkg/validation"
)

// Group updates the profile of a single group, addressed by a group key and id.
type Group struct {
	token    string
	groupKey string
	groupID  interface{}
	delegate GroupDelegate
}

func newGroup(token, groupKey string, groupID interface{}, delegate GroupDelegate) *Group {
	return &Group{
		token:    token,
		groupKey: groupKey,
		groupID:  groupID,
		delegate: delegate,
	}
}

func (g *Group) Key() string {
	return g.groupKey
}

func (g *Group) ID() interface{} {
	return g.groupID
}

// Set sets group properties, overwriting existing values.
func (g *Group) Set(ctx context.Context, in PropertyInput) error {
	bag, err := in.resolve()
	if err != nil {
		return err
	}

	return g.delegate.GroupSetProperties(ctx, g.token, g.groupKey, g.groupID, bag)
}

// SetOnce sets group properties that are not already set.
func (g *Group) SetOnce(ctx context.Context, in PropertyInput) error {
	bag, err := in.resolve()
	if err != nil {
		return err
	}

	return g.delegate.GroupSetPropertyOnce(ctx, g.token, g.groupKey, g.groupID, bag)
}

func (g *Group) Unset(ctx context.Context, prop string) error {
	err := validation.String("prop", prop)
	if err != nil {
		return err
	}

	return g.delegate.GroupUnsetProperty(ctx, g.token, g.groupKey, g.groupID, prop)
}

func (g *Group) Remove(ctx context.Context, name string, value interface{}) error {
	err := validation.String("name", name)
	if err != nil {
		return err
	}

	err = validateValue(name, value)
	if err != nil {
		return err
	}

	return g.delegate.GroupRemovePropertyValue(ctx, g.token, g.groupKey, g.groupID, name, value)
}

// Union merges value into the list property name.
func (g *Group) Union(ctx context.Context, name string, value interface{}) error {
	err := validation.String("name", name)
	if err != nil {
		return err
	}

	values := List(value)
	err = validateValue(name, values)
	if err != nil {
		return err
	}

	return g.delegate.GroupUnionProperty(ctx, g.token, g.groupKey, g.groupID, name, values)
}
