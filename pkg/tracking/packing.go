package tracking

import (
	"context"

	"github.com/soapboxsocial/tracker/pkg/platform"
)

// listPacker shapes the arguments of list mutations for the delegate in effect.
type listPacker interface {
	append(ctx context.Context, token, name string, value interface{}) error
	union(ctx context.Context, token, name string, values []interface{}) error
	remove(ctx context.Context, token, name string, value interface{}) error
}

// packerFor selects the packing once. iOS takes a single map, everything else takes
// the name and value separately.
func packerFor(p platform.Platform, delegate PeopleDelegate) listPacker {
	if p == platform.IOS {
		return mapPacker{delegate: delegate}
	}

	return pairPacker{delegate: delegate}
}

type mapPacker struct {
	delegate PeopleDelegate
}

func (m mapPacker) append(ctx context.Context, token, name string, value interface{}) error {
	return m.delegate.AppendProperties(ctx, token, PropertyBag{name: value})
}

func (m mapPacker) union(ctx context.Context, token, name string, values []interface{}) error {
	return m.delegate.UnionProperties(ctx, token, PropertyBag{name: values})
}

func (m mapPacker) remove(ctx context.Context, token, name string, value interface{}) error {
	return m.delegate.RemoveProperties(ctx, token, PropertyBag{name: value})
}

type pairPacker struct {
	delegate PeopleDelegate
}

func (p pairPacker) append(ctx context.Context, token, name string, value interface{}) error {
	return p.delegate.AppendProperty(ctx, token, name, value)
}

func (p pairPacker) union(ctx context.Context, token, name string, values []interface{}) error {
	return p.delegate.UnionProperty(ctx, token, name, values)
}

func (p pairPacker) remove(ctx context.Context, token, name string, value interface{}) error {
	return p.delegate.RemoveProperty(ctx, token, name, value)
}
