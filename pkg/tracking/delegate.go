package tracking

import "context"

// TrackingDelegate is the engine behind a Tracker. It owns queuing, persistence and delivery.
type TrackingDelegate interface {
	Initialize(ctx context.Context, token string, optOutDefault bool, properties PropertyBag) error

	SetServerURL(ctx context.Context, token, url string) error
	SetLoggingEnabled(ctx context.Context, token string, enabled bool) error
	SetFlushOnBackground(ctx context.Context, token string, enabled bool) error
	SetUseIPAddressForGeolocation(ctx context.Context, token string, enabled bool) error

	HasOptedOutTracking(ctx context.Context, token string) (bool, error)
	OptInTracking(ctx context.Context, token string) error
	OptOutTracking(ctx context.Context, token string) error

	Identify(ctx context.Context, token, distinctID string) error
	Alias(ctx context.Context, token, alias, distinctID string) error
	GetDistinctID(ctx context.Context, token string) (string, error)

	Track(ctx context.Context, token, eventName string, properties PropertyBag) error
	TrackWithGroups(ctx context.Context, token, eventName string, properties, groups PropertyBag) error

	SetGroup(ctx context.Context, token, groupKey string, groupID interface{}) error
	AddGroup(ctx context.Context, token, groupKey string, groupID interface{}) error
	RemoveGroup(ctx context.Context, token, groupKey string, groupID interface{}) error
	DeleteGroup(ctx context.Context, token, groupKey string, groupID interface{}) error

	RegisterSuperProperties(ctx context.Context, token string, properties PropertyBag) error
	RegisterSuperPropertiesOnce(ctx context.Context, token string, properties PropertyBag) error
	UnregisterSuperProperty(ctx context.Context, token, name string) error
	GetSuperProperties(ctx context.Context, token string) (PropertyBag, error)
	ClearSuperProperties(ctx context.Context, token string) error

	TimeEvent(ctx context.Context, token, eventName string) error
	EventElapsedTime(ctx context.Context, token, eventName string) (float64, error)

	Reset(ctx context.Context, token string) error
	Flush(ctx context.Context, token string) error
}

// PeopleDelegate updates the profile of the identified user.
//
// List mutations come in two packings, a single map argument or a separate name and value.
// Which one is used depends on the platform the Tracker resolved.
type PeopleDelegate interface {
	Set(ctx context.Context, token string, properties PropertyBag) error
	SetOnce(ctx context.Context, token string, properties PropertyBag) error
	Increment(ctx context.Context, token string, properties PropertyBag) error

	AppendProperties(ctx context.Context, token string, properties PropertyBag) error
	AppendProperty(ctx context.Context, token, name string, value interface{}) error
	UnionProperties(ctx context.Context, token string, properties PropertyBag) error
	UnionProperty(ctx context.Context, token, name string, values []interface{}) error
	RemoveProperties(ctx context.Context, token string, properties PropertyBag) error
	RemoveProperty(ctx context.Context, token, name string, value interface{}) error

	Unset(ctx context.Context, token, name string) error
	TrackCharge(ctx context.Context, token string, charge float64, properties PropertyBag) error
	ClearCharges(ctx context.Context, token string) error
	DeleteUser(ctx context.Context, token string) error
}

// GroupDelegate updates group profiles addressed by a group key and id.
type GroupDelegate interface {
	GroupSetProperties(ctx context.Context, token, groupKey string, groupID interface{}, properties PropertyBag) error
	GroupSetPropertyOnce(ctx context.Context, token, groupKey string, groupID interface{}, properties PropertyBag) error
	GroupUnsetProperty(ctx context.Context, token, groupKey string, groupID interface{}, name string) error
	GroupRemovePropertyValue(ctx context.Context, token, groupKey string, groupID interface{}, name string, value interface{}) error
	GroupUnionProperty(ctx context.Context, token, groupKey string, groupID interface{}, name string, values []interface{}) error
}

// Delegate is the full surface a Tracker forwards to.
type Delegate interface {
	TrackingDelegate
	PeopleDelegate
	GroupDelegate
}
