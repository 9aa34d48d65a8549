// Package tracking validates and shapes analytics calls before handing them to a Delegate.
package tracking

import (
	"context"

	"github.com/soapboxsocial/tracker/pkg/metadata"
	"github.com/soapboxsocial/tracker/pkg/platform"
	"github.com/soapboxsocial/tracker/pkg/validation"
)

// Tracker is the entry point for event tracking, identity and super properties.
type Tracker struct {
	token    string
	delegate Delegate
	metadata metadata.Provider
	platform platform.Platform

	people *People
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithMetadata replaces the default library metadata.
func WithMetadata(provider metadata.Provider) Option {
	return func(t *Tracker) {
		t.metadata = provider
	}
}

// WithPlatform sets the platform used to shape list mutations on People.
func WithPlatform(p platform.Platform) Option {
	return func(t *Tracker) {
		t.platform = p
	}
}

// New returns a Tracker for the project token.
func New(token string, delegate Delegate, opts ...Option) (*Tracker, error) {
	err := validation.String("token", token)
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		token:    token,
		delegate: delegate,
		metadata: metadata.Default(),
		platform: platform.Detect(platform.Runtime{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.people = newPeople(token, delegate, t.platform)

	return t, nil
}

// Token returns the project token.
func (t *Tracker) Token() string {
	return t.token
}

// Init initializes the delegate. Library metadata is merged first so superProperties win
// on conflicting keys. Wait for Init to return before relying on other calls.
func (t *Tracker) Init(ctx context.Context, optOutDefault bool, superProperties PropertyBag) error {
	props, err := bagOrEmpty("superProperties", superProperties)
	if err != nil {
		return err
	}

	var meta map[string]interface{}
	if t.metadata != nil {
		meta = t.metadata.Metadata()
	}

	merged := PropertyBag(meta).Merge(props)
	return t.delegate.Initialize(ctx, t.token, optOutDefault, merged)
}

func (t *Tracker) SetServerURL(ctx context.Context, url string) error {
	return t.delegate.SetServerURL(ctx, t.token, url)
}

func (t *Tracker) SetLoggingEnabled(ctx context.Context, enabled bool) error {
	return t.delegate.SetLoggingEnabled(ctx, t.token, enabled)
}

func (t *Tracker) SetFlushOnBackground(ctx context.Context, enabled bool) error {
	return t.delegate.SetFlushOnBackground(ctx, t.token, enabled)
}

func (t *Tracker) SetUseIPAddressForGeolocation(ctx context.Context, enabled bool) error {
	return t.delegate.SetUseIPAddressForGeolocation(ctx, t.token, enabled)
}

// HasOptedOutTracking returns whether the user has opted out of tracking.
func (t *Tracker) HasOptedOutTracking(ctx context.Context) (bool, error) {
	return t.delegate.HasOptedOutTracking(ctx, t.token)
}

func (t *Tracker) OptInTracking(ctx context.Context) error {
	return t.delegate.OptInTracking(ctx, t.token)
}

func (t *Tracker) OptOutTracking(ctx context.Context) error {
	return t.delegate.OptOutTracking(ctx, t.token)
}

// Identify associates all subsequent calls with distinctID.
func (t *Tracker) Identify(ctx context.Context, distinctID string) error {
	err := validation.String("distinctId", distinctID)
	if err != nil {
		return err
	}

	return t.delegate.Identify(ctx, t.token, distinctID)
}

// Alias links alias to distinctID. It does not identify as either.
func (t *Tracker) Alias(ctx context.Context, alias, distinctID string) error {
	err := validation.String("alias", alias)
	if err != nil {
		return err
	}

	err = validation.String("distinctId", distinctID)
	if err != nil {
		return err
	}

	return t.delegate.Alias(ctx, t.token, alias, distinctID)
}

// Track tracks an event. properties may be nil.
func (t *Tracker) Track(ctx context.Context, eventName string, properties PropertyBag) error {
	err := validation.String("eventName", eventName)
	if err != nil {
		return err
	}

	props, err := bagOrEmpty("properties", properties)
	if err != nil {
		return err
	}

	return t.delegate.Track(ctx, t.token, eventName, props)
}

// TrackWithGroups tracks an event whose properties the delegate extends with groups.
func (t *Tracker) TrackWithGroups(ctx context.Context, eventName string, properties, groups PropertyBag) error {
	err := validation.String("eventName", eventName)
	if err != nil {
		return err
	}

	props, err := bagOrEmpty("properties", properties)
	if err != nil {
		return err
	}

	g, err := bagOrEmpty("groups", groups)
	if err != nil {
		return err
	}

	return t.delegate.TrackWithGroups(ctx, t.token, eventName, props, g)
}

// SetGroup sets the user's group for groupKey to groupID.
func (t *Tracker) SetGroup(ctx context.Context, groupKey string, groupID interface{}) error {
	err := validation.String("groupKey", groupKey)
	if err != nil {
		return err
	}

	return t.delegate.SetGroup(ctx, t.token, groupKey, groupID)
}

// AddGroup adds groupID to the user's groups for groupKey.
func (t *Tracker) AddGroup(ctx context.Context, groupKey string, groupID interface{}) error {
	err := validation.String("groupKey", groupKey)
	if err != nil {
		return err
	}

	return t.delegate.AddGroup(ctx, t.token, groupKey, groupID)
}

// RemoveGroup removes groupID from the user's groups for groupKey.
func (t *Tracker) RemoveGroup(ctx context.Context, groupKey string, groupID interface{}) error {
	err := validation.String("groupKey", groupKey)
	if err != nil {
		return err
	}

	return t.delegate.RemoveGroup(ctx, t.token, groupKey, groupID)
}

// DeleteGroup deletes the group profile.
func (t *Tracker) DeleteGroup(ctx context.Context, groupKey string, groupID interface{}) error {
	err := validation.String("groupKey", groupKey)
	if err != nil {
		return err
	}

	return t.delegate.DeleteGroup(ctx, t.token, groupKey, groupID)
}

// Group returns a handle for the group profile. A new handle is returned on every call.
func (t *Tracker) Group(groupKey string, groupID interface{}) *Group {
	return newGroup(t.token, groupKey, groupID, t.delegate)
}

// RegisterSuperProperties registers properties sent with every event.
func (t *Tracker) RegisterSuperProperties(ctx context.Context, properties PropertyBag) error {
	props, err := bagOrEmpty("properties", properties)
	if err != nil {
		return err
	}

	return t.delegate.RegisterSuperProperties(ctx, t.token, props)
}

// RegisterSuperPropertiesOnce registers properties unless they are already set.
func (t *Tracker) RegisterSuperPropertiesOnce(ctx context.Context, properties PropertyBag) error {
	props, err := bagOrEmpty("properties", properties)
	if err != nil {
		return err
	}

	return t.delegate.RegisterSuperPropertiesOnce(ctx, t.token, props)
}

func (t *Tracker) UnregisterSuperProperty(ctx context.Context, name string) error {
	err := validation.String("propertyName", name)
	if err != nil {
		return err
	}

	return t.delegate.UnregisterSuperProperty(ctx, t.token, name)
}

// SuperProperties returns the currently registered super properties.
func (t *Tracker) SuperProperties(ctx context.Context) (PropertyBag, error) {
	return t.delegate.GetSuperProperties(ctx, t.token)
}

func (t *Tracker) ClearSuperProperties(ctx context.Context) error {
	return t.delegate.ClearSuperProperties(ctx, t.token)
}

// TimeEvent starts a timer that is stopped by the next Track call for eventName.
func (t *Tracker) TimeEvent(ctx context.Context, eventName string) error {
	err := validation.String("eventName", eventName)
	if err != nil {
		return err
	}

	return t.delegate.TimeEvent(ctx, t.token, eventName)
}

// EventElapsedTime returns the seconds since TimeEvent was called for eventName.
func (t *Tracker) EventElapsedTime(ctx context.Context, eventName string) (float64, error) {
	err := validation.String("eventName", eventName)
	if err != nil {
		return 0, err
	}

	return t.delegate.EventElapsedTime(ctx, t.token, eventName)
}

// Reset clears the identity and super properties.
func (t *Tracker) Reset(ctx context.Context) error {
	return t.delegate.Reset(ctx, t.token)
}

// DistinctID returns the id events are currently attributed to.
func (t *Tracker) DistinctID(ctx context.Context) (string, error) {
	return t.delegate.GetDistinctID(ctx, t.token)
}

func (t *Tracker) Flush(ctx context.Context) error {
	return t.delegate.Flush(ctx, t.token)
}

// People returns the profile updater owned by the tracker.
func (t *Tracker) People() *People {
	return t.people
}
