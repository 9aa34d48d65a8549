// Package delegates contains tracking engines a Tracker can forward to.
package delegates

import (
	"context"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/dukex/mixpanel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/soapboxsocial/tracker/pkg/tracking"
	"github.com/soapboxsocial/tracker/pkg/tracking/backends"
)

const DefaultURL = "https://api.mixpanel.com"

const (
	EventIdentify    = "$identify"
	EventCreateAlias = "$create_alias"
)

// noIP stops mixpanel from resolving a location from the request address.
const noIP = "0"

// ClientFactory creates a mixpanel client for a project.
type ClientFactory func(token, url string) mixpanel.Mixpanel

type project struct {
	client            mixpanel.Mixpanel
	url               string
	ip                string
	flushOnBackground bool
}

// MixpanelDelegate sends every call straight to mixpanel. Identity, super properties,
// the opt out flag and event timers are kept in redis.
type MixpanelDelegate struct {
	mu sync.Mutex

	factory  ClientFactory
	state    *backends.StateBackend
	engage   *engager
	base     zerolog.Logger
	log      zerolog.Logger
	now      func() time.Time
	projects map[string]*project
}

// Option configures a MixpanelDelegate.
type Option func(*MixpanelDelegate)

func WithClientFactory(factory ClientFactory) Option {
	return func(d *MixpanelDelegate) {
		d.factory = factory
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(d *MixpanelDelegate) {
		d.engage = &engager{client: client}
	}
}

// WithLogger sets the logger used once logging is enabled.
func WithLogger(log zerolog.Logger) Option {
	return func(d *MixpanelDelegate) {
		d.base = log
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *MixpanelDelegate) {
		d.now = now
	}
}

// NewMixpanelDelegate returns a delegate whose mixpanel clients share the engage http client.
func NewMixpanelDelegate(state *backends.StateBackend, opts ...Option) *MixpanelDelegate {
	d := &MixpanelDelegate{
		state:    state,
		engage:   &engager{client: http.DefaultClient},
		base:     zerolog.Nop(),
		now:      time.Now,
		projects: make(map[string]*project),
	}

	d.factory = func(token, url string) mixpanel.Mixpanel {
		return mixpanel.NewFromClient(d.engage.client, token, url)
	}

	for _, opt := range opts {
		opt(d)
	}

	d.log = d.base.Level(zerolog.Disabled)

	return d
}

func (d *MixpanelDelegate) project(token string) *project {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.projects[token]
	if !ok {
		p = &project{client: d.factory(token, DefaultURL), url: DefaultURL, ip: noIP}
		d.projects[token] = p
	}

	return p
}

func (d *MixpanelDelegate) logger() *zerolog.Logger {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := d.log
	return &log
}

func (d *MixpanelDelegate) Initialize(ctx context.Context, token string, optOutDefault bool, properties tracking.PropertyBag) error {
	d.project(token)

	_, stored, err := d.state.OptedOut(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read opt out flag")
	}

	if !stored {
		err = d.state.SetOptedOut(ctx, token, optOutDefault)
		if err != nil {
			return errors.Wrap(err, "failed to store opt out flag")
		}
	}

	_, err = d.distinctID(ctx, token)
	if err != nil {
		return err
	}

	d.logger().Debug().Str("token", token).Bool("opt_out_default", optOutDefault).Msg("initialized")

	return d.RegisterSuperProperties(ctx, token, properties)
}

func (d *MixpanelDelegate) SetServerURL(_ context.Context, token, url string) error {
	p := d.project(token)

	d.mu.Lock()
	defer d.mu.Unlock()

	p.url = url
	p.client = d.factory(token, url)

	return nil
}

func (d *MixpanelDelegate) SetLoggingEnabled(_ context.Context, _ string, enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if enabled {
		d.log = d.base.Level(zerolog.DebugLevel)
	} else {
		d.log = d.base.Level(zerolog.Disabled)
	}

	return nil
}

func (d *MixpanelDelegate) SetFlushOnBackground(_ context.Context, token string, enabled bool) error {
	p := d.project(token)

	d.mu.Lock()
	defer d.mu.Unlock()

	p.flushOnBackground = enabled
	return nil
}

func (d *MixpanelDelegate) SetUseIPAddressForGeolocation(_ context.Context, token string, enabled bool) error {
	p := d.project(token)

	d.mu.Lock()
	defer d.mu.Unlock()

	if enabled {
		p.ip = ""
	} else {
		p.ip = noIP
	}

	return nil
}

func (d *MixpanelDelegate) HasOptedOutTracking(ctx context.Context, token string) (bool, error) {
	out, _, err := d.state.OptedOut(ctx, token)
	return out, err
}

func (d *MixpanelDelegate) OptInTracking(ctx context.Context, token string) error {
	return d.state.SetOptedOut(ctx, token, false)
}

func (d *MixpanelDelegate) OptOutTracking(ctx context.Context, token string) error {
	return d.state.SetOptedOut(ctx, token, true)
}

// distinctID returns the current distinct id, creating an anonymous one if needed.
func (d *MixpanelDelegate) distinctID(ctx context.Context, token string) (string, error) {
	id, err := d.state.DistinctID(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "failed to read distinct id")
	}

	if id != "" {
		return id, nil
	}

	id = uuid.New().String()
	err = d.state.SetDistinctID(ctx, token, id)
	if err != nil {
		return "", errors.Wrap(err, "failed to store distinct id")
	}

	return id, nil
}

func (d *MixpanelDelegate) Identify(ctx context.Context, token, distinctID string) error {
	previous, err := d.distinctID(ctx, token)
	if err != nil {
		return err
	}

	if previous == distinctID {
		return nil
	}

	err = d.state.SetDistinctID(ctx, token, distinctID)
	if err != nil {
		return errors.Wrap(err, "failed to store distinct id")
	}

	return d.Track(ctx, token, EventIdentify, tracking.PropertyBag{"$anon_distinct_id": previous})
}

func (d *MixpanelDelegate) Alias(ctx context.Context, token, alias, distinctID string) error {
	out, err := d.optedOut(ctx, token)
	if err != nil || out {
		return err
	}

	p := d.project(token)

	d.mu.Lock()
	client := p.client
	d.mu.Unlock()

	d.logger().Debug().Str("alias", alias).Str("distinct_id", distinctID).Msg(EventCreateAlias)

	err = client.Alias(distinctID, alias)
	if err != nil {
		return errors.Wrap(err, "failed to create alias")
	}

	return nil
}

func (d *MixpanelDelegate) GetDistinctID(ctx context.Context, token string) (string, error) {
	return d.distinctID(ctx, token)
}

func (d *MixpanelDelegate) optedOut(ctx context.Context, token string) (bool, error) {
	out, _, err := d.state.OptedOut(ctx, token)
	if err != nil {
		return false, errors.Wrap(err, "failed to read opt out flag")
	}

	return out, nil
}

func (d *MixpanelDelegate) Track(ctx context.Context, token, eventName string, properties tracking.PropertyBag) error {
	out, err := d.optedOut(ctx, token)
	if err != nil || out {
		return err
	}

	id, err := d.distinctID(ctx, token)
	if err != nil {
		return err
	}

	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read super properties")
	}

	props := tracking.PropertyBag(super).Merge(properties)

	start, ok, err := d.state.StopTimer(ctx, token, eventName)
	if err != nil {
		return errors.Wrap(err, "failed to stop timer")
	}

	if ok {
		props["$duration"] = d.now().Sub(start).Seconds()
	}

	return d.send(ctx, token, id, eventName, props)
}

func (d *MixpanelDelegate) send(_ context.Context, token, distinctID, eventName string, props tracking.PropertyBag) error {
	p := d.project(token)

	d.mu.Lock()
	client, ip := p.client, p.ip
	d.mu.Unlock()

	props["$insert_id"] = ksuid.New().String()

	d.logger().Debug().Str("event", eventName).Str("distinct_id", distinctID).Msg("track")

	err := client.Track(distinctID, eventName, &mixpanel.Event{IP: ip, Properties: props})
	if err != nil {
		return errors.Wrap(err, "failed to track "+eventName)
	}

	return nil
}

func (d *MixpanelDelegate) TrackWithGroups(ctx context.Context, token, eventName string, properties, groups tracking.PropertyBag) error {
	return d.Track(ctx, token, eventName, properties.Merge(groups))
}

func (d *MixpanelDelegate) SetGroup(ctx context.Context, token, groupKey string, groupID interface{}) error {
	err := d.RegisterSuperProperties(ctx, token, tracking.PropertyBag{groupKey: []interface{}{groupID}})
	if err != nil {
		return err
	}

	return d.Set(ctx, token, tracking.PropertyBag{groupKey: []interface{}{groupID}})
}

func (d *MixpanelDelegate) AddGroup(ctx context.Context, token, groupKey string, groupID interface{}) error {
	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read super properties")
	}

	groups := tracking.List(super[groupKey])
	if super[groupKey] == nil {
		groups = []interface{}{}
	}

	if !contains(groups, groupID) {
		groups = append(groups, groupID)
	}

	super[groupKey] = groups
	err = d.state.SetSuperProperties(ctx, token, super)
	if err != nil {
		return errors.Wrap(err, "failed to store super properties")
	}

	return d.UnionProperty(ctx, token, groupKey, []interface{}{groupID})
}

func (d *MixpanelDelegate) RemoveGroup(ctx context.Context, token, groupKey string, groupID interface{}) error {
	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read super properties")
	}

	if current, ok := super[groupKey]; ok {
		groups := make([]interface{}, 0)
		for _, group := range tracking.List(current) {
			if !equal(group, groupID) {
				groups = append(groups, group)
			}
		}

		if len(groups) == 0 {
			delete(super, groupKey)
		} else {
			super[groupKey] = groups
		}

		err = d.state.SetSuperProperties(ctx, token, super)
		if err != nil {
			return errors.Wrap(err, "failed to store super properties")
		}
	}

	return d.RemoveProperty(ctx, token, groupKey, groupID)
}

func (d *MixpanelDelegate) DeleteGroup(ctx context.Context, token, groupKey string, groupID interface{}) error {
	return d.group(ctx, token, groupKey, groupID, "$delete", "")
}

func (d *MixpanelDelegate) RegisterSuperProperties(ctx context.Context, token string, properties tracking.PropertyBag) error {
	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read super properties")
	}

	err = d.state.SetSuperProperties(ctx, token, tracking.PropertyBag(super).Merge(properties))
	if err != nil {
		return errors.Wrap(err, "failed to store super properties")
	}

	return nil
}

func (d *MixpanelDelegate) RegisterSuperPropertiesOnce(ctx context.Context, token string, properties tracking.PropertyBag) error {
	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read super properties")
	}

	for key, val := range properties {
		if _, ok := super[key]; !ok {
			super[key] = val
		}
	}

	err = d.state.SetSuperProperties(ctx, token, super)
	if err != nil {
		return errors.Wrap(err, "failed to store super properties")
	}

	return nil
}

func (d *MixpanelDelegate) UnregisterSuperProperty(ctx context.Context, token, name string) error {
	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to read super properties")
	}

	delete(super, name)

	err = d.state.SetSuperProperties(ctx, token, super)
	if err != nil {
		return errors.Wrap(err, "failed to store super properties")
	}

	return nil
}

func (d *MixpanelDelegate) GetSuperProperties(ctx context.Context, token string) (tracking.PropertyBag, error) {
	super, err := d.state.SuperProperties(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read super properties")
	}

	return tracking.PropertyBag(super), nil
}

func (d *MixpanelDelegate) ClearSuperProperties(ctx context.Context, token string) error {
	return d.state.ClearSuperProperties(ctx, token)
}

func (d *MixpanelDelegate) TimeEvent(ctx context.Context, token, eventName string) error {
	return d.state.StartTimer(ctx, token, eventName, d.now())
}

func (d *MixpanelDelegate) EventElapsedTime(ctx context.Context, token, eventName string) (float64, error) {
	start, ok, err := d.state.Timer(ctx, token, eventName)
	if err != nil || !ok {
		return 0, err
	}

	return d.now().Sub(start).Seconds(), nil
}

func (d *MixpanelDelegate) Reset(ctx context.Context, token string) error {
	err := d.state.ClearSuperProperties(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to clear super properties")
	}

	err = d.state.ClearTimers(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to clear timers")
	}

	return d.state.SetDistinctID(ctx, token, uuid.New().String())
}

// Flush is a no-op, events are sent as they are tracked.
func (d *MixpanelDelegate) Flush(_ context.Context, token string) error {
	d.logger().Debug().Str("token", token).Msg("flush")
	return nil
}

func (d *MixpanelDelegate) update(ctx context.Context, token, operation string, properties map[string]interface{}) error {
	out, err := d.optedOut(ctx, token)
	if err != nil || out {
		return err
	}

	id, err := d.distinctID(ctx, token)
	if err != nil {
		return err
	}

	p := d.project(token)

	d.mu.Lock()
	client, ip := p.client, p.ip
	d.mu.Unlock()

	d.logger().Debug().Str("operation", operation).Str("distinct_id", id).Msg("engage")

	err = client.Update(id, &mixpanel.Update{
		IP:         ip,
		Operation:  operation,
		Properties: properties,
	})

	if err != nil {
		return errors.Wrap(err, "failed to update "+operation)
	}

	return nil
}

func (d *MixpanelDelegate) Set(ctx context.Context, token string, properties tracking.PropertyBag) error {
	return d.update(ctx, token, "$set", properties)
}

func (d *MixpanelDelegate) SetOnce(ctx context.Context, token string, properties tracking.PropertyBag) error {
	return d.update(ctx, token, "$set_once", properties)
}

func (d *MixpanelDelegate) Increment(ctx context.Context, token string, properties tracking.PropertyBag) error {
	return d.update(ctx, token, "$add", properties)
}

func (d *MixpanelDelegate) AppendProperties(ctx context.Context, token string, properties tracking.PropertyBag) error {
	return d.update(ctx, token, "$append", properties)
}

func (d *MixpanelDelegate) AppendProperty(ctx context.Context, token, name string, value interface{}) error {
	return d.update(ctx, token, "$append", map[string]interface{}{name: value})
}

func (d *MixpanelDelegate) UnionProperties(ctx context.Context, token string, properties tracking.PropertyBag) error {
	return d.update(ctx, token, "$union", properties)
}

func (d *MixpanelDelegate) UnionProperty(ctx context.Context, token, name string, values []interface{}) error {
	return d.update(ctx, token, "$union", map[string]interface{}{name: values})
}

func (d *MixpanelDelegate) RemoveProperties(ctx context.Context, token string, properties tracking.PropertyBag) error {
	return d.update(ctx, token, "$remove", properties)
}

func (d *MixpanelDelegate) RemoveProperty(ctx context.Context, token, name string, value interface{}) error {
	return d.update(ctx, token, "$remove", map[string]interface{}{name: value})
}

func (d *MixpanelDelegate) Unset(ctx context.Context, token, name string) error {
	out, err := d.optedOut(ctx, token)
	if err != nil || out {
		return err
	}

	id, err := d.distinctID(ctx, token)
	if err != nil {
		return err
	}

	return d.engage.unset(ctx, d.url(token), token, id, name)
}

func (d *MixpanelDelegate) TrackCharge(ctx context.Context, token string, charge float64, properties tracking.PropertyBag) error {
	transaction := properties.Merge(map[string]interface{}{
		"$amount": charge,
		"$time":   d.now().UTC().Format(time.RFC3339),
	})

	return d.update(ctx, token, "$append", map[string]interface{}{"$transactions": map[string]interface{}(transaction)})
}

func (d *MixpanelDelegate) ClearCharges(ctx context.Context, token string) error {
	return d.update(ctx, token, "$set", map[string]interface{}{"$transactions": []interface{}{}})
}

func (d *MixpanelDelegate) DeleteUser(ctx context.Context, token string) error {
	return d.update(ctx, token, "$delete", nil)
}

func (d *MixpanelDelegate) url(token string) string {
	p := d.project(token)

	d.mu.Lock()
	defer d.mu.Unlock()

	return p.url
}

func (d *MixpanelDelegate) group(ctx context.Context, token, groupKey string, groupID interface{}, op string, value interface{}) error {
	out, err := d.optedOut(ctx, token)
	if err != nil || out {
		return err
	}

	d.logger().Debug().Str("operation", op).Str("group_key", groupKey).Msg("group")

	return d.engage.group(ctx, d.url(token), token, groupKey, groupID, op, value)
}

func (d *MixpanelDelegate) GroupSetProperties(ctx context.Context, token, groupKey string, groupID interface{}, properties tracking.PropertyBag) error {
	return d.group(ctx, token, groupKey, groupID, "$set", properties)
}

func (d *MixpanelDelegate) GroupSetPropertyOnce(ctx context.Context, token, groupKey string, groupID interface{}, properties tracking.PropertyBag) error {
	return d.group(ctx, token, groupKey, groupID, "$set_once", properties)
}

func (d *MixpanelDelegate) GroupUnsetProperty(ctx context.Context, token, groupKey string, groupID interface{}, name string) error {
	return d.group(ctx, token, groupKey, groupID, "$unset", []string{name})
}

func (d *MixpanelDelegate) GroupRemovePropertyValue(ctx context.Context, token, groupKey string, groupID interface{}, name string, value interface{}) error {
	return d.group(ctx, token, groupKey, groupID, "$remove", map[string]interface{}{name: value})
}

func (d *MixpanelDelegate) GroupUnionProperty(ctx context.Context, token, groupKey string, groupID interface{}, name string, values []interface{}) error {
	return d.group(ctx, token, groupKey, groupID, "$union", map[string]interface{}{name: values})
}

func contains(list []interface{}, v interface{}) bool {
	for _, item := range list {
		if equal(item, v) {
			return true
		}
	}

	return false
}

// equal compares group ids. Numbers read back from redis are float64.
func equal(a, b interface{}) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}

	fa, okA := number(a)
	fb, okB := number(b)
	return okA && okB && fa == fb
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}

var _ tracking.Delegate = (*MixpanelDelegate)(nil)
