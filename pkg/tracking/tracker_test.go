package tracking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/soapboxsocial/tracker/mocks"
	"github.com/soapboxsocial/tracker/pkg/metadata"
	"github.com/soapboxsocial/tracker/pkg/platform"
	"github.com/soapboxsocial/tracker/pkg/tracking"
	"github.com/soapboxsocial/tracker/pkg/validation"
)

const token = "abc123"

func newTracker(t *testing.T, opts ...tracking.Option) (*tracking.Tracker, *mocks.MockDelegate) {
	ctrl := gomock.NewController(t)
	delegate := mocks.NewMockDelegate(ctrl)

	tracker, err := tracking.New(token, delegate, opts...)
	if err != nil {
		t.Fatal(err)
	}

	return tracker, delegate
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()

	if !errors.Is(err, validation.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delegate := mocks.NewMockDelegate(ctrl)

	for _, tt := range []string{"", "   "} {
		_, err := tracking.New(tt, delegate)
		assertInvalid(t, err)
	}

	tracker, err := tracking.New(token, delegate)
	if err != nil {
		t.Fatal(err)
	}

	if tracker.Token() != token {
		t.Fatalf("token %s does not match %s", tracker.Token(), token)
	}

	if tracker.People() == nil || tracker.People() != tracker.People() {
		t.Fatal("people is not a singleton")
	}
}

func TestTracker_Init(t *testing.T) {
	tracker, delegate := newTracker(t, tracking.WithMetadata(metadata.Library{Name: "go", Version: "9.9.9"}))

	expected := tracking.PropertyBag{
		metadata.LibNameKey:    "go",
		metadata.LibVersionKey: "override",
		"plan":                 "pro",
	}

	delegate.EXPECT().
		Initialize(gomock.Any(), token, true, expected).
		Return(nil)

	err := tracker.Init(context.Background(), true, tracking.PropertyBag{
		metadata.LibVersionKey: "override",
		"plan":                 "pro",
	})

	if err != nil {
		t.Fatal(err)
	}
}

func TestTracker_InitWithoutSuperProperties(t *testing.T) {
	tracker, delegate := newTracker(t)

	delegate.EXPECT().
		Initialize(gomock.Any(), token, false, tracking.PropertyBag(metadata.Default().Metadata())).
		Return(nil)

	err := tracker.Init(context.Background(), false, nil)
	if err != nil {
		t.Fatal(err)
	}
}

func TestTracker_Identify(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.Identify(ctx, ""))
	assertInvalid(t, tracker.Identify(ctx, " "))

	delegate.EXPECT().Identify(gomock.Any(), token, "user-123").Return(nil)

	err := tracker.Identify(ctx, "user-123")
	if err != nil {
		t.Fatal(err)
	}
}

func TestTracker_Alias(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.Alias(ctx, "", "user-123"))
	assertInvalid(t, tracker.Alias(ctx, "alias", ""))

	delegate.EXPECT().Alias(gomock.Any(), token, "alias", "user-123").Return(nil)

	err := tracker.Alias(ctx, "alias", "user-123")
	if err != nil {
		t.Fatal(err)
	}
}

func TestTracker_Track(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.Track(ctx, "", nil))
	assertInvalid(t, tracker.Track(ctx, "Purchase", tracking.PropertyBag{"fn": func() {}}))
	assertInvalid(t, tracker.Track(ctx, "Purchase", tracking.PropertyBag{"": 1}))

	gomock.InOrder(
		delegate.EXPECT().Track(gomock.Any(), token, "Purchase", tracking.PropertyBag{}).Return(nil),
		delegate.EXPECT().Track(gomock.Any(), token, "Purchase", tracking.PropertyBag{"item": "widget"}).Return(nil),
	)

	err := tracker.Track(ctx, "Purchase", nil)
	if err != nil {
		t.Fatal(err)
	}

	err = tracker.Track(ctx, "Purchase", tracking.PropertyBag{"item": "widget"})
	if err != nil {
		t.Fatal(err)
	}
}

func TestTracker_TrackPassesDelegateError(t *testing.T) {
	tracker, delegate := newTracker(t)

	failure := errors.New("boom")
	delegate.EXPECT().Track(gomock.Any(), token, "Purchase", tracking.PropertyBag{}).Return(failure)

	err := tracker.Track(context.Background(), "Purchase", nil)
	if err != failure {
		t.Fatalf("unexpected err %v", err)
	}
}

func TestTracker_TrackWithGroups(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.TrackWithGroups(ctx, "", nil, nil))

	groups := tracking.PropertyBag{"company": "acme"}
	delegate.EXPECT().TrackWithGroups(gomock.Any(), token, "Invite", tracking.PropertyBag{}, groups).Return(nil)

	err := tracker.TrackWithGroups(ctx, "Invite", nil, groups)
	if err != nil {
		t.Fatal(err)
	}
}

func TestTracker_Groups(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.SetGroup(ctx, "", 1))
	assertInvalid(t, tracker.AddGroup(ctx, "", 1))
	assertInvalid(t, tracker.RemoveGroup(ctx, "", 1))
	assertInvalid(t, tracker.DeleteGroup(ctx, "", 1))

	delegate.EXPECT().SetGroup(gomock.Any(), token, "company", 1).Return(nil)
	delegate.EXPECT().AddGroup(gomock.Any(), token, "company", "acme").Return(nil)
	delegate.EXPECT().RemoveGroup(gomock.Any(), token, "company", nil).Return(nil)
	delegate.EXPECT().DeleteGroup(gomock.Any(), token, "company", 2.5).Return(nil)

	if err := tracker.SetGroup(ctx, "company", 1); err != nil {
		t.Fatal(err)
	}

	if err := tracker.AddGroup(ctx, "company", "acme"); err != nil {
		t.Fatal(err)
	}

	if err := tracker.RemoveGroup(ctx, "company", nil); err != nil {
		t.Fatal(err)
	}

	if err := tracker.DeleteGroup(ctx, "company", 2.5); err != nil {
		t.Fatal(err)
	}
}

func TestTracker_Group(t *testing.T) {
	tracker, _ := newTracker(t)

	first := tracker.Group("company", 1)
	second := tracker.Group("company", 1)

	if first == second {
		t.Fatal("group handles should not be cached")
	}

	if first.Key() != "company" || first.ID() != 1 {
		t.Fatalf("unexpected group %s %v", first.Key(), first.ID())
	}

	empty := tracker.Group("", nil)
	if empty == nil {
		t.Fatal("group constructor should not validate")
	}
}

func TestTracker_SuperProperties(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.UnregisterSuperProperty(ctx, ""))

	props := tracking.PropertyBag{"plan": "pro"}

	delegate.EXPECT().RegisterSuperProperties(gomock.Any(), token, tracking.PropertyBag{}).Return(nil)
	delegate.EXPECT().RegisterSuperPropertiesOnce(gomock.Any(), token, props).Return(nil)
	delegate.EXPECT().UnregisterSuperProperty(gomock.Any(), token, "plan").Return(nil)
	delegate.EXPECT().GetSuperProperties(gomock.Any(), token).Return(props, nil)
	delegate.EXPECT().ClearSuperProperties(gomock.Any(), token).Return(nil)

	if err := tracker.RegisterSuperProperties(ctx, nil); err != nil {
		t.Fatal(err)
	}

	if err := tracker.RegisterSuperPropertiesOnce(ctx, props); err != nil {
		t.Fatal(err)
	}

	if err := tracker.UnregisterSuperProperty(ctx, "plan"); err != nil {
		t.Fatal(err)
	}

	result, err := tracker.SuperProperties(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if result["plan"] != "pro" {
		t.Fatalf("unexpected super properties %v", result)
	}

	if err := tracker.ClearSuperProperties(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestTracker_Timing(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	assertInvalid(t, tracker.TimeEvent(ctx, ""))

	_, err := tracker.EventElapsedTime(ctx, "")
	assertInvalid(t, err)

	delegate.EXPECT().TimeEvent(gomock.Any(), token, "Upload").Return(nil)
	delegate.EXPECT().EventElapsedTime(gomock.Any(), token, "Upload").Return(1.5, nil)

	if err := tracker.TimeEvent(ctx, "Upload"); err != nil {
		t.Fatal(err)
	}

	elapsed, err := tracker.EventElapsedTime(ctx, "Upload")
	if err != nil {
		t.Fatal(err)
	}

	if elapsed != 1.5 {
		t.Fatalf("unexpected elapsed %f", elapsed)
	}
}

func TestTracker_Passthrough(t *testing.T) {
	tracker, delegate := newTracker(t)
	ctx := context.Background()

	delegate.EXPECT().Reset(gomock.Any(), token).Return(nil)
	delegate.EXPECT().Flush(gomock.Any(), token).Return(nil)
	delegate.EXPECT().OptInTracking(gomock.Any(), token).Return(nil)
	delegate.EXPECT().OptOutTracking(gomock.Any(), token).Return(nil)
	delegate.EXPECT().HasOptedOutTracking(gomock.Any(), token).Return(true, nil)
	delegate.EXPECT().GetDistinctID(gomock.Any(), token).Return("user-123", nil)
	delegate.EXPECT().SetServerURL(gomock.Any(), token, "https://api-eu.mixpanel.com").Return(nil)
	delegate.EXPECT().SetLoggingEnabled(gomock.Any(), token, true).Return(nil)
	delegate.EXPECT().SetFlushOnBackground(gomock.Any(), token, false).Return(nil)
	delegate.EXPECT().SetUseIPAddressForGeolocation(gomock.Any(), token, true).Return(nil)

	for _, fn := range []func(context.Context) error{
		tracker.Reset,
		tracker.Flush,
		tracker.OptInTracking,
		tracker.OptOutTracking,
	} {
		if err := fn(ctx); err != nil {
			t.Fatal(err)
		}
	}

	opted, err := tracker.HasOptedOutTracking(ctx)
	if err != nil || !opted {
		t.Fatalf("unexpected opt out %v %v", opted, err)
	}

	id, err := tracker.DistinctID(ctx)
	if err != nil || id != "user-123" {
		t.Fatalf("unexpected distinct id %s %v", id, err)
	}

	if err := tracker.SetServerURL(ctx, "https://api-eu.mixpanel.com"); err != nil {
		t.Fatal(err)
	}

	if err := tracker.SetLoggingEnabled(ctx, true); err != nil {
		t.Fatal(err)
	}

	if err := tracker.SetFlushOnBackground(ctx, false); err != nil {
		t.Fatal(err)
	}

	if err := tracker.SetUseIPAddressForGeolocation(ctx, true); err != nil {
		t.Fatal(err)
	}
}

func TestTracker_PlatformOption(t *testing.T) {
	tracker, delegate := newTracker(t, tracking.WithPlatform(platform.IOS))

	delegate.EXPECT().AppendProperties(gomock.Any(), token, tracking.PropertyBag{"tags": "x"}).Return(nil)

	err := tracker.People().Append(context.Background(), "tags", "x")
	if err != nil {
		t.Fatal(err)
	}
}
