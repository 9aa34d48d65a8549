package backends_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis/v8"

	"github.com/soapboxsocial/tracker/pkg/tracking/backends"
)

func newBackend(t *testing.T) *backends.StateBackend {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return backends.NewStateBackend(rdb)
}

func TestStateBackend_DistinctID(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	id, err := backend.DistinctID(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if id != "" {
		t.Fatalf("unexpected id %s", id)
	}

	err = backend.SetDistinctID(ctx, "token", "user-123")
	if err != nil {
		t.Fatal(err)
	}

	id, err = backend.DistinctID(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if id != "user-123" {
		t.Fatalf("unexpected id %s", id)
	}

	other, err := backend.DistinctID(ctx, "other")
	if err != nil {
		t.Fatal(err)
	}

	if other != "" {
		t.Fatal("state leaked across tokens")
	}
}

func TestStateBackend_SuperProperties(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	props, err := backend.SuperProperties(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if props == nil || len(props) != 0 {
		t.Fatalf("unexpected props %v", props)
	}

	expected := map[string]interface{}{"plan": "pro", "seats": 10.0}
	err = backend.SetSuperProperties(ctx, "token", expected)
	if err != nil {
		t.Fatal(err)
	}

	props, err = backend.SuperProperties(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(props, expected) {
		t.Fatalf("props %v do not match %v", props, expected)
	}

	err = backend.ClearSuperProperties(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	props, err = backend.SuperProperties(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if len(props) != 0 {
		t.Fatal("props not cleared")
	}
}

func TestStateBackend_OptedOut(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	_, stored, err := backend.OptedOut(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if stored {
		t.Fatal("flag should not be stored")
	}

	err = backend.SetOptedOut(ctx, "token", true)
	if err != nil {
		t.Fatal(err)
	}

	out, stored, err := backend.OptedOut(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	if !out || !stored {
		t.Fatalf("unexpected flag %v %v", out, stored)
	}
}

func TestStateBackend_Timers(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	start := time.Unix(1600000000, 500)

	err := backend.StartTimer(ctx, "token", "Upload", start)
	if err != nil {
		t.Fatal(err)
	}

	value, ok, err := backend.Timer(ctx, "token", "Upload")
	if err != nil {
		t.Fatal(err)
	}

	if !ok || !value.Equal(start) {
		t.Fatalf("unexpected timer %v %v", value, ok)
	}

	value, ok, err = backend.StopTimer(ctx, "token", "Upload")
	if err != nil {
		t.Fatal(err)
	}

	if !ok || !value.Equal(start) {
		t.Fatalf("unexpected timer %v %v", value, ok)
	}

	_, ok, err = backend.Timer(ctx, "token", "Upload")
	if err != nil {
		t.Fatal(err)
	}

	if ok {
		t.Fatal("timer should be stopped")
	}

	err = backend.StartTimer(ctx, "token", "Other", start)
	if err != nil {
		t.Fatal(err)
	}

	err = backend.ClearTimers(ctx, "token")
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err = backend.Timer(ctx, "token", "Other")
	if err != nil {
		t.Fatal(err)
	}

	if ok {
		t.Fatal("timers should be cleared")
	}
}
