package backends

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// StateBackend persists the client state of a tracker in redis, keyed by project token.
type StateBackend struct {
	rdb *redis.Client
}

func NewStateBackend(rdb *redis.Client) *StateBackend {
	return &StateBackend{rdb: rdb}
}

func distinctIDKey(token string) string {
	return fmt.Sprintf("tracking_%s_distinct_id", token)
}

func superPropertiesKey(token string) string {
	return fmt.Sprintf("tracking_%s_super_properties", token)
}

func optOutKey(token string) string {
	return fmt.Sprintf("tracking_%s_opt_out", token)
}

func timersKey(token string) string {
	return fmt.Sprintf("tracking_%s_timers", token)
}

// DistinctID returns the stored distinct id, or an empty string if there is none.
func (s *StateBackend) DistinctID(ctx context.Context, token string) (string, error) {
	val, err := s.rdb.Get(ctx, distinctIDKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}

	return val, err
}

func (s *StateBackend) SetDistinctID(ctx context.Context, token, id string) error {
	return s.rdb.Set(ctx, distinctIDKey(token), id, 0).Err()
}

// SuperProperties returns the stored super properties. The result is never nil.
func (s *StateBackend) SuperProperties(ctx context.Context, token string) (map[string]interface{}, error) {
	props := make(map[string]interface{})

	val, err := s.rdb.Get(ctx, superPropertiesKey(token)).Bytes()
	if err == redis.Nil {
		return props, nil
	}

	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(val, &props)
	if err != nil {
		return nil, err
	}

	return props, nil
}

func (s *StateBackend) SetSuperProperties(ctx context.Context, token string, props map[string]interface{}) error {
	data, err := json.Marshal(props)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, superPropertiesKey(token), data, 0).Err()
}

func (s *StateBackend) ClearSuperProperties(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, superPropertiesKey(token)).Err()
}

// OptedOut returns the opt out flag and whether it was ever stored.
func (s *StateBackend) OptedOut(ctx context.Context, token string) (bool, bool, error) {
	val, err := s.rdb.Get(ctx, optOutKey(token)).Result()
	if err == redis.Nil {
		return false, false, nil
	}

	if err != nil {
		return false, false, err
	}

	return val == "1", true, nil
}

func (s *StateBackend) SetOptedOut(ctx context.Context, token string, out bool) error {
	val := "0"
	if out {
		val = "1"
	}

	return s.rdb.Set(ctx, optOutKey(token), val, 0).Err()
}

// StartTimer records the time an event timer was started.
func (s *StateBackend) StartTimer(ctx context.Context, token, event string, start time.Time) error {
	return s.rdb.HSet(ctx, timersKey(token), event, strconv.FormatInt(start.UnixNano(), 10)).Err()
}

// Timer returns the start of a running timer.
func (s *StateBackend) Timer(ctx context.Context, token, event string) (time.Time, bool, error) {
	val, err := s.rdb.HGet(ctx, timersKey(token), event).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}

	if err != nil {
		return time.Time{}, false, err
	}

	nanos, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}

	return time.Unix(0, nanos), true, nil
}

// StopTimer removes a timer and returns its start.
func (s *StateBackend) StopTimer(ctx context.Context, token, event string) (time.Time, bool, error) {
	start, ok, err := s.Timer(ctx, token, event)
	if err != nil || !ok {
		return start, ok, err
	}

	return start, true, s.rdb.HDel(ctx, timersKey(token), event).Err()
}

func (s *StateBackend) ClearTimers(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, timersKey(token)).Err()
}
