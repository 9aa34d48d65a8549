package redis_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis"

	"github.com/soapboxsocial/tracker/pkg/conf"
	"github.com/soapboxsocial/tracker/pkg/redis"
)

func TestNewRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	defer mr.Close()

	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatal(err)
	}

	rdb := redis.NewRedis(conf.RedisConf{
		Port:       port,
		Host:       mr.Host(),
		DisableTLS: true,
	})

	val, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		t.Fatal(err)
	}

	if val != "PONG" {
		t.Fatalf("unexpected val %s", val)
	}
}
