package conf_test

import (
	"reflect"
	"testing"

	"github.com/soapboxsocial/tracker/pkg/conf"
)

func TestLoad(t *testing.T) {
	var conftests = []struct {
		in   string
		err  bool
		conf *conf.RedisConf
	}{
		{
			"./testdata/redis.toml",
			false,
			&conf.RedisConf{
				Database: 12,
				Port:     1234,
				Password: "test",
				Host:     "test",
			},
		},
		{
			"./testdata/invalid.toml",
			true,
			nil,
		},
		{
			"./testdata/missing.toml",
			true,
			nil,
		},
	}

	for _, tt := range conftests {
		t.Run(tt.in, func(t *testing.T) {
			c := &conf.RedisConf{}
			err := conf.Load(tt.in, c)

			if err != nil {
				if tt.err {
					return
				}

				t.Fatalf("unexpected err %s", err)
			}

			if tt.err {
				t.Fatal("expected err")
			}

			if !reflect.DeepEqual(c, tt.conf) {
				t.Fatalf("config %v does not match %v", c, tt.conf)
			}
		})
	}
}

func TestLoad_Sections(t *testing.T) {
	type config struct {
		Mixpanel conf.MixpanelConf `mapstructure:"mixpanel"`
		Tracker  conf.TrackerConf  `mapstructure:"tracker"`
	}

	c := &config{}
	err := conf.Load("./testdata/tracker.toml", c)
	if err != nil {
		t.Fatal(err)
	}

	if c.Mixpanel.Token != "abc123" || c.Mixpanel.URL != "https://api-eu.mixpanel.com" {
		t.Fatalf("unexpected mixpanel config %v", c.Mixpanel)
	}

	if c.Tracker.Platform != "ios" || !c.Tracker.OptOutDefault || !c.Tracker.Logging {
		t.Fatalf("unexpected tracker config %v", c.Tracker)
	}

	if c.Tracker.FlushOnBackground {
		t.Fatal("flush on background should default to false")
	}

	if c.Tracker.SuperProperties["plan"] != "pro" {
		t.Fatalf("unexpected super properties %v", c.Tracker.SuperProperties)
	}
}
