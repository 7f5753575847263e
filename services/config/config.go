package config

import (
	"encoding/json"

	"chipbanner-go/bus"
	"chipbanner-go/errcode"
	"chipbanner-go/types"

	"github.com/tidwall/jsonc"
)

const configPrefix = "config"

var (
	TopicBanner = bus.T(configPrefix, "banner")
	TopicIdle   = bus.T(configPrefix, "idle")
	TopicBoot   = bus.T(configPrefix, "boot")
)

const (
	defaultTitle      = "Hello world!"
	defaultIntervalMS = 1000
	defaultBaud       = 115200
	defaultBootDelay  = 2000
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Defaults is the configuration used when a device has no usable document.
func Defaults() types.Config {
	return types.Config{
		Banner: types.BannerConfig{Title: defaultTitle, UARTBaud: defaultBaud},
		Idle:   types.IdleConfig{IntervalMS: defaultIntervalMS},
		Boot:   types.BootConfig{DelayMS: defaultBootDelay},
	}
}

// Load decodes the embedded document for device over the defaults.
func Load(device string) (types.Config, error) {
	cfg := Defaults()
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return cfg, &errcode.E{C: errcode.UnknownDevice, Op: "config.Load", Msg: device}
	}
	if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
		return Defaults(), errcode.Wrap(errcode.InvalidConfig, "config.Load", err)
	}
	normalise(&cfg)
	return cfg, nil
}

func normalise(cfg *types.Config) {
	if cfg.Idle.IntervalMS <= 0 {
		cfg.Idle.IntervalMS = defaultIntervalMS
	}
	if cfg.Banner.UARTBaud == 0 {
		cfg.Banner.UARTBaud = defaultBaud
	}
	if cfg.Boot.DelayMS < 0 {
		cfg.Boot.DelayMS = 0
	}
}

// Publish places each section on its retained topic.
func Publish(conn *bus.Connection, cfg types.Config) {
	conn.Publish(conn.NewMessage(TopicBanner, cfg.Banner, true))
	conn.Publish(conn.NewMessage(TopicIdle, cfg.Idle, true))
	conn.Publish(conn.NewMessage(TopicBoot, cfg.Boot, true))
}
