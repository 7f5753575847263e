package types

import "time"

// Config is the embedded per-device document, one retained topic per section.
type Config struct {
	Banner BannerConfig `json:"banner"`
	Idle   IdleConfig   `json:"idle"`
	Boot   BootConfig   `json:"boot"`
}

// BannerConfig is published on "config/banner".
type BannerConfig struct {
	Title string `json:"title"`
	// FlashSize overrides the platform query when non-zero (bytes).
	FlashSize  uint32 `json:"flash_size,omitempty"`
	UARTMirror bool   `json:"uart_mirror,omitempty"`
	UARTBaud   uint32 `json:"uart_baud,omitempty"`
}

// IdleConfig is published on "config/idle".
type IdleConfig struct {
	IntervalMS int  `json:"interval_ms"`
	Heartbeat  bool `json:"heartbeat,omitempty"`
}

func (c IdleConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// BootConfig is published on "config/boot".
type BootConfig struct {
	DelayMS int `json:"delay_ms"`
}

func (c BootConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}
