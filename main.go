package main

import (
	"context"
	"io"
	"time"

	"chipbanner-go/bus"
	"chipbanner-go/internal/platform"
	"chipbanner-go/services/banner"
	"chipbanner-go/services/config"
	"chipbanner-go/services/idle"
	"chipbanner-go/types"
)

func main() {
	cfg, err := config.Load(platform.DeviceID)
	if err != nil {
		println("[main] config:", err.Error())
	}

	// Allow USB CDC to enumerate before we print.
	time.Sleep(cfg.Boot.Delay())

	if err := run(context.Background(), platform.NewChip(cfg.Banner), platform.Console(cfg.Banner), cfg); err != nil {
		println("[main] idle loop exited:", err.Error())
	}
}

// run prints the banner and then idles until ctx is done.
func run(ctx context.Context, src banner.Source, out io.Writer, cfg types.Config) error {
	b := bus.NewBus(4)
	sys := b.NewConnection("main")
	sys.Publish(sys.NewMessage(banner.TopicState,
		types.State{Level: types.LevelBooting, TS: time.Now().UnixMilli()}, true))

	config.Publish(b.NewConnection("config"), cfg)

	if err := banner.New(src, out).Run(ctx, b.NewConnection("banner")); err != nil {
		// Nothing to recover; the console is the only output we have.
		println("[main] banner:", err.Error())
	}

	return idle.New(src, out).Run(ctx, b.NewConnection("idle"))
}
