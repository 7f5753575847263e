// Package banner prints the chip diagnostic banner once at startup.
package banner

import (
	"context"
	"io"
	"strings"
	"time"

	"chipbanner-go/bus"
	"chipbanner-go/services/config"
	"chipbanner-go/types"
	"chipbanner-go/x/fmtx"

	"tinygo.org/x/drivers"
)

// TopicState carries the retained lifecycle level.
var TopicState = bus.T("state")

// Source is what a platform exposes about the running chip.
type Source interface {
	ChipInfo() types.ChipInfo
	FlashSize() (uint32, error)
	FreeHeap() uint32
}

// dieSensor is implemented by platforms with an on-die temperature channel.
type dieSensor interface {
	drivers.Sensor
	Temperature() int32 // milli-celsius
}

// Report is the snapshot printed by Write.
type Report struct {
	Chip      types.ChipInfo
	Flash     uint32
	FlashOK   bool
	FreeHeap  uint32
	TempMilli int32
	TempOK    bool
}

// Collect queries src. A failing flash query only clears FlashOK.
func Collect(src Source, cfg types.BannerConfig) Report {
	r := Report{Chip: src.ChipInfo()}

	if cfg.FlashSize > 0 {
		r.Flash, r.FlashOK = cfg.FlashSize, true
	} else if n, err := src.FlashSize(); err == nil && n > 0 {
		r.Flash, r.FlashOK = n, true
	}

	if s, ok := src.(dieSensor); ok {
		if err := s.Update(drivers.Temperature); err == nil {
			r.TempMilli, r.TempOK = s.Temperature(), true
		}
	}

	r.FreeHeap = src.FreeHeap()
	return r
}

// Write renders r as the console banner.
func Write(w io.Writer, cfg types.BannerConfig, r Report) error {
	radios := "no radio"
	if rs := r.Chip.Features.Radios(); len(rs) > 0 {
		radios = strings.Join(rs, "/")
	}

	if cfg.Title != "" {
		if _, err := fmtx.Fprintf(w, "%s\n", cfg.Title); err != nil {
			return err
		}
	}
	if _, err := fmtx.Fprintf(w, "This is %s chip with %d CPU core(s), %s\n",
		r.Chip.Model, r.Chip.Cores, radios); err != nil {
		return err
	}
	if _, err := fmtx.Fprintf(w, "Silicon revision v%d.%d\n",
		r.Chip.RevisionMajor(), r.Chip.RevisionMinor()); err != nil {
		return err
	}
	if r.FlashOK {
		kind := "external"
		if r.Chip.Features.Has(types.FeatureEmbeddedFlash) {
			kind = "embedded"
		}
		if _, err := fmtx.Fprintf(w, "%s %s flash\n", formatSize(r.Flash), kind); err != nil {
			return err
		}
	}
	if r.TempOK {
		if _, err := fmtx.Fprintf(w, "Die temperature: %s C\n", formatMilli(r.TempMilli)); err != nil {
			return err
		}
	}
	_, err := fmtx.Fprintf(w, "Free heap size: %d bytes\n", r.FreeHeap)
	return err
}

func formatSize(n uint32) string {
	const mib = 1 << 20
	if n >= mib && n%mib == 0 {
		return fmtx.Sprintf("%dMB", n/mib)
	}
	return fmtx.Sprintf("%dKB", n>>10)
}

// formatMilli renders milli-units with one decimal, truncating toward zero.
func formatMilli(m int32) string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmtx.Sprintf("%s%d.%d", sign, v/1000, (v%1000)/100)
}

// Service prints the banner once from the retained banner config.
type Service struct {
	src Source
	out io.Writer
}

func New(src Source, out io.Writer) *Service {
	return &Service{src: src, out: out}
}

// Run never fails because of the platform queries; only console write errors surface.
func (s *Service) Run(ctx context.Context, conn *bus.Connection) error {
	cfg := config.Defaults().Banner
	sub := conn.Subscribe(config.TopicBanner)
	select {
	case m := <-sub.Channel():
		if bc, ok := m.Payload.(types.BannerConfig); ok {
			cfg = bc
		}
	default:
	}
	conn.Unsubscribe(sub)

	conn.Publish(conn.NewMessage(TopicState,
		types.State{Level: types.LevelBanner, TS: time.Now().UnixMilli()}, true))

	if err := ctx.Err(); err != nil {
		return err
	}
	return Write(s.out, cfg, Collect(s.src, cfg))
}
