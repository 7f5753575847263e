package idle

import (
	"context"
	"io"
	"time"

	"chipbanner-go/bus"
	"chipbanner-go/services/banner"
	"chipbanner-go/services/config"
	"chipbanner-go/types"
	"chipbanner-go/x/fmtx"
)

// HeapReader reports free heap bytes for the heartbeat line.
type HeapReader interface {
	FreeHeap() uint32
}

type Service struct {
	heap HeapReader
	out  io.Writer
}

func New(heap HeapReader, out io.Writer) *Service {
	return &Service{heap: heap, out: out}
}

// Run parks the task on a ticker. It only returns when ctx is cancelled,
// which firmware never does.
func (s *Service) Run(ctx context.Context, conn *bus.Connection) error {
	cfg := config.Defaults().Idle
	cfgSub := conn.Subscribe(config.TopicIdle)
	defer conn.Unsubscribe(cfgSub)

	// Retained config is already queued.
	select {
	case msg := <-cfgSub.Channel():
		cfg = s.apply(cfg, msg)
	default:
	}

	tick := time.NewTicker(cfg.Interval())
	defer tick.Stop()

	conn.Publish(conn.NewMessage(banner.TopicState,
		types.State{Level: types.LevelIdle, TS: time.Now().UnixMilli()}, true))

	for {
		select {
		case <-ctx.Done():
			println("[idle] stopping")
			return ctx.Err()
		case t := <-tick.C:
			if cfg.Heartbeat {
				fmtx.Fprintf(s.out, "[idle] %s free heap %d bytes\n", t.Format("15:04:05"), s.heap.FreeHeap())
			}
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return nil
			}
			prev := cfg.IntervalMS
			cfg = s.apply(cfg, msg)
			if cfg.IntervalMS != prev {
				tick.Reset(cfg.Interval())
				println("[idle] interval set to", cfg.IntervalMS, "ms")
			}
		}
	}
}

func (s *Service) apply(cur types.IdleConfig, msg *bus.Message) types.IdleConfig {
	ic, ok := msg.Payload.(types.IdleConfig)
	if !ok {
		return cur
	}
	if ic.IntervalMS <= 0 {
		ic.IntervalMS = cur.IntervalMS
	}
	return ic
}
