package banner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"chipbanner-go/bus"
	"chipbanner-go/errcode"
	"chipbanner-go/services/config"
	"chipbanner-go/types"

	"tinygo.org/x/drivers"
)

type fakeSource struct {
	chip     types.ChipInfo
	flash    uint32
	flashErr error
	heap     uint32
	calls    int
}

func (f *fakeSource) ChipInfo() types.ChipInfo { return f.chip }
func (f *fakeSource) FlashSize() (uint32, error) {
	f.calls++
	return f.flash, f.flashErr
}
func (f *fakeSource) FreeHeap() uint32 { return f.heap }

type fakeSensorSource struct {
	fakeSource
	milli     int32
	updateErr error
	which     drivers.Measurement
}

func (f *fakeSensorSource) Update(which drivers.Measurement) error {
	f.which = which
	return f.updateErr
}
func (f *fakeSensorSource) Temperature() int32 { return f.milli }

var c3 = types.ChipInfo{
	Model:    "esp32c3",
	Cores:    1,
	Revision: 4,
	Features: types.FeatureWiFi | types.FeatureBLE,
}

func TestWrite_FullBanner(t *testing.T) {
	src := &fakeSource{chip: c3, flash: 4 << 20, heap: 301234}
	var buf bytes.Buffer

	if err := Write(&buf, types.BannerConfig{Title: "Hello world!"}, Collect(src, types.BannerConfig{})); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := "Hello world!\n" +
		"This is esp32c3 chip with 1 CPU core(s), WiFi/BLE\n" +
		"Silicon revision v0.4\n" +
		"4MB external flash\n" +
		"Free heap size: 301234 bytes\n"
	if got := buf.String(); got != want {
		t.Fatalf("banner mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestCollect_FlashFailureOmitsLine(t *testing.T) {
	src := &fakeSource{chip: c3, flashErr: errcode.Unsupported, heap: 1024}
	r := Collect(src, types.BannerConfig{})
	if r.FlashOK {
		t.Fatal("FlashOK set despite failing query")
	}

	var buf bytes.Buffer
	if err := Write(&buf, types.BannerConfig{}, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "flash") {
		t.Fatalf("flash line present after failed query:\n%s", out)
	}
	if !strings.HasSuffix(out, "Free heap size: 1024 bytes\n") {
		t.Fatalf("banner did not continue past the flash query:\n%s", out)
	}
}

func TestCollect_ZeroFlashTreatedAsFailure(t *testing.T) {
	r := Collect(&fakeSource{chip: c3}, types.BannerConfig{})
	if r.FlashOK {
		t.Fatal("zero-size flash reported as OK")
	}
}

func TestCollect_ConfiguredFlashWins(t *testing.T) {
	src := &fakeSource{chip: c3, flashErr: errors.New("no query")}
	r := Collect(src, types.BannerConfig{FlashSize: 2 << 20})
	if !r.FlashOK || r.Flash != 2<<20 {
		t.Fatalf("report = %+v", r)
	}
	if src.calls != 0 {
		t.Fatalf("platform queried %d times despite override", src.calls)
	}
}

func TestWrite_Variants(t *testing.T) {
	cases := []struct {
		name string
		r    Report
		want []string
	}{
		{
			name: "no radio, embedded flash in KB",
			r: Report{
				Chip:    types.ChipInfo{Model: "rp2040", Cores: 2, Revision: 200, Features: types.FeatureEmbeddedFlash},
				Flash:   512 << 10,
				FlashOK: true,
			},
			want: []string{"2 CPU core(s), no radio", "revision v2.0", "512KB embedded flash"},
		},
		{
			name: "all radios",
			r: Report{Chip: types.ChipInfo{Model: "x", Cores: 2,
				Features: types.FeatureWiFi | types.FeatureBT | types.FeatureBLE | types.FeatureIEEE802154}},
			want: []string{"WiFi/BT/BLE/802.15.4"},
		},
		{
			name: "negative temperature",
			r:    Report{Chip: c3, TempMilli: -1250, TempOK: true},
			want: []string{"Die temperature: -1.2 C"},
		},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := Write(&buf, types.BannerConfig{}, c.r); err != nil {
			t.Fatalf("%s: Write: %v", c.name, err)
		}
		for _, w := range c.want {
			if !strings.Contains(buf.String(), w) {
				t.Fatalf("%s: missing %q in\n%s", c.name, w, buf.String())
			}
		}
	}
}

func TestCollect_DieTemperature(t *testing.T) {
	src := &fakeSensorSource{fakeSource: fakeSource{chip: c3}, milli: 27345}
	r := Collect(src, types.BannerConfig{})
	if !r.TempOK || r.TempMilli != 27345 {
		t.Fatalf("report = %+v", r)
	}
	if src.which != drivers.Temperature {
		t.Fatalf("Update called with %v", src.which)
	}

	var buf bytes.Buffer
	_ = Write(&buf, types.BannerConfig{}, r)
	if !strings.Contains(buf.String(), "Die temperature: 27.3 C\n") {
		t.Fatalf("temperature line missing:\n%s", buf.String())
	}

	src.updateErr = errors.New("adc busy")
	if r := Collect(src, types.BannerConfig{}); r.TempOK {
		t.Fatal("TempOK set despite failed update")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("console gone") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	if err := Write(failWriter{}, types.BannerConfig{Title: "t"}, Report{Chip: c3}); err == nil {
		t.Fatal("expected writer error")
	}
}

func TestService_UsesRetainedConfigAndPublishesState(t *testing.T) {
	b := bus.NewBus(4)
	cfgConn := b.NewConnection("config")
	cfg := config.Defaults()
	cfg.Banner.Title = "diag banner"
	cfg.Banner.FlashSize = 8 << 20
	config.Publish(cfgConn, cfg)

	src := &fakeSource{chip: c3, flashErr: errcode.Unsupported, heap: 10}
	var buf bytes.Buffer
	conn := b.NewConnection("banner")
	if err := New(src, &buf).Run(context.Background(), conn); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "diag banner\n") || !strings.Contains(out, "8MB external flash") {
		t.Fatalf("retained config not applied:\n%s", out)
	}

	st := conn.Subscribe(TopicState)
	select {
	case m := <-st.Channel():
		if s, ok := m.Payload.(types.State); !ok || s.Level != types.LevelBanner {
			t.Fatalf("state = %#v", m.Payload)
		}
	default:
		t.Fatal("no retained state")
	}
}

func TestService_DefaultsWithoutConfig(t *testing.T) {
	b := bus.NewBus(4)
	var buf bytes.Buffer
	src := &fakeSource{chip: c3, flash: 4 << 20}
	if err := New(src, &buf).Run(context.Background(), b.NewConnection("banner")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(buf.String(), config.Defaults().Banner.Title+"\n") {
		t.Fatalf("default title missing:\n%s", buf.String())
	}
}
