//go:build rp2040

package platform

import (
	"device/rp"
	"io"
	"machine"
	"os"

	"chipbanner-go/errcode"
	"chipbanner-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

const DeviceID = "rp2040"

// XIP window base; flash is mapped from here up to FlashDataEnd.
const xipBase = uintptr(0x10000000)

var _ drivers.Sensor = (*Chip)(nil)

type Chip struct {
	milliC int32
}

func NewChip(types.BannerConfig) *Chip {
	machine.InitADC()
	return &Chip{}
}

func (c *Chip) ChipInfo() types.ChipInfo {
	// CHIP_ID: [31:28] revision, [27:12] part, [11:0] manufacturer.
	rev := rp.SYSINFO.CHIP_ID.Get() >> 28
	return types.ChipInfo{
		Model:    "rp2040",
		Cores:    2,
		Revision: uint16(rev * 100),
	}
}

func (c *Chip) FlashSize() (uint32, error) {
	end := machine.FlashDataEnd()
	if end <= xipBase {
		return 0, errcode.Unavailable
	}
	return uint32(end - xipBase), nil
}

// Update samples the on-die temperature channel.
func (c *Chip) Update(which drivers.Measurement) error {
	if which&drivers.Temperature == 0 {
		return errcode.Unsupported
	}
	c.milliC = machine.ReadTemperature()
	return nil
}

func (c *Chip) Temperature() int32 { return c.milliC }

// Console mirrors stdout (USB CDC) to UART0 when the banner config asks for it.
func Console(cfg types.BannerConfig) io.Writer {
	if !cfg.UARTMirror {
		return os.Stdout
	}
	err := uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: cfg.UARTBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	if err != nil {
		println("[platform] uart0:", err.Error())
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, uartx.UART0)
}
