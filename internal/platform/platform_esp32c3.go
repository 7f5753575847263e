//go:build esp32c3

package platform

import (
	"io"
	"os"
	"runtime/volatile"
	"unsafe"

	"chipbanner-go/errcode"
	"chipbanner-go/types"
)

const DeviceID = "esp32c3"

// eFuse BLOCK1 words carrying wafer and package versions.
const (
	efuseRdMacSpiSys3 = uintptr(0x60008850)
	efuseRdMacSpiSys5 = uintptr(0x60008858)
)

const pkgESP32C3FH4 = 1

type Chip struct{}

func NewChip(types.BannerConfig) *Chip { return &Chip{} }

func readReg(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (c *Chip) ChipInfo() types.ChipInfo {
	w3 := readReg(efuseRdMacSpiSys3)
	w5 := readReg(efuseRdMacSpiSys5)

	minor := (w3>>18)&0x7 | ((w5>>23)&0x1)<<3
	major := (w5 >> 24) & 0x3
	pkg := (w3 >> 21) & 0x7

	f := types.FeatureWiFi | types.FeatureBLE
	if pkg == pkgESP32C3FH4 {
		f |= types.FeatureEmbeddedFlash
	}
	return types.ChipInfo{
		Model:    "esp32c3",
		Cores:    1,
		Revision: uint16(major*100 + minor),
		Features: f,
	}
}

// FlashSize is not queryable here; the banner config carries it.
func (c *Chip) FlashSize() (uint32, error) { return 0, errcode.Unsupported }

// Console is the USB serial/JTAG or UART0 the runtime prints to.
func Console(types.BannerConfig) io.Writer { return os.Stdout }
