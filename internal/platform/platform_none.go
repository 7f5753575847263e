//go:build baremetal && !esp32c3 && !rp2040

package platform

import (
	"io"
	"os"

	"chipbanner-go/errcode"
	"chipbanner-go/types"
)

const DeviceID = "unknown"

type Chip struct{}

func NewChip(types.BannerConfig) *Chip { return &Chip{} }

func (c *Chip) ChipInfo() types.ChipInfo {
	return types.ChipInfo{Model: "unknown", Cores: 1}
}

func (c *Chip) FlashSize() (uint32, error) { return 0, errcode.Unsupported }

func Console(types.BannerConfig) io.Writer { return os.Stdout }
