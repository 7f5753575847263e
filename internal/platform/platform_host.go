// internal/platform/platform_host.go
//go:build !baremetal

package platform

import (
	"io"
	"os"
	"runtime"

	"chipbanner-go/errcode"
	"chipbanner-go/types"
)

// DeviceID selects the embedded config document.
const DeviceID = "host"

// Chip reports the host the program runs on.
type Chip struct{}

func NewChip(types.BannerConfig) *Chip { return &Chip{} }

func (c *Chip) ChipInfo() types.ChipInfo {
	return types.ChipInfo{
		Model: runtime.GOARCH,
		Cores: runtime.NumCPU(),
	}
}

// FlashSize has no host equivalent.
func (c *Chip) FlashSize() (uint32, error) { return 0, errcode.Unsupported }

func Console(types.BannerConfig) io.Writer { return os.Stdout }
