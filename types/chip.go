package types

// Feature is a bitset of chip capabilities reported alongside the identity.
type Feature uint32

const (
	FeatureEmbeddedFlash Feature = 1 << iota
	FeatureWiFi
	FeatureBLE
	FeatureBT
	FeatureIEEE802154
	FeatureEmbeddedPSRAM
)

func (f Feature) Has(x Feature) bool { return f&x == x }

// Radios lists the radio features in a fixed order.
func (f Feature) Radios() []string {
	var out []string
	if f.Has(FeatureWiFi) {
		out = append(out, "WiFi")
	}
	if f.Has(FeatureBT) {
		out = append(out, "BT")
	}
	if f.Has(FeatureBLE) {
		out = append(out, "BLE")
	}
	if f.Has(FeatureIEEE802154) {
		out = append(out, "802.15.4")
	}
	return out
}

// ChipInfo is read once at startup and never mutated.
type ChipInfo struct {
	Model    string  `json:"model"`
	Cores    int     `json:"cores"`
	Revision uint16  `json:"revision"` // major*100 + minor
	Features Feature `json:"features"`
}

func (c ChipInfo) RevisionMajor() int { return int(c.Revision / 100) }
func (c ChipInfo) RevisionMinor() int { return int(c.Revision % 100) }
