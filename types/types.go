package types

// ---- Lifecycle state (retained on "state") ----

type Level string

const (
	LevelBooting Level = "booting"
	LevelBanner  Level = "banner"
	LevelIdle    Level = "idle"
)

type State struct {
	Level Level `json:"level"`
	TS    int64 `json:"ts_ms"`
}
