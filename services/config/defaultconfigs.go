package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (platform.DeviceID for the build target)
// Val: JSON with comments for that device
// -----------------------------------------------------------------------------

const cfgHost = `{
  "banner": {
    "title": "Hello world!"
  },
  "idle": {
    "interval_ms": 1000
  },
  // nothing to enumerate on the host
  "boot": {
    "delay_ms": 0
  }
}`

const cfgESP32C3 = `{
  "banner": {
    "title": "Hello world!",
    // ESP32-C3 has no flash size query; matches the image header of the devkit
    "flash_size": 4194304
  },
  "idle": {
    "interval_ms": 1000
  },
  "boot": {
    "delay_ms": 2000
  }
}`

const cfgRP2040 = `{
  "banner": {
    "title": "Hello world!",
    "uart_mirror": true,
    "uart_baud": 115200
  },
  "idle": {
    "interval_ms": 1000,
    "heartbeat": true
  },
  "boot": {
    "delay_ms": 2000
  }
}`

const cfgUnknown = `{
  "banner": {"title": "Hello world!"},
  "idle": {"interval_ms": 1000},
  "boot": {"delay_ms": 2000}
}`

var embeddedConfigs = map[string][]byte{
	"host":    []byte(cfgHost),
	"esp32c3": []byte(cfgESP32C3),
	"rp2040":  []byte(cfgRP2040),
	"unknown": []byte(cfgUnknown),
}
