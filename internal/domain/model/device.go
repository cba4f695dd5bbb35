package model

type CapabilityType string

const (
	CapabilitySwitch CapabilityType = "switch"
	CapabilityDimmer CapabilityType = "dimmer"
	CapabilityRGB    CapabilityType = "rgb"
	CapabilityScene  CapabilityType = "scene"
)

// Device maps one assistant-visible light id onto a Domoticz device or scene.
// Built once from configuration, immutable afterwards.
type Device struct {
	ID      string
	Name    string
	Idx     int
	Type    CapabilityType
	IsScene bool

	// Scenes only
	Description string

	// Optional formulas (variable: x) replacing the linear bri<->percent
	// scaling on dimmer devices.
	ToHubFormula string
	ToHueFormula string
}

// DeviceStatus is the normalized live state of a hub device, in Hue ranges.
// Never cached; every read comes from a fresh hub query.
type DeviceStatus struct {
	On  bool
	Bri int // 0-254
	Hue int // 0-65535
	Sat int // 0-254
}

// LightSnapshot pairs a registry descriptor with its live status.
type LightSnapshot struct {
	Device *Device
	Status DeviceStatus
}
