// Package translator maps capability types onto the Hue-facing device
// profiles and handles the optional per-device dim formulas.
package translator

import "domoticz-hue-bridge/internal/domain/model"

// Profile is the set of fixed Hue descriptive fields advertised for one
// capability type.
type Profile struct {
	Type             string
	ModelID          string
	ProductName      string
	ManufacturerName string
	ColorMode        string
}

var profiles = map[model.CapabilityType]Profile{
	model.CapabilityRGB: {
		Type:             "Extended color light",
		ModelID:          "LCT015",
		ProductName:      "Hue color lamp",
		ManufacturerName: "Philips",
		ColorMode:        "hs",
	},
	model.CapabilityDimmer: {
		Type:             "Dimmable light",
		ModelID:          "LWB010",
		ProductName:      "Hue white lamp",
		ManufacturerName: "Philips",
		ColorMode:        "ct",
	},
}

// plugProfile covers switch, scene and any unrecognized capability.
var plugProfile = Profile{
	Type:             "On/Off plug-in unit",
	ModelID:          "LOM001",
	ProductName:      "Hue smart plug",
	ManufacturerName: "Philips",
	ColorMode:        "ct",
}

func ProfileFor(t model.CapabilityType) Profile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return plugProfile
}
