// Package registry holds the ordered, read-only mapping from assistant-visible
// light ids to device descriptors. Built once at startup, before any listener.
package registry

import (
	"fmt"
	"strconv"

	"domoticz-hue-bridge/internal/domain/model"
)

// DeviceEntry is one configured Domoticz device.
type DeviceEntry struct {
	Name         string `yaml:"name"`
	Idx          int    `yaml:"idx"`
	Type         string `yaml:"type,omitempty"`
	ToHubFormula string `yaml:"to_hub_formula,omitempty"`
	ToHueFormula string `yaml:"to_hue_formula,omitempty"`
}

// SceneEntry is one configured Domoticz scene, exposed as an on/off switch.
type SceneEntry struct {
	Name        string `yaml:"name"`
	Idx         int    `yaml:"idx"`
	Description string `yaml:"description,omitempty"`
}

type Registry struct {
	ids     []string
	devices map[string]*model.Device
}

// Build assigns ids "1","2",... in input order, devices first then scenes.
// Any entry missing a name or idx fails the whole build.
func Build(devices []DeviceEntry, scenes []SceneEntry) (*Registry, error) {
	r := &Registry{devices: make(map[string]*model.Device)}
	lightID := 1

	for i, e := range devices {
		if e.Name == "" || e.Idx == 0 {
			return nil, fmt.Errorf("device entry %d: name and idx are required", i+1)
		}
		capType := model.CapabilityType(e.Type)
		if capType == "" {
			capType = model.CapabilitySwitch
		}
		r.add(&model.Device{
			ID:           strconv.Itoa(lightID),
			Name:         e.Name,
			Idx:          e.Idx,
			Type:         capType,
			ToHubFormula: e.ToHubFormula,
			ToHueFormula: e.ToHueFormula,
		})
		lightID++
	}

	for i, e := range scenes {
		if e.Name == "" || e.Idx == 0 {
			return nil, fmt.Errorf("scene entry %d: name and idx are required", i+1)
		}
		r.add(&model.Device{
			ID:          strconv.Itoa(lightID),
			Name:        e.Name,
			Idx:         e.Idx,
			Type:        model.CapabilityScene,
			IsScene:     true,
			Description: e.Description,
		})
		lightID++
	}

	return r, nil
}

func (r *Registry) add(d *model.Device) {
	r.ids = append(r.ids, d.ID)
	r.devices[d.ID] = d
}

func (r *Registry) Lookup(id string) (*model.Device, bool) {
	d, ok := r.devices[id]
	return d, ok
}

// All returns the descriptors in insertion order.
func (r *Registry) All() []*model.Device {
	all := make([]*model.Device, 0, len(r.ids))
	for _, id := range r.ids {
		all = append(all, r.devices[id])
	}
	return all
}

func (r *Registry) Len() int {
	return len(r.ids)
}
