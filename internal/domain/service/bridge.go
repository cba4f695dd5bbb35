package service

import (
	"context"
	"math"

	"domoticz-hue-bridge/internal/domain/convert"
	"domoticz-hue-bridge/internal/domain/model"
	"domoticz-hue-bridge/internal/domain/registry"
	"domoticz-hue-bridge/internal/domain/translator"
	"domoticz-hue-bridge/internal/ports"
)

// BridgeService implements the control dispatch between the Hue API surface
// and the hub. The registry is read-only and the hub port is the only
// effectful collaborator, so the service itself carries no mutable state.
type BridgeService struct {
	registry *registry.Registry
	hub      ports.HubPort
}

func NewBridgeService(reg *registry.Registry, hub ports.HubPort) *BridgeService {
	return &BridgeService{registry: reg, hub: hub}
}

func (s *BridgeService) Lights(ctx context.Context) []model.LightSnapshot {
	devices := s.registry.All()
	snapshots := make([]model.LightSnapshot, 0, len(devices))
	for _, d := range devices {
		snapshots = append(snapshots, s.snapshot(ctx, d))
	}
	return snapshots
}

func (s *BridgeService) Light(ctx context.Context, id string) (model.LightSnapshot, bool) {
	d, ok := s.registry.Lookup(id)
	if !ok {
		return model.LightSnapshot{}, false
	}
	return s.snapshot(ctx, d), true
}

func (s *BridgeService) snapshot(ctx context.Context, d *model.Device) model.LightSnapshot {
	status := s.hub.Status(ctx, d.Idx, d.IsScene)
	if d.Type == model.CapabilityDimmer && d.ToHueFormula != "" {
		level := convert.BriToPercent(status.Bri)
		status.Bri = clampBri(translator.Evaluate(d.ToHueFormula, float64(level)))
	}
	return model.LightSnapshot{Device: d, Status: status}
}

// SetLightState applies a parsed PUT body. The power rule always runs when
// "on" is present; after that at most one color/brightness branch executes,
// chosen by capability type first, then by which fields are present. Success
// entries echo the requested value regardless of the hub call's outcome;
// only an unknown light id yields an error entry.
func (s *BridgeService) SetLightState(ctx context.Context, id string, update model.StateUpdate) []model.CommandResult {
	device, ok := s.registry.Lookup(id)
	if !ok {
		return []model.CommandResult{model.ErrorResult("Light not found")}
	}

	results := make([]model.CommandResult, 0, 4)

	if update.On != nil {
		if device.IsScene {
			s.hub.SetScenePower(ctx, device.Idx, *update.On)
		} else {
			s.hub.SetPower(ctx, device.Idx, *update.On)
		}
		results = append(results, model.FieldSuccess(id, "on", *update.On))
	}

	switch {
	case device.Type == model.CapabilityRGB && !device.IsScene:
		results = append(results, s.setColorState(ctx, device, update)...)

	case device.Type == model.CapabilityDimmer && !device.IsScene && update.Bri != nil:
		s.hub.SetDimmerLevel(ctx, device.Idx, s.dimmerPercent(device, *update.Bri))
		results = append(results, model.FieldSuccess(id, "bri", *update.Bri))

	case update.Bri != nil:
		// Switches and scenes: Alexa sends bri alongside on/off and
		// expects an acknowledgment, not an error. No hub call.
		results = append(results, model.FieldSuccess(id, "bri", *update.Bri))
	}

	return results
}

func (s *BridgeService) setColorState(ctx context.Context, device *model.Device, update model.StateUpdate) []model.CommandResult {
	var results []model.CommandResult
	switch {
	case update.Ct != nil:
		s.hub.SetWhiteTemperature(ctx, device.Idx, *update.Ct, briPercent(update.Bri))
		results = append(results, model.FieldSuccess(device.ID, "ct", *update.Ct))
		if update.Bri != nil {
			results = append(results, model.FieldSuccess(device.ID, "bri", *update.Bri))
		}

	case update.Hue != nil || update.Sat != nil:
		s.hub.SetColor(ctx, device.Idx, update.Hue, update.Sat, briPercent(update.Bri))
		if update.Hue != nil {
			results = append(results, model.FieldSuccess(device.ID, "hue", *update.Hue))
		}
		if update.Sat != nil {
			results = append(results, model.FieldSuccess(device.ID, "sat", *update.Sat))
		}
		if update.Bri != nil {
			results = append(results, model.FieldSuccess(device.ID, "bri", *update.Bri))
		}

	case update.Bri != nil:
		s.hub.SetDimmerLevel(ctx, device.Idx, convert.BriToPercent(*update.Bri))
		results = append(results, model.FieldSuccess(device.ID, "bri", *update.Bri))
	}
	return results
}

func (s *BridgeService) dimmerPercent(device *model.Device, bri int) int {
	if device.ToHubFormula != "" {
		return clampPercent(translator.Evaluate(device.ToHubFormula, float64(bri)))
	}
	return convert.BriToPercent(bri)
}

func briPercent(bri *int) *int {
	if bri == nil {
		return nil
	}
	pct := convert.BriToPercent(*bri)
	return &pct
}

func clampBri(v float64) int {
	return int(math.Min(math.Max(math.Round(v), 0), 254))
}

func clampPercent(v float64) int {
	return int(math.Min(math.Max(math.Round(v), 0), 100))
}
