package ports

import (
	"context"

	"domoticz-hue-bridge/internal/domain/model"
)

// HubPort is the single point of contact with the Domoticz API. Commands
// report success as a plain bool; transport failures are logged by the
// adapter and never propagate. Hue/sat arrive in Hue scale and are rescaled
// by the adapter, brightness arrives as hub percent. Nil pointers mean the
// field is omitted from the outbound request.
type HubPort interface {
	SetPower(ctx context.Context, idx int, on bool) bool
	SetScenePower(ctx context.Context, idx int, on bool) bool
	SetDimmerLevel(ctx context.Context, idx, percent int) bool
	SetColor(ctx context.Context, idx int, hue, sat, briPercent *int) bool
	SetWhiteTemperature(ctx context.Context, idx, mired int, briPercent *int) bool
	Status(ctx context.Context, idx int, isScene bool) model.DeviceStatus
}
