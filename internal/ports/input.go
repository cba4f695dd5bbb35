package ports

import (
	"context"

	"domoticz-hue-bridge/internal/domain/model"
)

// BridgePort is what the HTTP surface needs from the domain.
type BridgePort interface {
	Lights(ctx context.Context) []model.LightSnapshot
	Light(ctx context.Context, id string) (model.LightSnapshot, bool)
	SetLightState(ctx context.Context, id string, update model.StateUpdate) []model.CommandResult
}
