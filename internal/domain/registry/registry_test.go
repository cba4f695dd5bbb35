package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domoticz-hue-bridge/internal/domain/model"
)

func TestBuild_NumbersDevicesThenScenes(t *testing.T) {
	reg, err := Build(
		[]DeviceEntry{
			{Name: "Living Room Light", Idx: 10, Type: "rgb"},
			{Name: "Hallway", Idx: 11},
		},
		[]SceneEntry{
			{Name: "Party Mode", Idx: 1, Description: "everything on"},
		},
	)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	all := reg.All()
	assert.Equal(t, []string{"1", "2", "3"}, []string{all[0].ID, all[1].ID, all[2].ID})

	first, ok := reg.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Living Room Light", first.Name)
	assert.Equal(t, model.CapabilityRGB, first.Type)
	assert.False(t, first.IsScene)

	// Missing type defaults to switch
	second, _ := reg.Lookup("2")
	assert.Equal(t, model.CapabilitySwitch, second.Type)

	scene, ok := reg.Lookup("3")
	require.True(t, ok)
	assert.True(t, scene.IsScene)
	assert.Equal(t, model.CapabilityScene, scene.Type)
	assert.Equal(t, "everything on", scene.Description)
}

func TestBuild_RequiresNameAndIdx(t *testing.T) {
	_, err := Build([]DeviceEntry{{Idx: 10}}, nil)
	assert.Error(t, err)

	_, err = Build([]DeviceEntry{{Name: "No Idx"}}, nil)
	assert.Error(t, err)

	_, err = Build(nil, []SceneEntry{{Name: "No Idx"}})
	assert.Error(t, err)
}

func TestLookup_UnknownID(t *testing.T) {
	reg, err := Build([]DeviceEntry{{Name: "Lamp", Idx: 1}}, nil)
	require.NoError(t, err)

	_, ok := reg.Lookup("99")
	assert.False(t, ok)
}
