package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSV(t *testing.T) {
	h, s, v := RGBToHSV(255, 0, 0)
	assert.InDelta(t, 0.0, h, 0.001)
	assert.InDelta(t, 1.0, s, 0.001)
	assert.InDelta(t, 1.0, v, 0.001)

	// Degenerate grey case
	h, s, _ = RGBToHSV(0, 0, 0)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, s)

	h, s, v = RGBToHSV(128, 128, 128)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, s)
	assert.InDelta(t, 0.502, v, 0.001)

	// Pure green sits a third of the way around the wheel
	h, _, _ = RGBToHSV(0, 255, 0)
	assert.InDelta(t, 1.0/3.0, h, 0.001)

	// Pure blue at two thirds
	h, _, _ = RGBToHSV(0, 0, 255)
	assert.InDelta(t, 2.0/3.0, h, 0.001)
}

func TestHSVToHueScale(t *testing.T) {
	hue, sat := HSVToHueScale(0, 0)
	assert.Equal(t, 0, hue)
	assert.Equal(t, 0, sat)

	hue, sat = HSVToHueScale(1, 1)
	assert.Equal(t, 65535, hue)
	assert.Equal(t, 254, sat)

	// Out-of-range input clamps
	hue, sat = HSVToHueScale(1.5, -0.2)
	assert.Equal(t, 65535, hue)
	assert.Equal(t, 0, sat)
}

func TestHueSatToHub(t *testing.T) {
	hue, sat := HueSatToHub(65535, 254)
	assert.Equal(t, 360, hue)
	assert.Equal(t, 100, sat)

	hue, sat = HueSatToHub(10000, 200)
	assert.Equal(t, 54, hue)
	assert.Equal(t, 78, sat)

	hue, sat = HueSatToHub(0, 0)
	assert.Equal(t, 0, hue)
	assert.Equal(t, 0, sat)
}

func TestMiredToWhiteMix(t *testing.T) {
	cool, warm := MiredToWhiteMix(153)
	assert.Equal(t, 255, cool)
	assert.Equal(t, 0, warm)

	cool, warm = MiredToWhiteMix(500)
	assert.Equal(t, 0, cool)
	assert.Equal(t, 255, warm)

	// Out-of-range values clamp to the nearest bound
	cool, warm = MiredToWhiteMix(100)
	assert.Equal(t, 255, cool)
	assert.Equal(t, 0, warm)

	cool, warm = MiredToWhiteMix(600)
	assert.Equal(t, 0, cool)
	assert.Equal(t, 255, warm)

	cool, warm = MiredToWhiteMix(326)
	assert.InDelta(t, 127, cool, 1)
	assert.InDelta(t, 127, warm, 1)
}

func TestBrightnessScaling(t *testing.T) {
	assert.Equal(t, 0, BriToPercent(0))
	assert.Equal(t, 100, BriToPercent(254))
	assert.Equal(t, 50, BriToPercent(127))

	assert.Equal(t, 0, PercentToBri(0))
	assert.Equal(t, 254, PercentToBri(100))

	// Out-of-range input clamps
	assert.Equal(t, 100, BriToPercent(400))
	assert.Equal(t, 254, PercentToBri(120))
}

func TestBrightnessRoundTripStability(t *testing.T) {
	for b := 0; b <= 254; b++ {
		once := BriToPercent(b)
		again := BriToPercent(PercentToBri(once))
		assert.InDelta(t, once, again, 1, "brightness %d", b)
	}
}
