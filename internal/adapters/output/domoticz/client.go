// Package domoticz is the single point of contact with the Domoticz
// json.htm?type=command API. Every transport failure, non-success status or
// malformed response degrades to a boolean false or an all-off status and is
// logged; nothing is retried and nothing propagates past this layer.
package domoticz

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"domoticz-hue-bridge/internal/domain/convert"
	"domoticz-hue-bridge/internal/domain/model"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client

	mu       sync.Mutex
	loggedIn bool
}

func NewClient(baseURL, username, password string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ensureLogin performs the single logincheck exchange on first use. The mutex
// is held across the whole exchange so concurrent first requests do not race
// duplicate logins. A failed login is logged and subsequent calls proceed
// unauthenticated; many hub deployments require no authentication at all.
func (c *Client) ensureLogin(ctx context.Context) {
	if c.username == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loggedIn {
		return
	}

	params := url.Values{}
	params.Set("type", "command")
	params.Set("param", "logincheck")
	params.Set("username", base64.StdEncoding.EncodeToString([]byte(c.username)))
	params.Set("password", fmt.Sprintf("%x", md5.Sum([]byte(c.password))))

	var resp struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, params, &resp); err != nil {
		log.Error().Err(err).Msg("Domoticz login failed")
		return
	}
	if resp.Status != "OK" {
		log.Error().Str("status", resp.Status).Msg("Domoticz rejected login")
		return
	}
	log.Info().Str("username", c.username).Msg("Logged in to Domoticz")
	c.loggedIn = true
}

func (c *Client) SetPower(ctx context.Context, idx int, on bool) bool {
	params := commandParams("switchlight", idx)
	params.Set("switchcmd", switchCmd(on))
	ok := c.command(ctx, params)
	log.Info().Int("idx", idx).Str("cmd", switchCmd(on)).Bool("ok", ok).Msg("Domoticz switch")
	return ok
}

func (c *Client) SetScenePower(ctx context.Context, idx int, on bool) bool {
	params := commandParams("switchscene", idx)
	params.Set("switchcmd", switchCmd(on))
	ok := c.command(ctx, params)
	log.Info().Int("idx", idx).Str("cmd", switchCmd(on)).Bool("ok", ok).Msg("Domoticz scene")
	return ok
}

func (c *Client) SetDimmerLevel(ctx context.Context, idx, percent int) bool {
	params := commandParams("switchlight", idx)
	params.Set("switchcmd", "Set Level")
	params.Set("level", strconv.Itoa(percent))
	ok := c.command(ctx, params)
	log.Info().Int("idx", idx).Int("level", percent).Bool("ok", ok).Msg("Domoticz dimmer")
	return ok
}

// SetColor forwards only the supplied fields; hue and sat arrive in Hue scale
// and are rescaled to the hub's 0-360 / 0-100 parameters.
func (c *Client) SetColor(ctx context.Context, idx int, hue, sat, briPercent *int) bool {
	params := commandParams("setcolbrightnessvalue", idx)
	params.Set("iswhite", "false")
	if hue != nil {
		hubHue, _ := convert.HueSatToHub(*hue, 0)
		params.Set("hue", strconv.Itoa(hubHue))
	}
	if sat != nil {
		_, hubSat := convert.HueSatToHub(0, *sat)
		params.Set("saturation", strconv.Itoa(hubSat))
	}
	if briPercent != nil {
		params.Set("brightness", strconv.Itoa(*briPercent))
	}
	ok := c.command(ctx, params)
	log.Info().Int("idx", idx).Str("hue", params.Get("hue")).Str("sat", params.Get("saturation")).
		Str("bri", params.Get("brightness")).Bool("ok", ok).Msg("Domoticz RGB")
	return ok
}

// SetWhiteTemperature drives the cold/warm white LED channels of RGBWW lamps
// via a single combined color+brightness command. Missing brightness
// defaults to 100%.
func (c *Client) SetWhiteTemperature(ctx context.Context, idx, mired int, briPercent *int) bool {
	cool, warm := convert.MiredToWhiteMix(mired)
	// m=2 selects white mode
	colorJSON, _ := json.Marshal(map[string]int{"m": 2, "t": 0, "r": 0, "g": 0, "b": 0, "cw": cool, "ww": warm})

	level := 100
	if briPercent != nil {
		level = *briPercent
	}

	params := commandParams("setcolbrightnessvalue", idx)
	params.Set("color", string(colorJSON))
	params.Set("brightness", strconv.Itoa(level))
	ok := c.command(ctx, params)
	log.Info().Int("idx", idx).Int("cw", cool).Int("ww", warm).Int("bri", level).Bool("ok", ok).Msg("Domoticz white")
	return ok
}

// Status runs a fresh hub query and normalizes the answer into Hue ranges.
// Scenes report only on/off with brightness pinned at maximum.
func (c *Client) Status(ctx context.Context, idx int, isScene bool) model.DeviceStatus {
	c.ensureLogin(ctx)

	if isScene {
		return c.sceneStatus(ctx, idx)
	}

	params := url.Values{}
	params.Set("type", "command")
	params.Set("param", "getdevices")
	params.Set("rid", strconv.Itoa(idx))

	var resp struct {
		Result []deviceResult `json:"result"`
	}
	if err := c.get(ctx, params, &resp); err != nil {
		log.Error().Err(err).Int("idx", idx).Msg("Domoticz status query failed")
		return model.DeviceStatus{}
	}
	if len(resp.Result) == 0 {
		return model.DeviceStatus{}
	}

	device := resp.Result[0]
	on := device.Status != "" && device.Status != "Off"
	level := device.Level
	if level == 0 && on {
		// An always-on switch reports no numeric level.
		level = 100
	}

	status := model.DeviceStatus{On: on, Bri: convert.PercentToBri(level)}
	if r, g, b, ok := device.Color.RGB(); ok {
		h, s, _ := convert.RGBToHSV(r, g, b)
		status.Hue, status.Sat = convert.HSVToHueScale(h, s)
	}
	return status
}

func (c *Client) sceneStatus(ctx context.Context, idx int) model.DeviceStatus {
	params := url.Values{}
	params.Set("type", "command")
	params.Set("param", "getscenes")

	var resp struct {
		Result []sceneResult `json:"result"`
	}
	if err := c.get(ctx, params, &resp); err != nil {
		log.Error().Err(err).Int("idx", idx).Msg("Domoticz scene query failed")
		return model.DeviceStatus{}
	}
	for _, scene := range resp.Result {
		if scene.Idx.String() == strconv.Itoa(idx) {
			return model.DeviceStatus{On: scene.Status == "On", Bri: 254}
		}
	}
	return model.DeviceStatus{}
}

// command issues one outbound request and reports only success or failure.
// Command responses are not parsed; a 200 is considered accepted.
func (c *Client) command(ctx context.Context, params url.Values) bool {
	c.ensureLogin(ctx)
	if err := c.get(ctx, params, nil); err != nil {
		log.Error().Err(err).Str("param", params.Get("param")).Msg("Domoticz command failed")
		return false
	}
	return true
}

func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json.htm?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("domoticz API error: %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func commandParams(param string, idx int) url.Values {
	params := url.Values{}
	params.Set("type", "command")
	params.Set("param", param)
	params.Set("idx", strconv.Itoa(idx))
	return params
}

func switchCmd(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}
