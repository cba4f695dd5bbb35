package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/amimof/huego"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"domoticz-hue-bridge/internal/domain/model"
	"domoticz-hue-bridge/internal/domain/translator"
	"domoticz-hue-bridge/internal/ports"
)

// pairingUsername is handed out to any caller; the real bridge's local
// pairing model is unauthenticated by design.
const pairingUsername = "alexa-hue-emulator"

type Server struct {
	bridge   ports.BridgePort
	identity model.BridgeIdentity
	ip       string
	port     int
}

func NewServer(bridge ports.BridgePort, identity model.BridgeIdentity, ip string, port int) *Server {
	return &Server{
		bridge:   bridge,
		identity: identity,
		ip:       ip,
		port:     port,
	}
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT"},
	}))

	r.Get("/description.xml", s.handleDescription)
	r.Post("/api", s.handleRegister)
	r.Post("/api/*", s.handleRegister)
	r.Get("/api/{user}", s.handleFullState)
	r.Get("/api/{user}/lights", s.handleLights)
	r.Get("/api/{user}/lights/{id}", s.handleLight)
	r.Put("/api/{user}/lights/{id}/state", s.handleSetState)
	return r
}

func (s *Server) handleDescription(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8" ?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
<specVersion><major>1</major><minor>0</minor></specVersion>
<URLBase>http://%s:%d/</URLBase>
<device>
<deviceType>urn:schemas-upnp-org:device:Basic:1</deviceType>
<friendlyName>Philips Hue (%s)</friendlyName>
<manufacturer>Royal Philips Electronics</manufacturer>
<manufacturerURL>http://www.philips.com</manufacturerURL>
<modelDescription>Philips hue Personal Wireless Lighting</modelDescription>
<modelName>Philips hue bridge 2015</modelName>
<modelNumber>BSB002</modelNumber>
<modelURL>http://www.meethue.com</modelURL>
<serialNumber>%s</serialNumber>
<UDN>uuid:%s</UDN>
</device>
</root>`, s.ip, s.port, s.ip, s.identity.SerialNumber, s.identity.UUID)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	// Pairing handshake: the body is ignored and any caller is accepted.
	s.sendJSON(w, []model.CommandResult{{
		Success: map[string]interface{}{"username": pairingUsername},
	}})
}

func (s *Server) handleFullState(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, map[string]interface{}{"lights": s.lightsMap(r)})
}

func (s *Server) handleLights(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, s.lightsMap(r))
}

func (s *Server) handleLight(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.bridge.Light(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		s.sendJSON(w, map[string]interface{}{})
		return
	}
	s.sendJSON(w, hueLight(snapshot))
}

func (s *Server) handleSetState(w http.ResponseWriter, r *http.Request) {
	// A malformed body is treated as an empty command set, not an error.
	var update model.StateUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		update = model.StateUpdate{}
	}

	id := chi.URLParam(r, "id")
	log.Info().Str("light", id).Interface("update", update).Msg("PUT light state")
	s.sendJSON(w, s.bridge.SetLightState(r.Context(), id, update))
}

func (s *Server) lightsMap(r *http.Request) map[string]*huego.Light {
	lights := make(map[string]*huego.Light)
	for _, snapshot := range s.bridge.Lights(r.Context()) {
		lights[snapshot.Device.ID] = hueLight(snapshot)
	}
	return lights
}

func (s *Server) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// hueLight renders one registry entry plus its live status as a Hue light
// object.
func hueLight(snapshot model.LightSnapshot) *huego.Light {
	device := snapshot.Device
	status := snapshot.Status
	profile := translator.ProfileFor(device.Type)

	return &huego.Light{
		State: &huego.State{
			On:        status.On,
			Bri:       uint8(status.Bri),
			Hue:       uint16(status.Hue),
			Sat:       uint8(status.Sat),
			Effect:    "none",
			Xy:        []float32{0, 0},
			Ct:        500,
			Alert:     "none",
			ColorMode: profile.ColorMode,
			Reachable: true,
		},
		Type:             profile.Type,
		Name:             device.Name,
		ModelID:          profile.ModelID,
		ManufacturerName: profile.ManufacturerName,
		ProductName:      profile.ProductName,
		UniqueID:         uniqueID(device.ID),
		SwVersion:        "1.0",
	}
}

func uniqueID(lightID string) string {
	if len(lightID) < 2 {
		lightID = "0" + lightID
	}
	return fmt.Sprintf("00:17:88:01:00:%s:00:00-0b", lightID)
}
