package ssdp

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"domoticz-hue-bridge/internal/domain/model"
)

func TestWantsResponse(t *testing.T) {
	assert.True(t, wantsResponse("M-SEARCH * HTTP/1.1\r\nST: ssdp:all\r\n"))
	assert.True(t, wantsResponse("M-SEARCH * HTTP/1.1\r\nST: upnp:rootdevice\r\n"))
	assert.True(t, wantsResponse("M-SEARCH * HTTP/1.1\r\nST: urn:schemas-upnp-org:device:basic:1\r\n"))
	// Echo devices mix the case of the search target
	assert.True(t, wantsResponse("M-SEARCH * HTTP/1.1\r\nST: urn:schemas-upnp-org:device:Basic:1\r\n"))

	// No recognized search token: ignored
	assert.False(t, wantsResponse("M-SEARCH * HTTP/1.1\r\nST: urn:dial-multiscreen-org:service:dial:1\r\n"))
	// Not a search at all
	assert.False(t, wantsResponse("NOTIFY * HTTP/1.1\r\nNT: ssdp:all\r\n"))
	assert.False(t, wantsResponse("garbage"))
}

func TestResponseFormat(t *testing.T) {
	identity := model.IdentityFromMAC(net.HardwareAddr{0x00, 0x17, 0x88, 0x10, 0x22, 0x01})
	s := NewServer("192.168.1.5", 80, identity)

	resp := s.response()
	assert.Contains(t, resp, "HTTP/1.1 200 OK\r\n")
	assert.Contains(t, resp, "CACHE-CONTROL: max-age=100\r\n")
	assert.Contains(t, resp, "LOCATION: http://192.168.1.5:80/description.xml\r\n")
	assert.Contains(t, resp, "SERVER: Linux/3.14.0 UPnP/1.0 IpBridge/1.24.0\r\n")
	assert.Contains(t, resp, "hue-bridgeid: 001788FFFE102201\r\n")
	assert.Contains(t, resp, "ST: urn:schemas-upnp-org:device:basic:1\r\n")
	assert.Contains(t, resp, "USN: uuid:2f402f80-da50-11e1-9b23-001788102201::urn:schemas-upnp-org:device:basic:1\r\n")
}
