package model

import (
	"fmt"
	"net"
	"strings"
)

// fallbackMAC keeps the bridge identity stable on hosts where no usable
// hardware address can be found.
var fallbackMAC = net.HardwareAddr{0x00, 0x17, 0x88, 0x10, 0x22, 0x01}

// BridgeIdentity is the fabricated identity presented in SSDP responses and
// the description document. Derived from the host hardware address so the
// assistant treats every launch as the same bridge.
type BridgeIdentity struct {
	SerialNumber string // 16 hex chars: 001788FFFE + last 3 MAC bytes
	UUID         string
}

func NewBridgeIdentity() BridgeIdentity {
	return IdentityFromMAC(hardwareAddr())
}

func IdentityFromMAC(mac net.HardwareAddr) BridgeIdentity {
	if len(mac) < 6 {
		mac = fallbackMAC
	}
	return BridgeIdentity{
		SerialNumber: "001788FFFE" + strings.ToUpper(fmt.Sprintf("%02x%02x%02x", mac[3], mac[4], mac[5])),
		UUID:         fmt.Sprintf("2f402f80-da50-11e1-9b23-%012x", []byte(mac)),
	}
}

func hardwareAddr() net.HardwareAddr {
	ifaces, err := net.Interfaces()
	if err != nil {
		return fallbackMAC
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) < 6 {
			continue
		}
		return iface.HardwareAddr
	}
	return fallbackMAC
}
