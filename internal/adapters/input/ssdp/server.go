// Package ssdp answers the assistant's discovery broadcasts with the
// location of the bridge's description document and its fabricated identity.
package ssdp

import (
	"fmt"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"domoticz-hue-bridge/internal/domain/model"
)

const (
	multicastAddr = "239.255.255.250:1900"
	readTimeout   = time.Second
)

type Server struct {
	ip       string
	port     int
	identity model.BridgeIdentity
	running  atomic.Bool
}

func NewServer(ip string, port int, identity model.BridgeIdentity) *Server {
	return &Server{ip: ip, port: port, identity: identity}
}

// Start binds the multicast group and serves discovery queries until Stop is
// called. A bind failure is fatal to this listener only; the caller keeps the
// HTTP layer running regardless.
func (s *Server) Start() error {
	addr, err := net.ResolveUDPAddr("udp4", multicastAddr)
	if err != nil {
		return err
	}
	conn, err := net.ListenMulticastUDP("udp4", nil, addr)
	if err != nil {
		return fmt.Errorf("cannot bind SSDP port: %w", err)
	}
	defer conn.Close()

	s.running.Store(true)
	log.Info().Str("group", multicastAddr).Msg("SSDP responder started")

	buf := make([]byte, 1024)
	for s.running.Load() {
		// Short read timeout so Stop is observed promptly.
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		n, src, err := conn.ReadFromUDP(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			log.Error().Err(err).Msg("SSDP read error")
			continue
		}

		if wantsResponse(string(buf[:n])) {
			log.Debug().Str("from", src.String()).Msg("SSDP M-SEARCH")
			s.respond(src)
		}
	}
	return nil
}

// Stop ends the serve loop on its next wake, bounded by the read timeout.
func (s *Server) Stop() {
	s.running.Store(false)
}

// wantsResponse reports whether a datagram is a discovery search this bridge
// should answer. Anything else is ignored.
func wantsResponse(msg string) bool {
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "m-search") {
		return false
	}
	return strings.Contains(lower, "ssdp:all") ||
		strings.Contains(lower, "device:basic") ||
		strings.Contains(lower, "upnp:rootdevice")
}

func (s *Server) respond(dest *net.UDPAddr) {
	conn, err := net.DialUDP("udp4", nil, dest)
	if err != nil {
		log.Error().Err(err).Msg("SSDP reply dial failed")
		return
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(s.response())); err != nil {
		log.Error().Err(err).Msg("SSDP reply failed")
		return
	}
	log.Debug().Str("to", dest.String()).Msg("SSDP response sent")
}

func (s *Server) response() string {
	return fmt.Sprintf("HTTP/1.1 200 OK\r\n"+
		"HOST: %s\r\n"+
		"CACHE-CONTROL: max-age=100\r\n"+
		"EXT:\r\n"+
		"LOCATION: http://%s:%d/description.xml\r\n"+
		"SERVER: Linux/3.14.0 UPnP/1.0 IpBridge/1.24.0\r\n"+
		"hue-bridgeid: %s\r\n"+
		"ST: urn:schemas-upnp-org:device:basic:1\r\n"+
		"USN: uuid:%s::urn:schemas-upnp-org:device:basic:1\r\n\r\n",
		multicastAddr, s.ip, s.port, s.identity.SerialNumber, s.identity.UUID)
}
