package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"domoticz-hue-bridge/internal/adapters/input/http"
	"domoticz-hue-bridge/internal/adapters/input/ssdp"
	"domoticz-hue-bridge/internal/adapters/output/domoticz"
	"domoticz-hue-bridge/internal/config"
	"domoticz-hue-bridge/internal/domain/model"
	"domoticz-hue-bridge/internal/domain/registry"
	"domoticz-hue-bridge/internal/domain/service"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogging(cfg.Log)

	reg, err := registry.Build(cfg.Devices, cfg.Scenes)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid device configuration")
	}

	ip := cfg.Bridge.IP
	if ip == "" {
		ip = getLocalIP()
	}
	if ip == "" {
		log.Fatal().Msg("Could not determine local IP; set bridge.ip in the configuration")
	}

	identity := model.NewBridgeIdentity()
	hub := domoticz.NewClient(cfg.Domoticz.URL, cfg.Domoticz.Username, cfg.Domoticz.Password, cfg.Domoticz.Timeout.Duration())
	bridgeService := service.NewBridgeService(reg, hub)

	log.Info().
		Str("config", configPath).
		Str("ip", ip).
		Int("port", cfg.Bridge.Port).
		Str("domoticz", cfg.Domoticz.URL).
		Str("bridgeid", identity.SerialNumber).
		Msg("Starting Hue bridge emulator")
	for _, d := range reg.All() {
		log.Info().
			Str("id", d.ID).
			Str("name", d.Name).
			Int("idx", d.Idx).
			Str("type", string(d.Type)).
			Msg("Registered light")
	}

	ssdpServer := ssdp.NewServer(ip, cfg.Bridge.Port, identity)
	go func() {
		if err := ssdpServer.Start(); err != nil {
			log.Error().Err(err).Msg("SSDP responder failed; discovery is unavailable")
		}
	}()

	httpServer := http.NewServer(bridgeService, identity, ip, cfg.Bridge.Port)
	log.Info().Int("port", cfg.Bridge.Port).Msg("HTTP server listening")
	if err := httpServer.ListenAndServe(fmt.Sprintf(":%d", cfg.Bridge.Port)); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}

func setupLogging(cfg config.LogConfig) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.UseJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: !cfg.Colors,
		})
	}

	switch cfg.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return ""
}
