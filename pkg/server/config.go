package server

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config controls the browser shell. All fields have working defaults so the
// server runs without a config file.
type Config struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
	DefaultFluid    string
	ChartSamples    int
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8790",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		DefaultFluid:    "R134a",
		ChartSamples:    120,
	}
}

// LoadConfig reads an ini file and overlays it on the defaults. An empty path
// returns the defaults; a missing or unreadable file returns the defaults
// together with the error so the caller can log and continue.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("server: load config %s: %w", path, err)
	}
	sec := file.Section("server")
	cfg.Addr = sec.Key("Addr").MustString(cfg.Addr)
	cfg.ReadBufferSize = sec.Key("ReadBufferSize").MustInt(cfg.ReadBufferSize)
	cfg.WriteBufferSize = sec.Key("WriteBufferSize").MustInt(cfg.WriteBufferSize)
	cfg.DefaultFluid = sec.Key("DefaultFluid").MustString(cfg.DefaultFluid)
	cfg.ChartSamples = sec.Key("ChartSamples").MustInt(cfg.ChartSamples)
	return cfg, nil
}
