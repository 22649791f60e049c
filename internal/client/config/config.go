package config

import "time"

// Config holds runtime settings for the expotacna CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, e.g. "http://127.0.0.1:5000".
//   - SocketURL: websocket endpoint of the realtime channel.
//   - PageSize: albums requested per explore page.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabaseDSN: path of the local SQLite session database.
type Config struct {
	BaseURL             string
	SocketURL           string
	PageSize            int
	OnlineCheckInterval time.Duration
	DatabaseDSN         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000"
	c.SocketURL = "ws://127.0.0.1:5000/ws"
	c.PageSize = 20
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseDSN = "expotacna.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
