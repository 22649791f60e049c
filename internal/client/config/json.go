package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/expotacna/internal/flagx"
	"github.com/dmitrijs2005/expotacna/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds.
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	SocketURL           string         `json:"socket_url"`
	PageSize            int            `json:"page_size"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DatabaseDSN         string         `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag; without it nothing is loaded.
// Zero-valued JSON fields leave the current Config value alone, so a partial
// file only overrides what it names. Read or unmarshal errors panic; the
// CLI treats a broken explicit config file as fatal.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SocketURL != "" {
		cfg.SocketURL = jc.SocketURL
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
