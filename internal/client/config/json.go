package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/daybook/internal/flagx"
	"github.com/dmitrijs2005/daybook/internal/timex"
)

// JsonConfig is the JSON-file counterpart of Config; durations accept both
// "5s" strings and integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL string         `json:"server_base_url"`
	FlushDelay    timex.Duration `json:"flush_delay"`
	DatabasePath  string         `json:"database_path"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. Invalid files panic; an absent flag is a no-op.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerBaseURL = c.ServerBaseURL
	config.FlushDelay = time.Duration(c.FlushDelay.Duration)
	config.DatabasePath = c.DatabasePath
}
