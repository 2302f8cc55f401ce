package config

import (
	"encoding/json"
	"os"

	"github.com/astrogid/astrogid/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent from the file" from a zero value, so a partial JSON file
// only overrides what it actually names.
type JsonConfig struct {
	DatabasePath      *string `json:"database_path"`
	SiteName          *string `json:"site_name"`
	ContactEmail      *string `json:"contact_email"`
	FeedbackRetention *int    `json:"feedback_retention"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseEnv -> parseFlags, where
// later stages override earlier ones.
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

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SiteName != nil {
		cfg.SiteName = *jc.SiteName
	}
	if jc.ContactEmail != nil {
		cfg.ContactEmail = *jc.ContactEmail
	}
	if jc.FeedbackRetention != nil {
		cfg.FeedbackRetention = *jc.FeedbackRetention
	}
}
