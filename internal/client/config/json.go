package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/versioncheck/internal/flagx"
	"github.com/dmitrijs2005/versioncheck/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they can be given as "15s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL         string         `json:"api_base_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	AccessTokenMaxAge  timex.Duration `json:"access_token_max_age"`
	RefreshTokenMaxAge timex.Duration `json:"refresh_token_max_age"`
	UserEmailMaxAge    timex.Duration `json:"user_email_max_age"`
	DatabasePath       string         `json:"database_path"`
	LogLevel           string         `json:"log_level"`
	LogFormat          string         `json:"log_format"`
	SentryDSN          string         `json:"sentry_dsn"`
	Environment        string         `json:"environment"`
}

// parseJSON overlays cfg with the fields present in the JSON file named by
// -c or -config. Without either flag nothing changes.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.SentryDSN, jc.SentryDSN)
	setString(&cfg.Environment, jc.Environment)

	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setDuration(&cfg.AccessTokenMaxAge, jc.AccessTokenMaxAge)
	setDuration(&cfg.RefreshTokenMaxAge, jc.RefreshTokenMaxAge)
	setDuration(&cfg.UserEmailMaxAge, jc.UserEmailMaxAge)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
