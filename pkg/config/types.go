package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/statuskite/statuskite/pkg/alerts"
)

var (
	errMissingListenAddr = errors.New("listen_addr is required")
	errMissingDBPath     = errors.New("db_path is required")
	errMissingJWTSecret  = errors.New("auth.jwt_secret is required")
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// AuthSettings carries the admin credentials and JWT signing secret.
type AuthSettings struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	JWTSecret string `json:"jwt_secret"`
}

// ServerConfig is the top-level server configuration file.
type ServerConfig struct {
	ListenAddr       string               `json:"listen_addr"`        // e.g., :8080
	DBPath           string               `json:"db_path"`            // e.g., /var/lib/statuskite/statuskite.db
	TickInterval     Duration             `json:"tick_interval"`      // scheduler cadence
	Workers          int                  `json:"workers"`            // concurrent probes
	Retention        Duration             `json:"retention"`          // ledger retention
	CleanupInterval  Duration             `json:"cleanup_interval"`   // retention sweep cadence
	MetricsRetention int                  `json:"metrics_retention"`  // points per monitor
	Auth             AuthSettings         `json:"auth"`
	Webhook          alerts.WebhookConfig `json:"webhook"`
}

// Defaults applied by Validate for fields the file omits.
const (
	DefaultTickInterval    = 10 * time.Second
	DefaultRetention       = 30 * 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

func (c *ServerConfig) Validate() error {
	if c.ListenAddr == "" {
		return errMissingListenAddr
	}

	if c.DBPath == "" {
		return errMissingDBPath
	}

	if c.Auth.JWTSecret == "" {
		return errMissingJWTSecret
	}

	if c.TickInterval <= 0 {
		c.TickInterval = Duration(DefaultTickInterval)
	}

	if c.Retention <= 0 {
		c.Retention = Duration(DefaultRetention)
	}

	if c.CleanupInterval <= 0 {
		c.CleanupInterval = Duration(DefaultCleanupInterval)
	}

	return nil
}
