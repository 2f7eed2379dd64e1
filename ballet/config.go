package ballet

import (
	"os"
	"strconv"
)

// Radius clamp defaults in millimeters. A living-room-safe envelope;
// override with MIN_DANCE_RADIUS_MM / MAX_DANCE_RADIUS_MM.
const (
	DefaultMinRadiusMM = 200
	DefaultMaxRadiusMM = 1200
)

// FallbackCenter is the hardcoded safe default used when no explicit
// center is given, none is configured, and the device position is
// unknown. Roughly the middle of a typical Roborock map.
var FallbackCenter = Point{X: 25000, Y: 25000}

// Config carries the env-sourced defaults for a dance. It is assembled
// once (FromEnv) and passed explicitly into the Choreographer rather
// than read from ambient globals.
type Config struct {
	Email    string
	Password string

	// DefaultCenter is the configured dance center, nil when unset.
	DefaultCenter *Point

	MinRadiusMM float64
	MaxRadiusMM float64
}

// FromEnv builds a Config from the process environment. Call after
// godotenv has loaded .env.
func FromEnv() Config {
	cfg := Config{
		Email:       os.Getenv("ROBO_EMAIL"),
		Password:    os.Getenv("ROBO_PASSWORD"),
		MinRadiusMM: envFloat("MIN_DANCE_RADIUS_MM", DefaultMinRadiusMM),
		MaxRadiusMM: envFloat("MAX_DANCE_RADIUS_MM", DefaultMaxRadiusMM),
	}
	x, okX := envFloatOK("DEFAULT_CENTER_X")
	y, okY := envFloatOK("DEFAULT_CENTER_Y")
	if okX && okY {
		cfg.DefaultCenter = &Point{X: x, Y: y}
	}
	return cfg
}

// ClampRadius bounds a requested pattern size to the safe envelope.
// Returns the clamped value and whether clamping changed it; the
// caller reports the change as a notice, not an error.
func (c Config) ClampRadius(mm float64) (float64, bool) {
	if mm < c.MinRadiusMM {
		return c.MinRadiusMM, true
	}
	if mm > c.MaxRadiusMM {
		return c.MaxRadiusMM, true
	}
	return mm, false
}

func envFloat(key string, def float64) float64 {
	if v, ok := envFloatOK(key); ok {
		return v
	}
	return def
}

func envFloatOK(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
