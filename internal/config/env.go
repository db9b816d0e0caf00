package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"aicloudmania.dev/internal/log"
)

// envReader reads typed values from the environment. Unset or empty keys
// keep the current value; unparsable values are logged and ignored.
type envReader struct {
	lookup func(string) (string, bool)
	logger *zerolog.Logger
}

func newEnvReader(lookup func(string) (string, bool)) envReader {
	logger := log.WithComponent("config")
	return envReader{lookup: lookup, logger: &logger}
}

func (e envReader) raw(key string) (string, bool) {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (e envReader) used(key string, sensitive bool) {
	evt := e.logger.Debug().Str("key", key).Str("source", "environment")
	if sensitive {
		evt = evt.Bool("sensitive", true)
	}
	evt.Msg("using environment variable")
}

func (e envReader) invalid(key, value, kind string) {
	e.logger.Warn().
		Str("key", key).
		Str("value", value).
		Msgf("invalid %s in environment variable, keeping current value", kind)
}

func (e envReader) String(key, current string) string {
	v, ok := e.raw(key)
	if !ok {
		return current
	}
	lower := strings.ToLower(key)
	e.used(key, strings.Contains(lower, "password") || strings.Contains(lower, "token"))
	return v
}

func (e envReader) Int(key string, current int) int {
	v, ok := e.raw(key)
	if !ok {
		return current
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		e.invalid(key, v, "integer")
		return current
	}
	e.used(key, false)
	return i
}

func (e envReader) Float(key string, current float64) float64 {
	v, ok := e.raw(key)
	if !ok {
		return current
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.invalid(key, v, "float")
		return current
	}
	e.used(key, false)
	return f
}

func (e envReader) Bool(key string, current bool) bool {
	v, ok := e.raw(key)
	if !ok {
		return current
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		e.used(key, false)
		return true
	case "false", "0", "no":
		e.used(key, false)
		return false
	}
	e.invalid(key, v, "boolean")
	return current
}

func (e envReader) Duration(key string, current time.Duration) time.Duration {
	v, ok := e.raw(key)
	if !ok {
		return current
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.invalid(key, v, "duration")
		return current
	}
	e.used(key, false)
	return d
}

// List splits a comma-separated value, dropping empty items.
func (e envReader) List(key string, current []string) []string {
	v, ok := e.raw(key)
	if !ok {
		return current
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	e.used(key, false)
	return out
}
