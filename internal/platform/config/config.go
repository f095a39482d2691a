// Package config reads settings from environment variables under a prefix
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"netmatch/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. CORE_API_ or SERVICE_UPSTREAM_
// the zero value reads unprefixed keys
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the full key and the trimmed value, ok is false when unset or blank
func (c Conf) lookup(k string) (key, val string, ok bool) {
	key = c.key(k)
	val = strings.TrimSpace(os.Getenv(key))
	return key, val, val != ""
}

// may parses key with parse, falling back to def when unset or invalid
func may[T any](c Conf, k string, def T, parse func(string) (T, error)) T {
	key, s, ok := c.lookup(k)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Interface("default", def).Msg("invalid config value, using default")
		return def
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(k, def string) string {
	return may(c, k, def, func(s string) (string, error) { return s, nil })
}

// MayInt returns the value or def
func (c Conf) MayInt(k string, def int) int { return may(c, k, def, strconv.Atoi) }

// MayFloat64 returns the value or def
func (c Conf) MayFloat64(k string, def float64) float64 {
	return may(c, k, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool returns the value or def, accepting what strconv.ParseBool does
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, def, strconv.ParseBool) }

// MayDuration returns the value or def, e.g. 250ms or 2s
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, def, time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(k string, def []string) []string {
	_, s, ok := c.lookup(k)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MustString returns the value and panics when it is unset
func (c Conf) MustString(k string) string {
	key, s, ok := c.lookup(k)
	if !ok {
		logger.Get().Panic().Str("key", key).Msg("missing required env")
	}
	return s
}

// MustURL returns the value as an absolute URL and panics otherwise
func (c Conf) MustURL(k string) *url.URL {
	s := c.MustString(k)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		logger.Get().Panic().Str("key", c.key(k)).Str("value", s).Msg("invalid absolute URL")
	}
	return u
}

// Logging reads logger options, conventionally under LOG_
func (c Conf) Logging() logger.Options {
	return logger.Options{
		Level:       c.MayString("LEVEL", "debug"),
		Format:      c.MayString("FORMAT", "console"),
		Service:     c.MayString("SERVICE", ""),
		WithCaller:  c.MayBool("CALLER", false),
		SampleEvery: c.MayInt("SAMPLE_EVERY", 0),
	}
}
