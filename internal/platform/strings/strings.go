// Package strings holds the small string helpers modules and DTOs share
package strings

import std "strings"

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix turns a mount path into "/seg[/seg...]" without a trailing slash
// panics on blank input and on bare "/"
func MustPrefix(s string) string {
	p := "/" + std.Trim(std.TrimSpace(s), "/ ")
	if p == "/" {
		panic("root path is required")
	}
	return p
}

// OrDefault trims s and falls back to def when nothing is left
func OrDefault(s, def string) string {
	s = std.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// Deref reads an optional query value, nil reads as ""
func Deref(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
