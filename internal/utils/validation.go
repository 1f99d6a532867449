package utils

import (
	"net/mail"
	"net/url"
	"strings"
)

func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	a, err := mail.ParseAddress(s)
	if err != nil || a.Address != s {
		return false
	}
	// require a dotted domain; net/mail alone accepts "user@host"
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}

// ValidURL accepts absolute http(s) URLs only.
func ValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
