package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// hostPattern accepts dotted domain names with a letter-only TLD of at least
// two characters, plain IPv4 addresses, or localhost. Bare words such as
// "googlecom" do not pass, matching standard URL-syntax validation.
var hostPattern = regexp.MustCompile(
	`^(localhost|(\d{1,3}\.){3}\d{1,3}|([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,})$`)

// NormalizeURL prefixes "http://" when the value carries no http(s) scheme.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

// IsValidHTTPURL reports whether raw parses as a well-formed absolute
// http/https URL. Syntax only, no reachability check.
func IsValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	return hostPattern.MatchString(host)
}
