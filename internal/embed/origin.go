package embed

import (
	"net"
	"net/url"
	"strings"
)

// ResolveOrigin returns the origin (scheme://host[:port]) of an absolute
// http or https URL. Default and empty ports are dropped. Anything that does
// not parse to such a URL yields fallback.
func ResolveOrigin(scriptSrc, fallback string) string {
	if scriptSrc == "" {
		return fallback
	}
	u, err := url.Parse(scriptSrc)
	if err != nil || u.Host == "" {
		return fallback
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fallback
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fallback
	}

	port := u.Port()
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	if port != "" {
		return scheme + "://" + net.JoinHostPort(host, port)
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return scheme + "://" + host
}
