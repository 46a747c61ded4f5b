package app

import (
	"net/url"
	"strings"
)

// originAllowed builds the CORS predicate for production: the configured
// site origin is always allowed, plus any host matching an allowed_origins
// entry ("share.example.com" exact, or "*.example.com" covering the bare
// domain and its subdomains).
func originAllowed(siteURL string, patterns []string) func(string) bool {
	siteHost := originHost(siteURL)
	return func(origin string) bool {
		host := originHost(origin)
		if host == "" {
			return false
		}
		if host == siteHost {
			return true
		}
		for _, pattern := range patterns {
			if matchHostPattern(pattern, host) {
				return true
			}
		}
		return false
	}
}

func originHost(origin string) string {
	origin = strings.TrimSpace(origin)
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

func matchHostPattern(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if after, ok := strings.CutPrefix(pattern, "*."); ok {
		return host == after || strings.HasSuffix(host, "."+after)
	}
	return false
}
