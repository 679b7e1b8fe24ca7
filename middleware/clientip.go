package middleware

import (
	"net"
	"strings"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// clientIP returns the originating address of req: the leftmost
// X-Forwarded-For entry, then X-Real-IP, then the host part of RemoteAddr.
// Header values that do not parse as an IP, or parse as the unspecified
// address, are ignored. Returned addresses are normalized.
func clientIP(req *handler.Request) string {
	if req == nil {
		return ""
	}

	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip, ok := parseClientIP(first); ok {
			return ip
		}
	}

	if ip, ok := parseClientIP(req.Header.Get("X-Real-IP")); ok {
		return ip
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}
	if ip := net.ParseIP(strings.TrimSpace(host)); ip != nil {
		return ip.String()
	}
	return host
}

func parseClientIP(s string) (string, bool) {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return "", false
	}
	return ip.String(), true
}
