// Package device derives a short human-readable device label from a
// request's User-Agent string for the access log.
package device

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown is the label for user agents no rule matches.
const Unknown = "Unknown Device"

// Classify maps a raw User-Agent string to a coarse device label. It is a
// pure, total function: best-effort substring matching, always returns a
// non-empty label, never fails.
//
// Order matters: iPhone/iPad agents also contain "Mac OS X", and Android
// agents contain "Linux", so the mobile checks run first.
func Classify(userAgent string) string {
	ua := strings.TrimSpace(userAgent)
	if ua == "" {
		return Unknown
	}

	switch {
	case strings.Contains(ua, "iPhone"):
		return classifyIPhone(ua)
	case strings.Contains(ua, "iPad"):
		return "iPad"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "Macintosh"), strings.Contains(ua, "Mac OS X"):
		return "Mac"
	case strings.Contains(ua, "Windows"):
		return "Windows PC"
	case strings.Contains(ua, "Linux"), strings.Contains(ua, "X11"):
		return "Linux PC"
	default:
		return Unknown
	}
}

// classifyIPhone refines the label with the iOS major-version range when the
// agent carries one, e.g. "... iPhone OS 17_5 like Mac OS X ...".
func classifyIPhone(ua string) string {
	major := iosMajorVersion(ua)
	switch {
	case major >= 17:
		return "iPhone (iOS 17+)"
	case major >= 14:
		return "iPhone (iOS 14-16)"
	case major > 0:
		return fmt.Sprintf("iPhone (iOS %d)", major)
	default:
		return "iPhone"
	}
}

func iosMajorVersion(ua string) int {
	const marker = "OS "
	idx := strings.Index(ua, marker)
	if idx < 0 {
		return 0
	}

	rest := ua[idx+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	major, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}

	return major
}
