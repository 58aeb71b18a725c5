package flex

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColorRe      = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hexColorAlphaRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)
)

// IsHexColor reports whether v is a #RRGGBB color.
func IsHexColor(v string) bool {
	return hexColorRe.MatchString(v)
}

// IsHexColorAlpha reports whether v is a #RRGGBB or #RRGGBBAA color.
// Overlay backgrounds use the 8-digit form for transparency.
func IsHexColorAlpha(v string) bool {
	return hexColorAlphaRe.MatchString(v)
}

// AutoTextColor picks a readable text color for the given background
// using relative luminance.
func AutoTextColor(bgHex string) string {
	hex := strings.TrimPrefix(bgHex, "#")
	if len(hex) < 6 {
		return "#111111"
	}
	r := hexChannel(hex[0:2])
	g := hexChannel(hex[2:4])
	b := hexChannel(hex[4:6])
	lum := 0.2126*r + 0.7152*g + 0.0722*b
	if lum > 0.6 {
		return "#111111"
	}
	return "#FFFFFF"
}

func hexChannel(s string) float64 {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(n) / 255
}

// SafeURIScheme reports whether u uses an allow-listed action scheme:
// https, http, tel, or the platform-internal line/liff schemes.
// Everything else (javascript:, data:, scheme-less) is rejected.
func SafeURIScheme(u string) bool {
	lower := strings.ToLower(u)
	for _, prefix := range []string{"https://", "http://", "line://", "liff://", "tel:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// safeHTTPSURL returns url if it is an absolute HTTPS URL, else "".
func safeHTTPSURL(url string) string {
	if strings.HasPrefix(url, "https://") {
		return url
	}
	return ""
}
