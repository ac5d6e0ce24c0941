package entity

import (
	"regexp"
	"strings"
)

type Status string

const (
	StatusActive  Status = "Active"
	StatusExit    Status = "Exit"
	StatusUnknown Status = "Unknown"
)

// Firm websites label lifecycle in wildly inconsistent ways
// ("current", "Former", "past | acquired by Thoma Bravo", ...).
// Ordered so that ambiguous raw values resolve the same way every run.
var statusAliases = []struct {
	alias      string
	normalized Status
}{
	{"current", StatusActive},
	{"active", StatusActive},
	{"former", StatusExit},
	{"past", StatusExit},
	{"exit", StatusExit},
	{"unknown", StatusUnknown},
}

var acquiredByRegex = regexp.MustCompile(`acquired by (.+)`)

// NormalizeStatus maps a raw scraped status onto the canonical two-valued
// lifecycle. When the raw value embeds acquisition info, the acquirer name
// is extracted and returned alongside StatusExit.
func NormalizeStatus(raw string) (Status, string) {
	if strings.TrimSpace(raw) == "" {
		return StatusUnknown, ""
	}

	lower := strings.ToLower(strings.TrimSpace(raw))

	if strings.Contains(lower, "acquired") || strings.Contains(lower, "acquisition") {
		if m := acquiredByRegex.FindStringSubmatch(lower); m != nil {
			return StatusExit, strings.TrimSpace(m[1])
		}
		return StatusExit, "acquired"
	}

	for _, a := range statusAliases {
		if strings.Contains(lower, a.alias) {
			return a.normalized, ""
		}
	}
	return StatusUnknown, ""
}
