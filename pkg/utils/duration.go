package utils

import (
	"regexp"
	"strconv"
)

// isoDurationRe captures the hour and minute components of a restricted
// ISO-8601 duration (PT[<h>H][<m>M]). Day and larger components are not
// supported; the upstream never emits them for single itineraries.
var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseISODuration converts an ISO-8601 duration string to whole minutes.
// Malformed or missing input degrades to 0 rather than failing; an absent
// component counts as zero.
func ParseISODuration(value string) int {
	match := isoDurationRe.FindStringSubmatch(value)
	if match == nil {
		return 0
	}

	hours := atoiOrZero(match[1])
	minutes := atoiOrZero(match[2])

	return hours*60 + minutes
}

func atoiOrZero(value string) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
