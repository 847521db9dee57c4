package graph

import (
	"strconv"
	"strings"
)

const mphToKPH = 1.609344

// ParseMaxspeed extracts a speed in km/h from a raw maxspeed tag.
// Source tags arrive as plain numbers ("50"), suffixed strings
// ("50 km/h", "30 mph"), or multi-valued variants ("50; 30"); the
// first numeric token wins, and an mph suffix converts to km/h.
// Unparseable tags report ok=false, leaving the edge's Maxspeed unset
// rather than defaulted.
func ParseMaxspeed(tag string) (kph float64, ok bool) {
	s := strings.ToLower(strings.TrimSpace(tag))
	if s == "" {
		return 0, false
	}

	mph := strings.Contains(s, "mph")
	s = strings.ReplaceAll(s, "km/h", " ")
	s = strings.ReplaceAll(s, "kmh", " ")
	s = strings.ReplaceAll(s, "kph", " ")
	s = strings.ReplaceAll(s, "mph", " ")

	for _, token := range strings.FieldsFunc(s, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	}) {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || v <= 0 {
			continue
		}
		if mph {
			v *= mphToKPH
		}
		return v, true
	}
	return 0, false
}
