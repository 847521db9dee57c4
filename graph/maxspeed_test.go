package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMaxspeed(t *testing.T) {
	cases := []struct {
		tag  string
		want float64
		ok   bool
	}{
		{"50", 50, true},
		{"50 km/h", 50, true},
		{"50km/h", 50, true},
		{"30 mph", 30 * mphToKPH, true},
		{"50; 30", 50, true},
		{"walk", 0, false},
		{"", 0, false},
		{"none", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			got, ok := ParseMaxspeed(tc.tag)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}
