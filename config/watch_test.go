package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchNotifiesOnRewrite(t *testing.T) {
	path := writeConfig(t, `
reward:
  waypoint_bonus: 50
`)

	changed := make(chan Reward, 4)
	w, err := Watch(path, func(r Reward) { changed <- r })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`
reward:
  waypoint_bonus: 90
`), 0o644))

	select {
	case r := <-changed:
		assert.Equal(t, 90.0, r.WaypointBonus)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config change notification")
	}
}
