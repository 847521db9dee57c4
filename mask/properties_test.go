package mask

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/routewise/navmdp/distance"
	"github.com/routewise/navmdp/navenv"
	"github.com/routewise/navmdp/synth"
)

// TestMaskInvariants checks, over randomly sized grid graphs and
// random step sequences, that the remaining-waypoint count
// never increases within an episode and that after mask
// construction either some bit is set or the current node has no
// neighbors.
func TestMaskInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(2, 5).Draw(t, "rows")
		cols := rapid.IntRange(2, 5).Draw(t, "cols")
		n := rows * cols

		g, err := synth.Grid(rows, cols)
		if err != nil {
			t.Fatal(err)
		}

		start := rapid.IntRange(0, n-1).Draw(t, "start")
		dest := rapid.IntRange(0, n-1).Draw(t, "dest")
		numWaypoints := rapid.IntRange(0, 2).Draw(t, "numWaypoints")
		waypoints := make([]int, numWaypoints)
		for i := range waypoints {
			waypoints[i] = rapid.IntRange(0, n-1).Draw(t, "waypoint")
		}

		oracle, err := distance.NewOracle(g, distance.WithWeightName("length"))
		if err != nil {
			t.Fatal(err)
		}
		inner, err := navenv.New(g, oracle, start, waypoints, dest, navenv.WithWeightName("length"))
		if err != nil {
			t.Fatal(err)
		}
		m, err := New(inner, g, oracle)
		if err != nil {
			t.Fatal(err)
		}

		seed := int64(rapid.IntRange(0, 1<<30).Draw(t, "seed"))
		_, info, err := m.Reset(seed)
		if err != nil {
			t.Fatal(err)
		}
		prevRemaining := len(info.RemainingWaypoints)

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			maskInfo := m.LastMaskInfo()
			neighbors := g.NeighborIDs(info.CurrentNode)
			if len(neighbors) > 0 && !anyTrue(maskInfo.ActionMask) {
				t.Fatalf("step %d: no valid action with %d neighbors present", i, len(neighbors))
			}

			action := rapid.IntRange(0, m.ActionCount()-1).Draw(t, "action")
			_, _, done, truncated, stepInfo, err := m.Step(action)
			if err != nil {
				t.Fatal(err)
			}
			info = stepInfo

			if len(info.RemainingWaypoints) > prevRemaining {
				t.Fatalf("step %d: remaining waypoints grew from %d to %d", i, prevRemaining, len(info.RemainingWaypoints))
			}
			prevRemaining = len(info.RemainingWaypoints)

			if done || truncated {
				break
			}
		}
	})
}

func anyTrue(mask []bool) bool {
	for _, v := range mask {
		if v {
			return true
		}
	}
	return false
}
