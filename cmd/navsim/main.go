// Command navsim drives one episode of the waypoint navigation
// environment end to end — synthetic graph, embeddings, distance
// oracle, masked environment, VC2-normalized rewards — printing the
// step trace. It is a runnable demonstration of how the core packages
// wire together.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/routewise/navmdp/config"
	"github.com/routewise/navmdp/distance"
	"github.com/routewise/navmdp/geoexport"
	"github.com/routewise/navmdp/graph"
	"github.com/routewise/navmdp/mask"
	"github.com/routewise/navmdp/navenv"
	"github.com/routewise/navmdp/synth"
	"github.com/routewise/navmdp/vc2"
)

func main() {
	var (
		rows       = flag.Int("rows", 6, "synthetic grid graph rows")
		cols       = flag.Int("cols", 6, "synthetic grid graph cols")
		seed       = flag.Int64("seed", 1, "RNG seed for graph generation and episode reset")
		configPath = flag.String("config", "", "optional reward/env YAML config path")
		geojsonOut = flag.String("geojson-out", "", "optional path to write the episode's route as GeoJSON")
	)
	flag.Parse()

	if err := run(*rows, *cols, *seed, *configPath, *geojsonOut); err != nil {
		log.Fatal(err)
	}
}

func run(rows, cols int, seed int64, configPath, geojsonOut string) error {
	g, err := synth.Grid(rows, cols, synth.WithSeed(seed), synth.WithUniformLength(50, 300))
	if err != nil {
		return fmt.Errorf("navsim: build graph: %w", err)
	}

	envCfg := config.DefaultEnv()
	rewardCfg := config.DefaultReward()
	if configPath != "" {
		loadedEnv, loadedReward, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("navsim: load config: %w", err)
		}
		envCfg, rewardCfg = *loadedEnv, *loadedReward
	}

	oracle, err := distance.NewOracle(g, distance.WithWeightName(envCfg.WeightName))
	if err != nil {
		return fmt.Errorf("navsim: build oracle: %w", err)
	}

	n := g.NumNodes()
	start, waypoints, destination := pickScenario(n)

	env, err := navenv.New(g, oracle, start, waypoints, destination,
		navenv.WithWeightName(envCfg.WeightName),
		navenv.WithMaxSteps(envCfg.MaxSteps.Resolve(n)),
		navenv.WithMaxWaitSteps(envCfg.MaxWaitSteps.Resolve(n)),
		navenv.WithMoveCostCoef(rewardCfg.MoveCostCoef),
		navenv.WithProgressCoef(rewardCfg.ProgressCoef),
		navenv.WithWaypointBonus(rewardCfg.WaypointBonus),
		navenv.WithDestinationBonus(rewardCfg.DestinationBonus),
		navenv.WithNoProgressPenalty(rewardCfg.NoProgressPenalty),
	)
	if err != nil {
		return fmt.Errorf("navsim: build env: %w", err)
	}

	masked, err := mask.New(env, g, oracle, mask.WithAntiLoopPenalty(rewardCfg.AntiLoopPenalty))
	if err != nil {
		return fmt.Errorf("navsim: build masked env: %w", err)
	}

	normalizer := vc2.New(
		vc2.WithGamma(rewardCfg.NormGamma),
		vc2.WithClipRange(rewardCfg.NormClip),
		vc2.WithScale(rewardCfg.NormScale),
	)

	_, info, err := masked.Reset(seed)
	if err != nil {
		return fmt.Errorf("navsim: reset: %w", err)
	}
	fmt.Printf("start=%d waypoints=%v destination=%d optimal_steps=%d\n",
		start, info.RemainingWaypoints, destination, info.OptimalStepsToDestination)

	maxSteps := envCfg.MaxSteps.Resolve(n)
	for step := 0; step < maxSteps; step++ {
		action := greedyAction(g, oracle, masked.LastMaskInfo(), info)
		_, reward, done, truncated, stepInfo, err := masked.Step(action)
		if err != nil {
			return fmt.Errorf("navsim: step %d: %w", step, err)
		}
		info = stepInfo

		normReward := normalizer.Step(reward, done || truncated)
		fmt.Printf("step=%d node=%d reward=%.3f norm_reward=%.3f remaining=%v\n",
			step, info.CurrentNode, reward, normReward, info.RemainingWaypoints)

		if done || truncated {
			fmt.Printf("terminated: %s after %d steps, total_travel_cost=%.1f\n",
				info.TerminatedReason, step+1, info.TotalTravelTime)
			break
		}
	}

	if geojsonOut != "" {
		feature, err := geoexport.Path(g, info.Path, info.TotalTravelTime)
		if err != nil {
			return fmt.Errorf("navsim: export route: %w", err)
		}
		data, err := feature.MarshalJSON()
		if err != nil {
			return fmt.Errorf("navsim: marshal route: %w", err)
		}
		if err := os.WriteFile(geojsonOut, data, 0o644); err != nil {
			return fmt.Errorf("navsim: write route: %w", err)
		}
		fmt.Printf("wrote route geometry to %s\n", geojsonOut)
	}

	return nil
}

// pickScenario chooses a start, a one-node waypoint set, and a
// destination spread across the graph, with the waypoint near the
// middle of the node-ID range.
func pickScenario(n int) (start int, waypoints []int, destination int) {
	if n < 4 {
		return 0, nil, n - 1
	}
	start = 0
	waypoints = []int{int(float64(n-1) * 0.5)}
	destination = n - 1
	return start, waypoints, destination
}

// greedyAction picks the legal neighbor closest to the current target
// (next waypoint, or destination once none remain), a simple
// distance-descent heuristic standing in for a trained policy.
func greedyAction(g *graph.Graph, oracle *distance.Oracle, maskInfo mask.Info, info navenv.Info) int {
	target := info.Destination
	if len(info.RemainingWaypoints) > 0 {
		target = info.RemainingWaypoints[0]
	}

	neighbors := g.NeighborIDs(info.CurrentNode)
	best := -1
	bestDist := 0.0
	for i, nb := range neighbors {
		if i < len(maskInfo.ActionMask) && !maskInfo.ActionMask[i] {
			continue
		}
		d, err := oracle.Distance(nb, target)
		if err != nil {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
