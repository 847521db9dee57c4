package navenv

import (
	"fmt"
	"sort"

	"github.com/routewise/navmdp/distance"
	"github.com/routewise/navmdp/embed"
	"github.com/routewise/navmdp/graph"
)

// Env is the bare waypoint navigation environment,
// implementing StepEnv directly. An Env is not safe for concurrent
// use; package envpool gives each worker its own instance.
type Env struct {
	g          *graph.Graph
	oracle     *distance.Oracle
	embeddings [][]float64
	maxActions int

	startNode   int
	waypoints   []int
	destination int

	cfg envConfig

	// episode state, set by Reset and mutated by Step.
	started                   bool
	currentNode               int
	remainingWaypoints        []int
	pathHistory               []int
	stepsTaken                int
	totalTravelTime           float64
	optimalStepsToWaypoints   map[int]int
	optimalStepsToDestination int
	maxDistance               float64
}

// New builds an Env over g, with the given start node, ordered
// waypoint list, and destination. It precomputes node embeddings via
// package embed and derives its step budget from g's node count unless
// overridden by WithMaxSteps.
func New(g *graph.Graph, oracle *distance.Oracle, startNode int, waypoints []int, destination int, opts ...Option) (*Env, error) {
	n := g.NumNodes()
	for _, id := range append([]int{startNode, destination}, waypoints...) {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("navenv: New: %w", ErrNodeOutOfRange)
		}
	}

	cfg := defaultEnvConfig(n)
	for _, opt := range opts {
		opt(&cfg)
	}

	embeddings := embed.BuildNodeEmbeddings(g)
	maxActions := g.MaxOutDegree()
	if maxActions < 1 {
		maxActions = 1
	}

	e := &Env{
		g:           g,
		oracle:      oracle,
		embeddings:  embeddings,
		maxActions:  maxActions,
		startNode:   startNode,
		waypoints:   append([]int(nil), waypoints...),
		destination: destination,
		cfg:         cfg,
		maxDistance: oracle.MaxFiniteDistance(),
	}
	return e, nil
}

// ObservationShape returns the flattened observation width:
// 3*embeddingDim + 7 + 2*maxActions.
func (e *Env) ObservationShape() int {
	dim := embed.Dim
	return 3*dim + 7 + 2*e.maxActions
}

// ActionCount returns the fixed action-space width, the graph's
// maximum out-degree.
func (e *Env) ActionCount() int {
	return e.maxActions
}

// Reset starts a new episode, optionally overriding the start node,
// waypoint set, or destination via ResetOption. The seed parameter is
// accepted for StepEnv-interface parity with stochastic environments;
// Env's own transition and reward rules are deterministic, so it is
// otherwise unused.
func (e *Env) Reset(seed int64, opts ...ResetOption) (Observation, Info, error) {
	_ = seed

	rc := resetConfig{}
	for _, opt := range opts {
		opt(&rc)
	}

	start := e.startNode
	if rc.start != nil {
		start = *rc.start
	}
	waypoints := e.waypoints
	if rc.waypoints != nil {
		waypoints = rc.waypoints
	}
	destination := e.destination
	if rc.destination != nil {
		destination = *rc.destination
	}

	n := e.g.NumNodes()
	for _, id := range append([]int{start, destination}, waypoints...) {
		if id < 0 || id >= n {
			return Observation{}, Info{}, fmt.Errorf("navenv: Reset: %w", ErrNodeOutOfRange)
		}
	}

	e.startNode = start
	e.waypoints = append([]int(nil), waypoints...)
	e.destination = destination

	e.currentNode = start
	sorted := append([]int(nil), e.waypoints...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := e.oracle.Distance(e.currentNode, sorted[i])
		dj, _ := e.oracle.Distance(e.currentNode, sorted[j])
		return di < dj
	})
	e.remainingWaypoints = sorted
	e.pathHistory = []int{e.currentNode}
	e.stepsTaken = 0
	e.totalTravelTime = 0
	e.started = true

	e.calculateOptimalSteps()

	obs := e.observation()
	info := Info{
		Path:                      append([]int(nil), e.pathHistory...),
		RemainingWaypoints:        append([]int(nil), e.remainingWaypoints...),
		CurrentNode:               e.currentNode,
		Destination:               e.destination,
		OptimalStepsToDestination: e.optimalStepsToDestination,
	}
	return obs, info, nil
}

// Step advances the episode by one neighbor-index action, as listed
// by graph.Graph.NeighborIDs(currentNode) (action indexing per the
// canonical neighbor order the whole module shares).
func (e *Env) Step(action int) (Observation, float64, bool, bool, Info, error) {
	if !e.started {
		return Observation{}, 0, false, false, Info{}, ErrNotReset
	}
	e.stepsTaken++

	neighbors := e.g.NeighborIDs(e.currentNode)
	if len(neighbors) == 0 {
		info := Info{
			Path:               append([]int(nil), e.pathHistory...),
			RemainingWaypoints: append([]int(nil), e.remainingWaypoints...),
			CurrentNode:        e.currentNode,
			Destination:        e.destination,
			TotalTravelTime:    e.totalTravelTime,
			TerminatedReason:   "dead_end",
		}
		return e.observation(), 0, false, true, info, nil
	}
	if action < 0 || action >= len(neighbors) {
		return Observation{}, 0, false, false, Info{}, fmt.Errorf("navenv: Step: %w", ErrActionOutOfRange)
	}

	nextNode := neighbors[action]
	travelTime := e.travelCost(e.currentNode, nextNode)
	progress, err := e.progressTo(nextNode)
	if err != nil {
		return Observation{}, 0, false, false, Info{}, err
	}

	e.currentNode = nextNode
	e.pathHistory = append(e.pathHistory, nextNode)
	e.totalTravelTime += travelTime

	reward, err := e.computeReward(travelTime, progress)
	if err != nil {
		return Observation{}, 0, false, false, Info{}, err
	}

	done, truncated, reason := e.checkTermination()

	info := Info{
		Path:               append([]int(nil), e.pathHistory...),
		RemainingWaypoints: append([]int(nil), e.remainingWaypoints...),
		CurrentNode:        e.currentNode,
		Destination:        e.destination,
		TotalTravelTime:    e.totalTravelTime,
		TerminatedReason:   reason,
	}
	return e.observation(), reward, done, truncated, info, nil
}

// travelCost resolves the traversal cost of the edge u->v under the
// env's configured weight scheme, falling back to a uniform hop cost
// when no edge between the pair exists (the wrapped-action path never
// reaches that case; it guards direct callers).
func (e *Env) travelCost(u, v int) float64 {
	w, ok := e.g.MinParallelWeight(u, v, e.cfg.weightName)
	if !ok {
		return 1.0
	}
	return w
}

// progressTo returns the reduction in shortest-path distance to the
// current target (the next pending waypoint, or the destination once
// none remain) that moving from the current node to next would
// achieve.
func (e *Env) progressTo(next int) (float64, error) {
	target := e.currentTarget()
	distPrev, err := e.oracle.Distance(e.currentNode, target)
	if err != nil {
		return 0, fmt.Errorf("navenv: progressTo: %w", err)
	}
	distCurr, err := e.oracle.Distance(next, target)
	if err != nil {
		return 0, fmt.Errorf("navenv: progressTo: %w", err)
	}
	return distPrev - distCurr, nil
}

func (e *Env) currentTarget() int {
	if len(e.remainingWaypoints) > 0 {
		return e.remainingWaypoints[0]
	}
	return e.destination
}

// computeReward scores the step just taken, removing an arrived
// waypoint from remainingWaypoints as a side effect — it is called
// after currentNode has already advanced to the node being scored.
func (e *Env) computeReward(travelTime, progress float64) (float64, error) {
	denom := e.maxDistance
	if denom <= 0 {
		denom = 1.0
	}

	reward := 0.0
	if progress > 0 {
		reward += (progress / denom) * e.cfg.progressCoef
	} else {
		reward -= e.cfg.noProgressPenalty / denom
	}
	reward -= (travelTime / denom) * e.cfg.moveCostCoef

	for i, wp := range e.remainingWaypoints {
		if wp == e.currentNode {
			e.remainingWaypoints = append(e.remainingWaypoints[:i], e.remainingWaypoints[i+1:]...)
			reward += e.cfg.waypointBonus
			break
		}
	}

	if e.currentNode == e.destination && len(e.remainingWaypoints) == 0 {
		reward += e.cfg.destinationBonus
	}

	return reward, nil
}

// checkTermination: reaching the destination with no waypoints left
// takes priority, then the step budget, then the wait-step budget.
func (e *Env) checkTermination() (done, truncated bool, reason string) {
	if e.currentNode == e.destination && len(e.remainingWaypoints) == 0 {
		return true, false, "destination_reached"
	}
	if e.stepsTaken >= e.cfg.maxSteps {
		return true, true, "max_steps"
	}
	if e.cfg.maxWaitSteps > 0 && e.stepsTaken >= e.cfg.maxWaitSteps {
		return true, true, "max_wait_steps"
	}
	return false, false, ""
}

func (e *Env) calculateOptimalSteps() {
	e.optimalStepsToWaypoints = make(map[int]int, len(e.waypoints))
	current := e.currentNode

	for _, wp := range e.waypoints {
		d, err := e.oracle.Distance(current, wp)
		if err == nil {
			steps := int(d)
			if steps < 1 {
				steps = 1
			}
			e.optimalStepsToWaypoints[wp] = steps
		}
		current = wp
	}

	var from int
	if len(e.waypoints) > 0 {
		from = e.waypoints[len(e.waypoints)-1]
	} else {
		from = e.startNode
	}
	if d, err := e.oracle.Distance(from, e.destination); err == nil {
		steps := int(d)
		if steps < 1 {
			steps = 1
		}
		e.optimalStepsToDestination = steps
	}
}

// efficiencyInfo compares the steps spent so far, plus the shortest
// remaining distance, against the optimal step counts computed at
// reset.
func (e *Env) efficiencyInfo() (wpEfficiency, destEfficiency, stepsVsOptimalWP, stepsVsOptimalDest float64) {
	if len(e.remainingWaypoints) > 0 {
		wp := e.remainingWaypoints[0]
		if optimal, ok := e.optimalStepsToWaypoints[wp]; ok && optimal > 0 {
			distRemaining, _ := e.oracle.Distance(e.currentNode, wp)
			estimatedTotal := float64(e.stepsTaken) + distRemaining
			denom := estimatedTotal
			if denom < 1.0 {
				denom = 1.0
			}
			stepsVsOptimalWP = estimatedTotal / float64(optimal)
			wpEfficiency = float64(optimal) / denom
			if wpEfficiency > 1.0 {
				wpEfficiency = 1.0
			}
		}
	}

	if e.optimalStepsToDestination > 0 {
		distRemaining, _ := e.oracle.Distance(e.currentNode, e.destination)
		estimatedTotal := float64(e.stepsTaken) + distRemaining
		denom := estimatedTotal
		if denom < 1.0 {
			denom = 1.0
		}
		stepsVsOptimalDest = estimatedTotal / float64(e.optimalStepsToDestination)
		destEfficiency = float64(e.optimalStepsToDestination) / denom
		if destEfficiency > 1.0 {
			destEfficiency = 1.0
		}
	}

	return
}

func (e *Env) embeddingOf(node int) []float64 {
	if node < 0 || node >= len(e.embeddings) {
		return make([]float64, embed.Dim)
	}
	return e.embeddings[node]
}

func (e *Env) observation() Observation {
	denom := e.maxDistance
	if denom <= 0 {
		denom = 1.0
	}

	var wpEmb []float64
	var distWP float64
	var wpNode = -1
	if len(e.remainingWaypoints) > 0 {
		wpNode = e.remainingWaypoints[0]
		wpEmb = e.embeddingOf(wpNode)
		distWP, _ = e.oracle.Distance(e.currentNode, wpNode)
	} else {
		wpEmb = make([]float64, embed.Dim)
	}

	distDest, _ := e.oracle.Distance(e.currentNode, e.destination)

	wpEff, destEff, stepsVsWP, stepsVsDest := e.efficiencyInfo()

	neighbors := e.g.NeighborIDs(e.currentNode)
	neighborDistDest := make([]float64, e.maxActions)
	neighborDistWP := make([]float64, e.maxActions)
	for i, nb := range neighbors {
		if i >= e.maxActions {
			break
		}
		d, _ := e.oracle.Distance(nb, e.destination)
		neighborDistDest[i] = d / denom
		if wpNode >= 0 {
			d2, _ := e.oracle.Distance(nb, wpNode)
			neighborDistWP[i] = d2 / denom
		}
	}

	maxSteps := e.cfg.maxSteps
	if maxSteps < 1 {
		maxSteps = 1
	}

	return Observation{
		CurrentEmbedding:     e.embeddingOf(e.currentNode),
		DestinationEmbedding: e.embeddingOf(e.destination),
		WaypointEmbedding:    wpEmb,
		DistDestNorm:         distDest / denom,
		DistWaypointNorm:     distWP / denom,
		StepsFraction:        float64(e.stepsTaken) / float64(maxSteps),
		WaypointEfficiency:   wpEff,
		DestEfficiency:       destEff,
		StepsVsOptimalWP:     stepsVsWP,
		StepsVsOptimalDest:   stepsVsDest,
		NeighborDistDest:     neighborDistDest,
		NeighborDistWaypoint: neighborDistWP,
	}
}
