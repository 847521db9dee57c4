package mask

import (
	"math/rand"

	"github.com/routewise/navmdp/distance"
	"github.com/routewise/navmdp/graph"
	"github.com/routewise/navmdp/navenv"
)

// MaskedEnv wraps a navenv.StepEnv, restricting its action space to
// neighbors that make measurable progress toward the current target
// (the next pending waypoint, or the destination once none remain),
// substituting a masked-out chosen action with a fallback, and adding
// a cycle penalty to the reward when a node is revisited too often.
// It satisfies navenv.StepEnv itself, so a *MaskedEnv can stand in
// anywhere a bare *navenv.Env does.
type MaskedEnv struct {
	inner      navenv.StepEnv
	g          *graph.Graph
	oracle     *distance.Oracle
	cfg        config
	maxActions int

	rng *rand.Rand

	started      bool
	lastInfo     navenv.Info
	actionMask   []bool
	recentNodes  []int
	recentSet    map[int]struct{}
	visitCounter map[int]int
	lastMaskInfo Info
}

// New wraps inner, which must already be constructed over g and whose
// distances are answered by oracle.
func New(inner navenv.StepEnv, g *graph.Graph, oracle *distance.Oracle, opts ...Option) (*MaskedEnv, error) {
	if inner == nil {
		return nil, ErrNilEnv
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MaskedEnv{
		inner:      inner,
		g:          g,
		oracle:     oracle,
		cfg:        cfg,
		maxActions: inner.ActionCount(),
	}, nil
}

// ObservationShape delegates to the wrapped environment.
func (m *MaskedEnv) ObservationShape() int { return m.inner.ObservationShape() }

// ActionCount delegates to the wrapped environment.
func (m *MaskedEnv) ActionCount() int { return m.inner.ActionCount() }

// LastMaskInfo returns the masking decision recorded by the most
// recent Reset or Step call: the action mask, the valid action
// indices, and (for Step) whether the chosen action was substituted.
func (m *MaskedEnv) LastMaskInfo() Info {
	return m.lastMaskInfo
}

// Reset starts a new episode on the wrapped environment and resets
// this wrapper's cycle-tracking state: the recent-node window, the
// per-node visit counters, and the random source used to break ties
// in the fallback action.
func (m *MaskedEnv) Reset(seed int64, opts ...navenv.ResetOption) (navenv.Observation, navenv.Info, error) {
	obs, info, err := m.inner.Reset(seed, opts...)
	if err != nil {
		return obs, info, err
	}

	m.rng = rand.New(rand.NewSource(seed))
	m.recentNodes = []int{info.CurrentNode}
	m.recentSet = map[int]struct{}{info.CurrentNode: {}}
	m.visitCounter = map[int]int{info.CurrentNode: 1}
	m.lastInfo = info
	m.started = true

	m.actionMask = m.computeMask()
	m.lastMaskInfo = Info{
		ActionMask:   append([]bool(nil), m.actionMask...),
		ValidActions: validIndices(m.actionMask),
	}
	return obs, info, nil
}

// Step recomputes the action mask against the current node and
// targets, substitutes action with a fallback if it names a masked-out
// neighbor, forwards the (possibly substituted) action to the wrapped
// environment, then folds a cycle penalty into the returned reward.
// Reaching the configured penalty floor also forces truncation with
// reason "loop_detected", taking priority over whatever reason the
// wrapped environment reported.
func (m *MaskedEnv) Step(action int) (navenv.Observation, float64, bool, bool, navenv.Info, error) {
	if !m.started {
		return navenv.Observation{}, 0, false, false, navenv.Info{}, ErrNotReset
	}

	m.actionMask = m.computeMask()
	origAction := action
	chosen := action
	if chosen < 0 || chosen >= len(m.actionMask) || !m.actionMask[chosen] {
		chosen = m.fallbackAction()
	}

	obs, reward, done, truncated, info, err := m.inner.Step(chosen)
	if err != nil {
		return obs, reward, done, truncated, info, err
	}

	m.updateCycleTracking(info.CurrentNode)
	cyclePenalty := m.cyclePenalty(info.CurrentNode)
	reward += cyclePenalty
	if cyclePenalty <= m.cfg.penaltyFloor {
		truncated = true
		info.TerminatedReason = "loop_detected"
	}
	m.lastInfo = info

	// Publish the mask for the node the agent now occupies, not the one
	// it just left: a masked policy reads this info to pick its next
	// action, which indexes into the new current node's neighbors.
	m.actionMask = m.computeMask()

	m.lastMaskInfo = Info{
		ActionMask:     append([]bool(nil), m.actionMask...),
		ValidActions:   validIndices(m.actionMask),
		MaskingApplied: chosen != origAction,
		OriginalAction: origAction,
		ChosenAction:   chosen,
		CyclePenalty:   cyclePenalty,
	}
	return obs, reward, done, truncated, info, nil
}

// computeMask rebuilds the action mask for the current node: a
// neighbor is valid if it is a remaining waypoint or the (waypoint-
// free) destination, or if it brings the agent measurably closer to
// the current target (the next pending waypoint, or the destination),
// is not in the recent-node window, and has not been visited too often.
// If nothing qualifies, every base-enabled neighbor is re-admitted and
// the recent-node window is cleared so the agent is not stuck.
func (m *MaskedEnv) computeMask() []bool {
	current := m.lastInfo.CurrentNode
	neighbors := m.g.NeighborIDs(current)
	maxA := m.maxActions
	if len(neighbors) > maxA {
		neighbors = neighbors[:maxA]
	}

	mask := make([]bool, maxA)
	remaining := m.lastInfo.RemainingWaypoints
	destination := m.lastInfo.Destination

	var targets []int
	if len(remaining) > 0 {
		targets = remaining[:1]
	} else {
		targets = []int{destination}
	}

	distCache := make(map[int]float64, len(targets))
	for _, target := range targets {
		d, err := m.oracle.Distance(current, target)
		if err != nil {
			continue
		}
		distCache[target] = d
	}

	anyValid := false
	for i, nb := range neighbors {
		if containsInt(remaining, nb) || (len(remaining) == 0 && nb == destination) {
			mask[i] = true
			anyValid = true
			continue
		}

		closer := false
		for _, target := range targets {
			prevDist, ok := distCache[target]
			nbDist, err := m.oracle.Distance(nb, target)
			if !ok || err != nil {
				closer = true
				break
			}
			if nbDist < prevDist*m.cfg.progressThreshold {
				closer = true
				break
			}
		}
		if len(targets) > 0 && !closer {
			continue
		}

		if _, recent := m.recentSet[nb]; recent || m.visitCounter[nb] >= m.cfg.visitLimit {
			continue
		}
		mask[i] = true
		anyValid = true
	}

	if !anyValid {
		for i := range neighbors {
			mask[i] = true
		}
		m.recentNodes = nil
		m.recentSet = map[int]struct{}{}
	}

	return mask
}

// fallbackAction chooses a substitute when the requested action is
// masked out: a remaining waypoint neighbor first, the destination
// neighbor second, otherwise a uniformly random valid action.
func (m *MaskedEnv) fallbackAction() int {
	valid := validIndices(m.actionMask)
	if len(valid) == 0 {
		return 0
	}

	neighbors := m.g.NeighborIDs(m.lastInfo.CurrentNode)
	remaining := m.lastInfo.RemainingWaypoints
	destination := m.lastInfo.Destination

	for _, idx := range valid {
		if idx < len(neighbors) && containsInt(remaining, neighbors[idx]) {
			return idx
		}
	}
	if len(remaining) == 0 {
		for _, idx := range valid {
			if idx < len(neighbors) && neighbors[idx] == destination {
				return idx
			}
		}
	}
	return valid[m.rng.Intn(len(valid))]
}

// updateCycleTracking records a visit to node, trimming the recent-
// node window to its configured size and keeping the membership set
// in sync with it.
func (m *MaskedEnv) updateCycleTracking(node int) {
	m.recentNodes = append(m.recentNodes, node)
	if len(m.recentNodes) > m.cfg.recentWindow {
		m.recentNodes = m.recentNodes[len(m.recentNodes)-m.cfg.recentWindow:]
	}
	m.visitCounter[node]++

	m.recentSet = make(map[int]struct{}, len(m.recentNodes))
	for _, n := range m.recentNodes {
		m.recentSet[n] = struct{}{}
	}
}

// cyclePenalty returns the raw (negative) penalty for node's current
// visit count, clamped at the configured floor.
func (m *MaskedEnv) cyclePenalty(node int) float64 {
	visits := m.visitCounter[node]
	if visits <= m.cfg.visitLimit {
		return 0
	}
	raw := -m.cfg.antiLoopPenalty * float64(visits-m.cfg.visitLimit)
	if raw < m.cfg.penaltyFloor {
		raw = m.cfg.penaltyFloor
	}
	return raw
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func validIndices(mask []bool) []int {
	out := make([]int, 0, len(mask))
	for i, ok := range mask {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
