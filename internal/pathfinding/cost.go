package pathfinding

import (
	"math"
	"strings"

	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

// Impassable marks a transition an organism cannot enter at any cost.
const Impassable = math.MaxFloat64

// Traits are the physical capabilities gating traversal: climbing grip,
// diving depth, body size and wing span, all on a [0,1] scale.
type Traits struct {
	Grip        float64
	DivingDepth float64
	Size        float64
	WingSpan    float64
}

// Archetype names a preset trait bundle for tooling and tests.
type Archetype string

const (
	ArchetypeWalker   Archetype = "walker"
	ArchetypeClimber  Archetype = "climber"
	ArchetypeSwimmer  Archetype = "swimmer"
	ArchetypeFlyer    Archetype = "flyer"
	ArchetypeBurrower Archetype = "burrower"
)

// DefaultTraits returns the preset capabilities for an archetype.
func DefaultTraits(a Archetype) Traits {
	switch a {
	case ArchetypeClimber:
		return Traits{Grip: 0.9, DivingDepth: 0.1, Size: 0.4, WingSpan: 0.1}
	case ArchetypeSwimmer:
		return Traits{Grip: 0.2, DivingDepth: 0.9, Size: 0.5, WingSpan: 0.0}
	case ArchetypeFlyer:
		return Traits{Grip: 0.3, DivingDepth: 0.0, Size: 0.3, WingSpan: 0.9}
	case ArchetypeBurrower:
		return Traits{Grip: 0.5, DivingDepth: 0.2, Size: 0.2, WingSpan: 0.0}
	case ArchetypeWalker:
		fallthrough
	default:
		return Traits{Grip: 0.4, DivingDepth: 0.2, Size: 0.5, WingSpan: 0.1}
	}
}

// ArchetypeFromString parses a textual archetype label, defaulting to walker.
func ArchetypeFromString(value string) Archetype {
	switch strings.ToLower(value) {
	case "climber":
		return ArchetypeClimber
	case "swimmer":
		return ArchetypeSwimmer
	case "flyer", "flying":
		return ArchetypeFlyer
	case "burrower", "digger":
		return ArchetypeBurrower
	default:
		return ArchetypeWalker
	}
}

// TransitionCost converts a transition plus an organism's traits into a
// traversal cost. The second return is false when the organism cannot enter
// the cell at all. Deterministic given inputs.
func TransitionCost(tr world.Transition, traits Traits) (float64, bool) {
	switch tr.Kind {
	case world.TransitionSolid:
		return Impassable, false
	case world.TransitionAir:
		return 1.0, true
	case world.TransitionRamp:
		return 1.0 + 0.5*tr.Param, true
	case world.TransitionClimb:
		if traits.Grip <= 0.5*tr.Param {
			return Impassable, false
		}
		return 2.0 + tr.Param, true
	case world.TransitionSwim:
		if traits.DivingDepth <= 0.3*tr.Param {
			return Impassable, false
		}
		return 1.5 + 0.5*tr.Param, true
	case world.TransitionTunnel:
		squeeze := 1 - math.Max(0.1, 1-traits.Size)
		return 1.2 + (1-tr.Param)*squeeze, true
	case world.TransitionFlight:
		if traits.WingSpan <= 0.3 {
			return Impassable, false
		}
		return 1.0 + (1-tr.Param)*(1-traits.WingSpan), true
	case world.TransitionBridge:
		return 1.1 + 0.3*(1-tr.Param), true
	default:
		return Impassable, false
	}
}
