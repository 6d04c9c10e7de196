package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgcardona/bugtopia-sub000/internal/world"
)

func TestTransitionCostClosedForms(t *testing.T) {
	tests := []struct {
		name     string
		tr       world.Transition
		traits   Traits
		wantCost float64
		wantOK   bool
	}{
		{
			name:   "solid is impassable for everyone",
			tr:     world.Transition{Kind: world.TransitionSolid},
			traits: DefaultTraits(ArchetypeClimber),
			wantOK: false,
		},
		{
			name:     "air is unit cost",
			tr:       world.Transition{Kind: world.TransitionAir},
			traits:   Traits{},
			wantCost: 1.0,
			wantOK:   true,
		},
		{
			name:     "ramp scales with angle",
			tr:       world.Transition{Kind: world.TransitionRamp, Param: 0.5},
			traits:   Traits{},
			wantCost: 1.25,
			wantOK:   true,
		},
		{
			name:   "climb rejects weak grip",
			tr:     world.Transition{Kind: world.TransitionClimb, Param: 0.6},
			traits: Traits{Grip: 0.2},
			wantOK: false,
		},
		{
			name:     "climb charges difficulty",
			tr:       world.Transition{Kind: world.TransitionClimb, Param: 0.6},
			traits:   Traits{Grip: 0.5},
			wantCost: 2.6,
			wantOK:   true,
		},
		{
			name:   "swim rejects shallow divers",
			tr:     world.Transition{Kind: world.TransitionSwim, Param: 0.2},
			traits: Traits{DivingDepth: 0.05},
			wantOK: false,
		},
		{
			name:     "swim charges depth",
			tr:       world.Transition{Kind: world.TransitionSwim, Param: 0.2},
			traits:   Traits{DivingDepth: 0.5},
			wantCost: 1.6,
			wantOK:   true,
		},
		{
			name:     "tunnel squeezes large bodies",
			tr:       world.Transition{Kind: world.TransitionTunnel, Param: 0.5},
			traits:   Traits{Size: 0.5},
			wantCost: 1.45,
			wantOK:   true,
		},
		{
			name:     "tiny bodies barely notice tunnels",
			tr:       world.Transition{Kind: world.TransitionTunnel, Param: 0.5},
			traits:   Traits{Size: 0.05},
			wantCost: 1.225,
			wantOK:   true,
		},
		{
			name:   "flight needs wings",
			tr:     world.Transition{Kind: world.TransitionFlight, Param: 0.5},
			traits: Traits{WingSpan: 0.2},
			wantOK: false,
		},
		{
			name:     "flight cost falls with clearance and span",
			tr:       world.Transition{Kind: world.TransitionFlight, Param: 0.5},
			traits:   Traits{WingSpan: 0.8},
			wantCost: 1.1,
			wantOK:   true,
		},
		{
			name:     "bridge charges instability",
			tr:       world.Transition{Kind: world.TransitionBridge, Param: 0.5},
			traits:   Traits{},
			wantCost: 1.25,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, ok := TransitionCost(tt.tr, tt.traits)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantCost, cost, 1e-9)
				assert.GreaterOrEqual(t, cost, 1.0, "every passable step costs at least one")
			}
		})
	}
}

func TestDefaultTraitsCoverTheirTerrain(t *testing.T) {
	_, ok := TransitionCost(world.Transition{Kind: world.TransitionFlight, Param: 0.2}, DefaultTraits(ArchetypeFlyer))
	assert.True(t, ok, "flyer must fly")

	_, ok = TransitionCost(world.Transition{Kind: world.TransitionSwim, Param: 0.25}, DefaultTraits(ArchetypeSwimmer))
	assert.True(t, ok, "swimmer must swim")

	_, ok = TransitionCost(world.Transition{Kind: world.TransitionClimb, Param: 1.0}, DefaultTraits(ArchetypeClimber))
	assert.True(t, ok, "climber must climb the hardest wall")
}

func TestArchetypeFromString(t *testing.T) {
	assert.Equal(t, ArchetypeFlyer, ArchetypeFromString("Flying"))
	assert.Equal(t, ArchetypeBurrower, ArchetypeFromString("digger"))
	assert.Equal(t, ArchetypeWalker, ArchetypeFromString("unknown"))
}
