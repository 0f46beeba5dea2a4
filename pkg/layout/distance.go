package layout

import (
	"math"

	"github.com/dd0wney/crewsim/pkg/graph"
)

// DistanceForScore maps a pairwise compatibility score to the target spring
// length between the two nodes. Strictly non-increasing: higher compatibility
// pulls members closer. Scores outside [0,100] are clamped first.
func (c *ForceConfig) DistanceForScore(score float64) float64 {
	t := 1 - graph.ClampScore(score)/100
	return c.BaseDistance + math.Pow(t, c.Exponent)*c.Spread
}
