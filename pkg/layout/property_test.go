package layout

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDistanceCurveProperties verifies the distance mapping over random score
// pairs rather than hand-picked ones.
func TestDistanceCurveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	cfg := DefaultForceConfig()

	properties.Property("non-increasing in score", prop.ForAll(
		func(s1, s2 float64) bool {
			if s1 > s2 {
				s1, s2 = s2, s1
			}
			return cfg.DistanceForScore(s1) >= cfg.DistanceForScore(s2)
		},
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
	))

	properties.Property("always positive", prop.ForAll(
		func(s float64) bool {
			return cfg.DistanceForScore(s) > 0
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.Property("bounded by base and base+spread", prop.ForAll(
		func(s float64) bool {
			d := cfg.DistanceForScore(s)
			return d >= cfg.BaseDistance && d <= cfg.BaseDistance+cfg.Spread
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
