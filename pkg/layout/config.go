package layout

// ForceConfig defines the tuned parameters of the force simulation. The
// defaults are visual tuning values carried over from the production layout;
// they have no analytical derivation and are exposed as configuration so they
// can be adjusted without touching the solver.
type ForceConfig struct {
	// Distance curve: target spring length for a compatibility score s is
	// BaseDistance + (1 - s/100)^Exponent * Spread. Exponent > 1 exaggerates
	// mid-range score differences; BaseDistance > 0 keeps perfectly
	// compatible pairs from collapsing onto each other.
	BaseDistance float64
	Spread       float64
	Exponent     float64

	// Force strengths
	ChargeStrength    float64 // pairwise repulsion
	LinkStrength      float64 // spring pull toward target distance
	CenteringStrength float64 // gravity toward the origin
	CollideRadius     float64 // minimum half-separation between any two nodes

	// Cooling schedule. Alpha starts at AlphaInit and shrinks geometrically
	// by AlphaDecay per tick; the simulation is converged once it drops
	// below AlphaMin.
	AlphaInit  float64
	AlphaDecay float64
	AlphaMin   float64

	// VelocityDecay is the per-tick velocity retention multiplier, applied
	// on every axis before positions are integrated.
	VelocityDecay float64

	// InitialSpread is the half-extent of the cube initial node positions
	// are sampled from.
	InitialSpread float64
}

// DefaultForceConfig returns the production tuning.
func DefaultForceConfig() ForceConfig {
	return ForceConfig{
		BaseDistance:      30,
		Spread:            270,
		Exponent:          2,
		ChargeStrength:    150,
		LinkStrength:      0.1,
		CenteringStrength: 0.05,
		CollideRadius:     12,
		AlphaInit:         1.0,
		AlphaDecay:        0.0228,
		AlphaMin:          0.001,
		VelocityDecay:     0.6,
		InitialSpread:     100,
	}
}

// Validate checks if configuration is valid
func (c *ForceConfig) Validate() error {
	if c.BaseDistance <= 0 {
		return ErrInvalidBaseDistance
	}
	if c.Exponent <= 1 {
		return ErrInvalidExponent
	}
	if c.Spread < 0 {
		return ErrInvalidSpread
	}
	if c.AlphaDecay <= 0 || c.AlphaDecay >= 1 {
		return ErrInvalidAlphaDecay
	}
	if c.AlphaMin <= 0 || c.AlphaMin >= c.AlphaInit {
		return ErrInvalidAlphaMin
	}
	if c.VelocityDecay <= 0 || c.VelocityDecay > 1 {
		return ErrInvalidVelocityDecay
	}
	if c.ChargeStrength < 0 || c.LinkStrength < 0 || c.CenteringStrength < 0 {
		return ErrNegativeStrength
	}
	return nil
}
