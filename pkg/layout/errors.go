package layout

import "errors"

var (
	ErrInvalidBaseDistance  = errors.New("base distance must be positive")
	ErrInvalidExponent      = errors.New("distance exponent must be greater than 1")
	ErrInvalidSpread        = errors.New("distance spread cannot be negative")
	ErrInvalidAlphaDecay    = errors.New("alpha decay must be in (0,1)")
	ErrInvalidAlphaMin      = errors.New("alpha minimum must be positive and below alpha init")
	ErrInvalidVelocityDecay = errors.New("velocity decay must be in (0,1]")
	ErrNegativeStrength     = errors.New("force strengths cannot be negative")
)
