package props

// State is a fully resolved thermodynamic state for one fluid.
// Quality is -1 when the state is outside the two-phase dome.
type State struct {
	PressKPa     float64 `json:"press_kpa"`
	TempK        float64 `json:"temp_k"`
	EnthalpyKJkg float64 `json:"enthalpy_kj_kg"`
	EntropyKJkgK float64 `json:"entropy_kj_kgk"`
	Quality      float64 `json:"quality"`
}

// TwoPhase reports whether the state lies inside the saturation dome.
func (s State) TwoPhase() bool { return s.Quality >= 0 && s.Quality <= 1 }

// Provider supplies refrigerant properties. Implementations must be
// deterministic pure functions and must fail with an error wrapping
// ErrPropertyLookup (or ErrUnknownFluid) instead of panicking.
type Provider interface {
	// Fluids lists the supported refrigerant identifiers.
	Fluids() []string

	// SaturationLimits returns the usable saturation temperature range [K].
	SaturationLimits(fluid string) (minK, maxK float64, err error)

	// SaturationPressure returns the saturation pressure [kPa] at tempK.
	SaturationPressure(fluid string, tempK float64) (float64, error)

	// SaturationTemperature returns the saturation temperature [K] at pressKPa.
	SaturationTemperature(fluid string, pressKPa float64) (float64, error)

	// StateAtPT resolves a state from pressure and temperature.
	// T >= Tsat(P) resolves on the vapor side, T < Tsat(P) as liquid.
	StateAtPT(fluid string, pressKPa, tempK float64) (State, error)

	// StateAtPH resolves a state from pressure and specific enthalpy.
	StateAtPH(fluid string, pressKPa, enthalpyKJkg float64) (State, error)

	// StateAtPS resolves a state from pressure and specific entropy.
	StateAtPS(fluid string, pressKPa, entropyKJkgK float64) (State, error)

	// StateAtSat resolves a saturated state from temperature and quality.
	StateAtSat(fluid string, tempK, quality float64) (State, error)
}
