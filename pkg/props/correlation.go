package props

import (
	"fmt"
	"math"
)

// Correlation is the built-in closed-form property backend. The zero value is
// not usable; construct with NewCorrelation.
type Correlation struct {
	ref RefState
}

// NewCorrelation returns a backend using the given reference convention.
// An unknown convention falls back to IIR.
func NewCorrelation(ref RefState) *Correlation {
	if !ref.Valid() {
		ref = RefIIR
	}
	return &Correlation{ref: ref}
}

// RefState returns the reference convention the backend was built with.
func (c *Correlation) RefState() RefState { return c.ref }

// Fluids lists the supported refrigerants.
func (c *Correlation) Fluids() []string { return catalogNames() }

func (c *Correlation) fluid(name string) (*fluid, error) {
	f, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFluid, name)
	}
	return f, nil
}

// SaturationLimits returns the usable saturation temperature range.
func (c *Correlation) SaturationLimits(name string) (float64, float64, error) {
	f, err := c.fluid(name)
	if err != nil {
		return 0, 0, err
	}
	return f.tMinK, f.tMaxK, nil
}

// SaturationPressure returns Psat [kPa] at tempK.
func (c *Correlation) SaturationPressure(name string, tempK float64) (float64, error) {
	f, err := c.fluid(name)
	if err != nil {
		return 0, err
	}
	if !f.satTempInRange(tempK) {
		return 0, fmt.Errorf("%w: %s saturation temperature %.2f K outside [%.2f, %.2f]",
			ErrPropertyLookup, f.name, tempK, f.tMinK, f.tMaxK)
	}
	return f.satPressure(tempK), nil
}

// SaturationTemperature returns Tsat [K] at pressKPa.
func (c *Correlation) SaturationTemperature(name string, pressKPa float64) (float64, error) {
	f, err := c.fluid(name)
	if err != nil {
		return 0, err
	}
	if !f.pressInRange(pressKPa) {
		return 0, fmt.Errorf("%w: %s pressure %.2f kPa outside saturation range [%.2f, %.2f]",
			ErrPropertyLookup, f.name, pressKPa, f.satPressure(f.tMinK), f.satPressure(f.tMaxK))
	}
	return f.satTemperature(pressKPa), nil
}

// StateAtPT resolves (P, T). T >= Tsat(P) lands on the superheated side
// (T == Tsat yields saturated vapor), T < Tsat on the subcooled side. The
// liquid model is incompressible, so liquid enthalpy/entropy depend on T only.
func (c *Correlation) StateAtPT(name string, pressKPa, tempK float64) (State, error) {
	f, err := c.fluid(name)
	if err != nil {
		return State{}, err
	}
	if !f.pressInRange(pressKPa) {
		return State{}, fmt.Errorf("%w: %s pressure %.2f kPa out of range", ErrPropertyLookup, f.name, pressKPa)
	}
	tSat := f.satTemperature(pressKPa)
	dh, ds := c.ref.offsets(f)

	if tempK >= tSat-satTempEps {
		// vapor side
		if tempK > f.tcK+vaporTMargin {
			return State{}, fmt.Errorf("%w: %s vapor temperature %.2f K out of range", ErrPropertyLookup, f.name, tempK)
		}
		h := f.vaporEnthalpy(tSat) + f.cpVap*(tempK-tSat)
		s := f.vaporEntropy(tSat) + f.cpVap*math.Log(tempK/tSat)
		return State{PressKPa: pressKPa, TempK: tempK, EnthalpyKJkg: h + dh, EntropyKJkgK: s + ds, Quality: -1}, nil
	}
	if tempK < f.tMinK {
		return State{}, fmt.Errorf("%w: %s liquid temperature %.2f K below %.2f K", ErrPropertyLookup, f.name, tempK, f.tMinK)
	}
	return State{
		PressKPa:     pressKPa,
		TempK:        tempK,
		EnthalpyKJkg: f.liquidEnthalpy(tempK) + dh,
		EntropyKJkgK: f.liquidEntropy(tempK) + ds,
		Quality:      -1,
	}, nil
}

// StateAtPH resolves (P, h). The returned state carries the requested
// enthalpy verbatim.
func (c *Correlation) StateAtPH(name string, pressKPa, enthalpyKJkg float64) (State, error) {
	f, err := c.fluid(name)
	if err != nil {
		return State{}, err
	}
	if !f.pressInRange(pressKPa) {
		return State{}, fmt.Errorf("%w: %s pressure %.2f kPa out of range", ErrPropertyLookup, f.name, pressKPa)
	}
	tSat := f.satTemperature(pressKPa)
	dh, ds := c.ref.offsets(f)
	h := enthalpyKJkg - dh // into the internal frame
	hf := f.liquidEnthalpy(tSat)
	hfg := f.latentHeat(tSat)

	st := State{PressKPa: pressKPa, EnthalpyKJkg: enthalpyKJkg, Quality: -1}
	switch {
	case h < hf:
		t := refTempK + (h-refEnthalpy)/f.cpLiq
		if t < f.tMinK {
			return State{}, fmt.Errorf("%w: %s enthalpy %.2f kJ/kg below liquid range at %.2f kPa",
				ErrPropertyLookup, f.name, enthalpyKJkg, pressKPa)
		}
		st.TempK = t
		st.EntropyKJkgK = f.liquidEntropy(t) + ds
	case h <= hf+hfg:
		x := (h - hf) / hfg
		st.TempK = tSat
		st.Quality = x
		st.EntropyKJkgK = f.liquidEntropy(tSat) + x*hfg/tSat + ds
	default:
		t := tSat + (h-hf-hfg)/f.cpVap
		if t > f.tcK+vaporTMargin {
			return State{}, fmt.Errorf("%w: %s enthalpy %.2f kJ/kg above vapor range at %.2f kPa",
				ErrPropertyLookup, f.name, enthalpyKJkg, pressKPa)
		}
		st.TempK = t
		st.EntropyKJkgK = f.vaporEntropy(tSat) + f.cpVap*math.Log(t/tSat) + ds
	}
	return st, nil
}

// StateAtPS resolves (P, s). This is the isentropic-compression lookup.
func (c *Correlation) StateAtPS(name string, pressKPa, entropyKJkgK float64) (State, error) {
	f, err := c.fluid(name)
	if err != nil {
		return State{}, err
	}
	if !f.pressInRange(pressKPa) {
		return State{}, fmt.Errorf("%w: %s pressure %.2f kPa out of range", ErrPropertyLookup, f.name, pressKPa)
	}
	tSat := f.satTemperature(pressKPa)
	dh, ds := c.ref.offsets(f)
	s := entropyKJkgK - ds
	sf := f.liquidEntropy(tSat)
	hfg := f.latentHeat(tSat)
	sfg := hfg / tSat

	st := State{PressKPa: pressKPa, Quality: -1}
	switch {
	case s < sf:
		t := refTempK * math.Exp((s-refEntropy)/f.cpLiq)
		if t < f.tMinK {
			return State{}, fmt.Errorf("%w: %s entropy %.4f kJ/(kg·K) below liquid range at %.2f kPa",
				ErrPropertyLookup, f.name, entropyKJkgK, pressKPa)
		}
		st.TempK = t
		st.EnthalpyKJkg = f.liquidEnthalpy(t) + dh
	case s <= sf+sfg:
		x := (s - sf) / sfg
		st.TempK = tSat
		st.Quality = x
		st.EnthalpyKJkg = f.liquidEnthalpy(tSat) + x*hfg + dh
	default:
		t := tSat * math.Exp((s-sf-sfg)/f.cpVap)
		if t > f.tcK+vaporTMargin {
			return State{}, fmt.Errorf("%w: %s entropy %.4f kJ/(kg·K) above vapor range at %.2f kPa",
				ErrPropertyLookup, f.name, entropyKJkgK, pressKPa)
		}
		st.TempK = t
		st.EnthalpyKJkg = f.vaporEnthalpy(tSat) + f.cpVap*(t-tSat) + dh
	}
	st.EntropyKJkgK = entropyKJkgK
	return st, nil
}

// StateAtSat resolves a saturated state from temperature and quality.
func (c *Correlation) StateAtSat(name string, tempK, quality float64) (State, error) {
	f, err := c.fluid(name)
	if err != nil {
		return State{}, err
	}
	if !f.satTempInRange(tempK) {
		return State{}, fmt.Errorf("%w: %s saturation temperature %.2f K outside [%.2f, %.2f]",
			ErrPropertyLookup, f.name, tempK, f.tMinK, f.tMaxK)
	}
	if quality < 0 || quality > 1 {
		return State{}, fmt.Errorf("%w: quality %.4f outside [0,1]", ErrPropertyLookup, quality)
	}
	hfg := f.latentHeat(tempK)
	dh, ds := c.ref.offsets(f)
	return State{
		PressKPa:     f.satPressure(tempK),
		TempK:        tempK,
		EnthalpyKJkg: f.liquidEnthalpy(tempK) + quality*hfg + dh,
		EntropyKJkgK: f.liquidEntropy(tempK) + quality*hfg/tempK + ds,
		Quality:      quality,
	}, nil
}
