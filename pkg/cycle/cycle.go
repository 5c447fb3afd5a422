// Package cycle computes single-stage vapor-compression refrigeration cycles.
//
// Compute is a plain synchronous function of its inputs and a property
// backend: no retained state, no side effects, safe to call from any shell
// (CLI prompt loop, websocket handler, test). State numbering follows the
// textbook convention: 1 compressor inlet, 2 compressor outlet, 3 condenser
// outlet, 4 evaporator inlet.
package cycle

import (
	"fmt"
	"math"
	"slices"

	"github.com/vcycle/vcycle/pkg/props"
	"github.com/vcycle/vcycle/pkg/units"
)

// DefaultBalanceTol is the relative first-law closure tolerance. The built-in
// backend closes the balance to machine precision; the tolerance exists to
// catch inconsistent third-party backends.
const DefaultBalanceTol = 1e-6

var labels = [4]string{
	"evaporator exit (superheated vapor)",
	"compressor discharge",
	"condenser exit (subcooled liquid)",
	"evaporator inlet (after expansion)",
}

// Validate checks Inputs without touching the property backend.
func (in Inputs) Validate() error {
	if in.Fluid == "" {
		return fmt.Errorf("%w: fluid not set", ErrInvalidInput)
	}
	for name, v := range map[string]float64{
		"evaporator value":  in.Evaporator.Value,
		"condenser value":   in.Condenser.Value,
		"superheat":         in.SuperheatK,
		"subcooling":        in.SubcoolK,
		"efficiency":        in.Efficiency,
		"mass flow":         in.MassFlowKgS,
		"balance tolerance": in.BalanceTol,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, name)
		}
	}
	if in.Evaporator.By != ByTemperature && in.Evaporator.By != ByPressure {
		return fmt.Errorf("%w: bad evaporator specification", ErrInvalidInput)
	}
	if in.Condenser.By != ByTemperature && in.Condenser.By != ByPressure {
		return fmt.Errorf("%w: bad condenser specification", ErrInvalidInput)
	}
	if in.Evaporator.Value <= 0 || in.Condenser.Value <= 0 {
		return fmt.Errorf("%w: saturation values must be positive absolute quantities", ErrInvalidInput)
	}
	if in.SuperheatK < 0 {
		return fmt.Errorf("%w: superheat %.3f K is negative", ErrInvalidInput, in.SuperheatK)
	}
	if in.SubcoolK < 0 {
		return fmt.Errorf("%w: subcooling %.3f K is negative", ErrInvalidInput, in.SubcoolK)
	}
	if in.Efficiency <= 0 || in.Efficiency > 1 {
		return fmt.Errorf("%w: isentropic efficiency %.4f outside (0,1]", ErrInvalidInput, in.Efficiency)
	}
	if in.MassFlowKgS < 0 {
		return fmt.Errorf("%w: mass flow %.4f kg/s is negative", ErrInvalidInput, in.MassFlowKgS)
	}
	if in.BalanceTol < 0 {
		return fmt.Errorf("%w: balance tolerance is negative", ErrInvalidInput)
	}
	return nil
}

// resolve turns a Saturation into the (Tsat, Psat) pair.
func resolve(p props.Provider, fluid string, s Saturation) (tempK, pressKPa float64, err error) {
	switch s.By {
	case ByTemperature:
		tempK = s.Value
		pressKPa, err = p.SaturationPressure(fluid, tempK)
	case ByPressure:
		pressKPa = s.Value
		tempK, err = p.SaturationTemperature(fluid, pressKPa)
	}
	return tempK, pressKPa, err
}

// Compute evaluates the cycle. It returns a complete Result or an error;
// never both, never a partial result. Errors are terminal for the request:
// ErrInvalidInput and ErrInfeasibleCycle identify bad requests,
// props.ErrPropertyLookup is propagated untouched, and ErrEnergyBalance
// flags an inconsistent backend.
func Compute(p props.Provider, in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(p.Fluids(), in.Fluid) {
		return nil, fmt.Errorf("%w: refrigerant %q not supported", ErrInvalidInput, in.Fluid)
	}

	tEvap, pEvap, err := resolve(p, in.Fluid, in.Evaporator)
	if err != nil {
		return nil, err
	}
	tCond, pCond, err := resolve(p, in.Fluid, in.Condenser)
	if err != nil {
		return nil, err
	}
	if pCond <= pEvap || tCond <= tEvap {
		return nil, fmt.Errorf("%w: condenser side (%.2f K, %.2f kPa) must exceed evaporator side (%.2f K, %.2f kPa)",
			ErrInfeasibleCycle, tCond, pCond, tEvap, pEvap)
	}
	t3 := tCond - in.SubcoolK
	if t3 <= 0 {
		return nil, fmt.Errorf("%w: subcooling %.2f K yields non-physical temperature", ErrInfeasibleCycle, in.SubcoolK)
	}

	// State 1: superheated vapor leaving the evaporator.
	st1, err := p.StateAtPT(in.Fluid, pEvap, tEvap+in.SuperheatK)
	if err != nil {
		return nil, err
	}

	// State 2s: ideal (isentropic) compression to condensing pressure.
	st2s, err := p.StateAtPS(in.Fluid, pCond, st1.EntropyKJkgK)
	if err != nil {
		return nil, err
	}
	wIdeal := st2s.EnthalpyKJkg - st1.EnthalpyKJkg
	if wIdeal <= 0 {
		return nil, fmt.Errorf("%w: isentropic compression does not increase enthalpy", ErrInfeasibleCycle)
	}

	// State 2: actual discharge; temperature back-derived for display only.
	wActual := wIdeal / in.Efficiency
	st2, err := p.StateAtPH(in.Fluid, pCond, st1.EnthalpyKJkg+wActual)
	if err != nil {
		return nil, err
	}

	// State 3: liquid leaving the condenser. With zero subcooling a PT lookup
	// on the saturation line would land on the dew point, so ask for the
	// bubble point explicitly.
	var st3 props.State
	if in.SubcoolK == 0 {
		st3, err = p.StateAtSat(in.Fluid, tCond, 0)
	} else {
		st3, err = p.StateAtPT(in.Fluid, pCond, t3)
	}
	if err != nil {
		return nil, err
	}

	// State 4: isenthalpic expansion back to evaporating pressure.
	st4, err := p.StateAtPH(in.Fluid, pEvap, st3.EnthalpyKJkg)
	if err != nil {
		return nil, err
	}

	w := st2.EnthalpyKJkg - st1.EnthalpyKJkg
	qEvap := st1.EnthalpyKJkg - st4.EnthalpyKJkg
	qCond := st2.EnthalpyKJkg - st3.EnthalpyKJkg

	tol := in.BalanceTol
	if tol == 0 {
		tol = DefaultBalanceTol
	}
	// w must reproduce the efficiency-derived work, and the first law must
	// close: qCond == qEvap + w. Either failing means the backend returned
	// inconsistent states.
	if relErr(w, wActual) > tol {
		return nil, fmt.Errorf("%w: work %.6f kJ/kg differs from efficiency-derived %.6f kJ/kg",
			ErrEnergyBalance, w, wActual)
	}
	if relErr(qCond, qEvap+w) > tol {
		return nil, fmt.Errorf("%w: q_cond %.6f kJ/kg vs q_evap + w %.6f kJ/kg",
			ErrEnergyBalance, qCond, qEvap+w)
	}

	res := &Result{
		Fluid:              in.Fluid,
		IdealDischargeKJkg: st2s.EnthalpyKJkg,
		EvapSatTempK:       tEvap,
		CondSatTempK:       tCond,
		WorkKJkg:           w,
		RefrigEffectKJkg:   qEvap,
		HeatRejectKJkg:     qCond,
		COP:                qEvap / w,
	}
	for i, st := range []props.State{st1, st2, st3, st4} {
		res.Points[i] = StatePoint{
			Index:        i + 1,
			Label:        labels[i],
			PressKPa:     st.PressKPa,
			TempK:        st.TempK,
			EnthalpyKJkg: st.EnthalpyKJkg,
			EntropyKJkgK: st.EntropyKJkgK,
			Quality:      st.Quality,
		}
	}
	if in.MassFlowKgS > 0 {
		res.MassFlowKgS = in.MassFlowKgS
		res.PowerKW = in.MassFlowKgS * w
		res.CapacityKW = in.MassFlowKgS * qEvap
		res.HeatRejectKW = in.MassFlowKgS * qCond
		res.CapacityTons = units.KWToTons(res.CapacityKW)
		if res.CapacityTons > 0 {
			res.KWPerTon = res.PowerKW / res.CapacityTons
		}
	}
	return res, nil
}

func relErr(a, b float64) float64 {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) / scale
}
