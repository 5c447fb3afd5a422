package props

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelation_Fluids(t *testing.T) {
	p := NewCorrelation(RefIIR)
	fluids := p.Fluids()
	require.NotEmpty(t, fluids)
	assert.Contains(t, fluids, "R134a")
	assert.Contains(t, fluids, "R22")
	assert.Contains(t, fluids, "R410A")
	for i := 1; i < len(fluids); i++ {
		assert.Less(t, fluids[i-1], fluids[i], "catalog order must be stable")
	}
}

func TestCorrelation_UnknownFluid(t *testing.T) {
	p := NewCorrelation(RefIIR)

	_, err := p.SaturationPressure("R9999", 263.15)
	require.ErrorIs(t, err, ErrUnknownFluid)
	_, _, err = p.SaturationLimits("propane")
	require.ErrorIs(t, err, ErrUnknownFluid)
	_, err = p.StateAtPT("R9999", 200, 263.15)
	require.ErrorIs(t, err, ErrUnknownFluid)
}

func TestCorrelation_SaturationAnchors_WithLogs(t *testing.T) {
	// Published saturation pressures (kPa) near the fit anchors. The Antoine
	// fit is not table-exact, so the deltas are loose on purpose.
	cases := []struct {
		fluid string
		tempC float64
		want  float64
	}{
		{"R134a", -10, 200.6},
		{"R134a", 40, 1017.0},
		{"R22", -10, 354.8},
		{"R22", 40, 1534.1},
		{"R32", -10, 577.0},
		{"R410A", -10, 573.8},
		{"R507A", -10, 460.0},
	}

	p := NewCorrelation(RefIIR)
	t.Logf("# fluid    T(°C)   Psat fit (kPa)   Psat ref (kPa)")
	for _, c := range cases {
		got, err := p.SaturationPressure(c.fluid, c.tempC+273.15)
		require.NoError(t, err)
		t.Logf("%-8s %6.1f %14.1f %16.1f", c.fluid, c.tempC, got, c.want)
		assert.InEpsilon(t, c.want, got, 0.05, "%s at %.0f °C", c.fluid, c.tempC)
	}
}

func TestCorrelation_SaturationMonotonicAndInvertible(t *testing.T) {
	p := NewCorrelation(RefIIR)
	for _, fl := range p.Fluids() {
		tMin, tMax, err := p.SaturationLimits(fl)
		require.NoError(t, err)

		prev := 0.0
		for tk := tMin; tk <= tMax; tk += 2.0 {
			ps, err := p.SaturationPressure(fl, tk)
			require.NoError(t, err, "%s at %.2f K", fl, tk)
			require.Greater(t, ps, prev, "%s: Psat must increase with T", fl)
			prev = ps

			back, err := p.SaturationTemperature(fl, ps)
			require.NoError(t, err)
			assert.InDelta(t, tk, back, 1e-6, "%s: Tsat(Psat(T)) round trip", fl)
		}
	}
}

func TestCorrelation_SaturationRangeErrors(t *testing.T) {
	p := NewCorrelation(RefIIR)

	_, err := p.SaturationPressure("R134a", 100)
	require.ErrorIs(t, err, ErrPropertyLookup)
	_, err = p.SaturationPressure("R134a", 500)
	require.ErrorIs(t, err, ErrPropertyLookup)
	_, err = p.SaturationTemperature("R134a", 1e-6)
	require.ErrorIs(t, err, ErrPropertyLookup)
	_, err = p.SaturationTemperature("R134a", 1e9)
	require.ErrorIs(t, err, ErrPropertyLookup)
}

func TestCorrelation_ReferenceStateAnchors(t *testing.T) {
	// IIR: saturated liquid at 0 °C has h = 200 kJ/kg, s = 1 kJ/(kg·K).
	iir := NewCorrelation(RefIIR)
	st, err := iir.StateAtSat("R134a", 273.15, 0)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, st.EnthalpyKJkg, 1e-9)
	assert.InDelta(t, 1.0, st.EntropyKJkgK, 1e-9)

	// ASHRAE: saturated liquid at -40 °C has h = 0, s = 0.
	ash := NewCorrelation(RefASHRAE)
	st, err = ash.StateAtSat("R134a", 233.15, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, st.EnthalpyKJkg, 1e-9)
	assert.InDelta(t, 0.0, st.EntropyKJkgK, 1e-9)

	// NBP: saturated liquid at the normal boiling point has h = 0, s = 0.
	nbp := NewCorrelation(RefNBP)
	st, err = nbp.StateAtSat("R134a", catalog["R134a"].tbK, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, st.EnthalpyKJkg, 1e-9)
	assert.InDelta(t, 0.0, st.EntropyKJkgK, 1e-9)
}

func TestCorrelation_ReferenceStateShiftsDifferencesInvariant(t *testing.T) {
	// Absolute h/s move with the reference state, differences must not.
	const tk = 263.15
	iir := NewCorrelation(RefIIR)
	ash := NewCorrelation(RefASHRAE)

	liqI, err := iir.StateAtSat("R22", tk, 0)
	require.NoError(t, err)
	vapI, err := iir.StateAtSat("R22", tk, 1)
	require.NoError(t, err)
	liqA, err := ash.StateAtSat("R22", tk, 0)
	require.NoError(t, err)
	vapA, err := ash.StateAtSat("R22", tk, 1)
	require.NoError(t, err)

	assert.Greater(t, math.Abs(liqI.EnthalpyKJkg-liqA.EnthalpyKJkg), 1.0)
	assert.InDelta(t, vapI.EnthalpyKJkg-liqI.EnthalpyKJkg, vapA.EnthalpyKJkg-liqA.EnthalpyKJkg, 1e-9)
	assert.InDelta(t, vapI.EntropyKJkgK-liqI.EntropyKJkgK, vapA.EntropyKJkgK-liqA.EntropyKJkgK, 1e-9)
}

func TestCorrelation_NewFallsBackToIIR(t *testing.T) {
	p := NewCorrelation(RefState("bogus"))
	assert.Equal(t, RefIIR, p.RefState())
}

func TestCorrelation_SatVaporAboveSatLiquid(t *testing.T) {
	p := NewCorrelation(RefIIR)
	for _, fl := range p.Fluids() {
		tMin, tMax, err := p.SaturationLimits(fl)
		require.NoError(t, err)
		for tk := tMin; tk <= tMax; tk += 10 {
			liq, err := p.StateAtSat(fl, tk, 0)
			require.NoError(t, err)
			vap, err := p.StateAtSat(fl, tk, 1)
			require.NoError(t, err)
			assert.Greater(t, vap.EnthalpyKJkg, liq.EnthalpyKJkg, "%s at %.1f K", fl, tk)
			assert.Greater(t, vap.EntropyKJkgK, liq.EntropyKJkgK, "%s at %.1f K", fl, tk)
			assert.Equal(t, liq.PressKPa, vap.PressKPa)
		}
	}
}

func TestCorrelation_StateAtSat_QualityBounds(t *testing.T) {
	p := NewCorrelation(RefIIR)
	_, err := p.StateAtSat("R134a", 263.15, -0.1)
	require.ErrorIs(t, err, ErrPropertyLookup)
	_, err = p.StateAtSat("R134a", 263.15, 1.1)
	require.ErrorIs(t, err, ErrPropertyLookup)

	mid, err := p.StateAtSat("R134a", 263.15, 0.5)
	require.NoError(t, err)
	liq, _ := p.StateAtSat("R134a", 263.15, 0)
	vap, _ := p.StateAtSat("R134a", 263.15, 1)
	assert.InDelta(t, (liq.EnthalpyKJkg+vap.EnthalpyKJkg)/2, mid.EnthalpyKJkg, 1e-9)
	assert.True(t, mid.TwoPhase())
}

func TestCorrelation_StateAtPT_Branches(t *testing.T) {
	p := NewCorrelation(RefIIR)
	ps, err := p.SaturationPressure("R134a", 263.15)
	require.NoError(t, err)

	// On the saturation line PT lands on the dew point.
	onLine, err := p.StateAtPT("R134a", ps, 263.15)
	require.NoError(t, err)
	vap, _ := p.StateAtSat("R134a", 263.15, 1)
	assert.InDelta(t, vap.EnthalpyKJkg, onLine.EnthalpyKJkg, 1e-6)
	assert.Equal(t, -1.0, onLine.Quality)

	// Superheated vapor is hotter and carries more enthalpy and entropy.
	sh, err := p.StateAtPT("R134a", ps, 263.15+10)
	require.NoError(t, err)
	assert.Greater(t, sh.EnthalpyKJkg, onLine.EnthalpyKJkg)
	assert.Greater(t, sh.EntropyKJkgK, onLine.EntropyKJkgK)
	assert.False(t, sh.TwoPhase())

	// Subcooled liquid sits below the bubble point.
	liq, _ := p.StateAtSat("R134a", 263.15, 0)
	sc, err := p.StateAtPT("R134a", ps, 263.15-10)
	require.NoError(t, err)
	assert.Less(t, sc.EnthalpyKJkg, liq.EnthalpyKJkg)
	assert.Equal(t, -1.0, sc.Quality)
}

func TestCorrelation_StateAtPH_RoundTripAndQuality(t *testing.T) {
	p := NewCorrelation(RefIIR)
	ps, err := p.SaturationPressure("R134a", 263.15)
	require.NoError(t, err)

	// Superheated: h -> T must invert the T -> h lookup.
	sh, err := p.StateAtPT("R134a", ps, 263.15+15)
	require.NoError(t, err)
	back, err := p.StateAtPH("R134a", ps, sh.EnthalpyKJkg)
	require.NoError(t, err)
	assert.InDelta(t, sh.TempK, back.TempK, 1e-9)
	assert.Equal(t, sh.EnthalpyKJkg, back.EnthalpyKJkg, "PH must return the requested enthalpy verbatim")
	assert.InDelta(t, sh.EntropyKJkgK, back.EntropyKJkgK, 1e-9)

	// Inside the dome: quality interpolates linearly in h.
	liq, _ := p.StateAtSat("R134a", 263.15, 0)
	vap, _ := p.StateAtSat("R134a", 263.15, 1)
	h := liq.EnthalpyKJkg + 0.25*(vap.EnthalpyKJkg-liq.EnthalpyKJkg)
	tp, err := p.StateAtPH("R134a", ps, h)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, tp.Quality, 1e-9)
	assert.InDelta(t, 263.15, tp.TempK, 1e-6)

	// Subcooled liquid branch.
	sc, err := p.StateAtPH("R134a", ps, liq.EnthalpyKJkg-20)
	require.NoError(t, err)
	assert.Less(t, sc.TempK, 263.15)
	assert.Equal(t, -1.0, sc.Quality)
}

func TestCorrelation_StateAtPS_IsentropicLookup(t *testing.T) {
	p := NewCorrelation(RefIIR)
	pEvap, err := p.SaturationPressure("R134a", 263.15)
	require.NoError(t, err)
	pCond, err := p.SaturationPressure("R134a", 313.15)
	require.NoError(t, err)

	// Compressor path: superheated vapor at low pressure moved isentropically
	// to high pressure must come out hotter and with more enthalpy.
	st1, err := p.StateAtPT("R134a", pEvap, 263.15+5)
	require.NoError(t, err)
	st2s, err := p.StateAtPS("R134a", pCond, st1.EntropyKJkgK)
	require.NoError(t, err)
	assert.Equal(t, st1.EntropyKJkgK, st2s.EntropyKJkgK, "PS must return the requested entropy verbatim")
	assert.Greater(t, st2s.TempK, st1.TempK)
	assert.Greater(t, st2s.EnthalpyKJkg, st1.EnthalpyKJkg)

	// Round trip through PT on the vapor branch.
	back, err := p.StateAtPT("R134a", pCond, st2s.TempK)
	require.NoError(t, err)
	assert.InDelta(t, st2s.EnthalpyKJkg, back.EnthalpyKJkg, 1e-6)

	// Two-phase branch: entropy midway between sf and sg.
	liq, _ := p.StateAtSat("R134a", 263.15, 0)
	vap, _ := p.StateAtSat("R134a", 263.15, 1)
	s := liq.EntropyKJkgK + 0.5*(vap.EntropyKJkgK-liq.EntropyKJkgK)
	tp, err := p.StateAtPS("R134a", pEvap, s)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tp.Quality, 1e-9)
}

func TestCorrelation_WatsonLatentHeatShrinksTowardsCritical(t *testing.T) {
	p := NewCorrelation(RefIIR)
	prev := math.Inf(1)
	for tk := 233.15; tk <= 353.15; tk += 20 {
		liq, err := p.StateAtSat("R134a", tk, 0)
		require.NoError(t, err)
		vap, err := p.StateAtSat("R134a", tk, 1)
		require.NoError(t, err)
		hfg := vap.EnthalpyKJkg - liq.EnthalpyKJkg
		assert.Positive(t, hfg)
		assert.Less(t, hfg, prev, "latent heat must fall as T rises")
		prev = hfg
	}
}
