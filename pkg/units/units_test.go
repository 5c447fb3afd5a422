package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureAnchors(t *testing.T) {
	assert.InDelta(t, 273.15, CToK(0), 1e-12)
	assert.InDelta(t, 273.15, FToK(32), 1e-12)
	assert.InDelta(t, 373.15, FToK(212), 1e-12)
	assert.InDelta(t, 0, KToC(273.15), 1e-12)
	assert.InDelta(t, -40.0, KToF(233.15), 1e-9, "-40 is the same in both scales")

	assert.InDelta(t, 5.0, FDegToKDeg(9), 1e-12)
	assert.InDelta(t, 9.0, KDegToFDeg(5), 1e-12)
}

func TestPressureAnchors(t *testing.T) {
	assert.InDelta(t, 101.325, PsiaToKPa(14.696), 0.01, "one standard atmosphere")
	assert.InDelta(t, 14.696, KPaToPsia(101.325), 0.01)
}

func TestEnergyAndPowerAnchors(t *testing.T) {
	assert.InDelta(t, 2.326, BtuLbToKJkg(1), 1e-12)
	assert.InDelta(t, 1.0, KWToTons(TonRefrigerationKW), 1e-12)
	assert.InDelta(t, 3412.142, KWToBtuHr(1), 1e-9)
	// One ton is 12000 BTU/hr by definition.
	assert.InDelta(t, 12000, KWToBtuHr(TonRefrigerationKW), 1.0)
}

func TestRoundTrips(t *testing.T) {
	for _, v := range []float64{-40, 0.01, 1, 37.5, 1000} {
		assert.InDelta(t, v, KToF(FToK(v)), 1e-9)
		assert.InDelta(t, v, KPaToPsia(PsiaToKPa(v)), 1e-9)
		assert.InDelta(t, v, KJkgToBtuLb(BtuLbToKJkg(v)), 1e-9)
		assert.InDelta(t, v, KJkgKToBtuLbF(BtuLbFToKJkgK(v)), 1e-9)
		assert.InDelta(t, v, KgSToLbMin(LbMinToKgS(v)), 1e-9)
		assert.InDelta(t, v, BtuHrToKW(KWToBtuHr(v)), 1e-9)
	}
}

func TestParseSystem(t *testing.T) {
	for in, want := range map[string]System{"si": SI, "SI": SI, " Si ": SI, "": SI, "ip": IP, "IP": IP} {
		got, err := ParseSystem(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
	_, err := ParseSystem("metric")
	require.Error(t, err)
}

func TestDisplayConversions(t *testing.T) {
	v, label := SI.Temp(273.15)
	assert.InDelta(t, 0, v, 1e-12)
	assert.Equal(t, "°C", label)

	v, label = IP.Temp(273.15)
	assert.InDelta(t, 32, v, 1e-12)
	assert.Equal(t, "°F", label)

	v, label = IP.Press(101.325)
	assert.InDelta(t, 14.696, v, 0.01)
	assert.Equal(t, "psia", label)

	_, label = SI.Enthalpy(100)
	assert.Equal(t, "kJ/kg", label)
	v, label = IP.Enthalpy(2.326)
	assert.InDelta(t, 1, v, 1e-12)
	assert.Equal(t, "BTU/lb", label)

	_, label = SI.Entropy(1)
	assert.Equal(t, "kJ/(kg·K)", label)
	_, label = IP.MassFlow(1)
	assert.Equal(t, "lb/min", label)
	v, label = IP.Power(1)
	assert.InDelta(t, 3412.142, v, 1e-6)
	assert.Equal(t, "BTU/hr", label)

	assert.Equal(t, "si", SI.String())
	assert.Equal(t, "ip", IP.String())
}
