package props

import (
	"math"
	"sort"
)

// Internal construction frame: IIR convention, saturated liquid at 0 °C has
// h = 200 kJ/kg and s = 1.0 kJ/(kg·K). Other reference states are constant
// offsets from this frame (see RefState).
const (
	refTempK     = 273.15
	refEnthalpy  = 200.0
	refEntropy   = 1.0
	watsonExp    = 0.38
	satTempEps   = 1e-9
	vaporTMargin = 150.0 // superheated lookups allowed up to Tc + margin
)

// fluid holds the correlation coefficients for one refrigerant.
//
// Saturation pressure follows an Antoine-form fit ln(P[kPa]) = A - B/(T[K]+C)
// anchored on published saturation points; latent heat scales from its 0 °C
// value with the Watson relation; liquid and vapor specific heats are treated
// as constant over the validity range.
type fluid struct {
	name   string
	tcK    float64 // critical temperature
	tbK    float64 // normal boiling point (NBP reference state anchor)
	antA   float64
	antB   float64
	antC   float64
	hfgRef float64 // latent heat at 0 °C [kJ/kg]
	cpLiq  float64 // [kJ/(kg·K)]
	cpVap  float64 // [kJ/(kg·K)]
	tMinK  float64
	tMaxK  float64 // saturation lookups only; vapor may run hotter
}

var catalog = map[string]*fluid{
	"R134a": {
		name: "R134a", tcK: 374.21, tbK: 247.08,
		antA: 14.382, antB: 2084.9, antC: -33.56,
		hfgRef: 198.6, cpLiq: 1.40, cpVap: 0.90,
		tMinK: 213.15, tMaxK: 364.0,
	},
	"R22": {
		name: "R22", tcK: 369.30, tbK: 232.35,
		antA: 14.337, antB: 2022.7, antC: -24.23,
		hfgRef: 204.9, cpLiq: 1.17, cpVap: 0.66,
		tMinK: 213.15, tMaxK: 359.0,
	},
	"R32": {
		name: "R32", tcK: 351.26, tbK: 221.50,
		antA: 14.948, antB: 2112.4, antC: -17.02,
		hfgRef: 315.3, cpLiq: 1.93, cpVap: 1.12,
		tMinK: 213.15, tMaxK: 341.0,
	},
	"R410A": {
		name: "R410A", tcK: 344.49, tbK: 221.75,
		antA: 14.861, antB: 2084.9, antC: -18.20,
		hfgRef: 221.8, cpLiq: 1.55, cpVap: 1.00,
		tMinK: 213.15, tMaxK: 334.0,
	},
	"R507A": {
		name: "R507A", tcK: 343.77, tbK: 226.45,
		antA: 14.017, antB: 1807.8, antC: -34.10,
		hfgRef: 164.2, cpLiq: 1.42, cpVap: 0.87,
		tMinK: 213.15, tMaxK: 333.0,
	},
}

// catalogNames returns the supported fluids in stable order.
func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Saturation-line primitives, all in the internal IIR frame.

func (f *fluid) satPressure(tempK float64) float64 {
	return math.Exp(f.antA - f.antB/(tempK+f.antC))
}

func (f *fluid) satTemperature(pressKPa float64) float64 {
	return f.antB/(f.antA-math.Log(pressKPa)) - f.antC
}

func (f *fluid) latentHeat(tempK float64) float64 {
	return f.hfgRef * math.Pow((f.tcK-tempK)/(f.tcK-refTempK), watsonExp)
}

func (f *fluid) liquidEnthalpy(tempK float64) float64 {
	return refEnthalpy + f.cpLiq*(tempK-refTempK)
}

func (f *fluid) liquidEntropy(tempK float64) float64 {
	return refEntropy + f.cpLiq*math.Log(tempK/refTempK)
}

func (f *fluid) vaporEnthalpy(tempK float64) float64 {
	return f.liquidEnthalpy(tempK) + f.latentHeat(tempK)
}

func (f *fluid) vaporEntropy(tempK float64) float64 {
	return f.liquidEntropy(tempK) + f.latentHeat(tempK)/tempK
}

func (f *fluid) satTempInRange(tempK float64) bool {
	return tempK >= f.tMinK && tempK <= f.tMaxK
}

func (f *fluid) pressInRange(pressKPa float64) bool {
	return pressKPa >= f.satPressure(f.tMinK) && pressKPa <= f.satPressure(f.tMaxK)
}

// RefState selects the enthalpy/entropy reference convention. It shifts
// absolute values only; differences (and therefore every cycle metric) are
// unaffected.
type RefState string

const (
	// RefIIR sets h=200 kJ/kg, s=1.0 kJ/(kg·K) for saturated liquid at 0 °C.
	RefIIR RefState = "IIR"
	// RefASHRAE sets h=0, s=0 for saturated liquid at -40 °C.
	RefASHRAE RefState = "ASHRAE"
	// RefNBP sets h=0, s=0 for saturated liquid at the normal boiling point.
	RefNBP RefState = "NBP"
)

// Valid reports whether r names a known reference convention.
func (r RefState) Valid() bool {
	switch r {
	case RefIIR, RefASHRAE, RefNBP:
		return true
	}
	return false
}

// offsets returns the additive enthalpy/entropy shift from the internal IIR
// frame into the convention r for the given fluid.
func (r RefState) offsets(f *fluid) (dh, ds float64) {
	switch r {
	case RefASHRAE:
		const tASHRAE = 233.15
		return -f.liquidEnthalpy(tASHRAE), -f.liquidEntropy(tASHRAE)
	case RefNBP:
		return -f.liquidEnthalpy(f.tbK), -f.liquidEntropy(f.tbK)
	default:
		return 0, 0
	}
}
