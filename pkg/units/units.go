// Package units converts between the SI quantities the model computes in
// (K, kPa, kJ/kg, kJ/(kg·K), kg/s, kW) and the IP quantities HVAC practice
// still reports in (°F, psia, BTU/lb, BTU/(lb·°F), lb/min, BTU/hr, tons).
// All conversion happens at the shell boundary; nothing inside pkg/cycle or
// pkg/props ever sees an IP value.
package units

import (
	"fmt"
	"strings"
)

const (
	kPaPerPsi    = 6.894757
	kJkgPerBtuLb = 2.326
	kgSPerLbMin  = 0.45359237 / 60.0
	btuHrPerKW   = 3412.142
	// TonRefrigerationKW is one US ton of refrigeration (12000 BTU/hr).
	TonRefrigerationKW = 3.5168528
)

// Temperature

func CToK(c float64) float64 { return c + 273.15 }
func KToC(k float64) float64 { return k - 273.15 }
func FToK(f float64) float64 { return (f-32.0)*5.0/9.0 + 273.15 }
func KToF(k float64) float64 { return (k-273.15)*9.0/5.0 + 32.0 }

// FDegToKDeg converts a temperature difference (e.g. superheat) from °F to K.
func FDegToKDeg(df float64) float64 { return df * 5.0 / 9.0 }

// KDegToFDeg converts a temperature difference from K to °F.
func KDegToFDeg(dk float64) float64 { return dk * 9.0 / 5.0 }

// Pressure (absolute)

func PsiaToKPa(psia float64) float64 { return psia * kPaPerPsi }
func KPaToPsia(kpa float64) float64  { return kpa / kPaPerPsi }

// Specific energy and entropy

func BtuLbToKJkg(b float64) float64 { return b * kJkgPerBtuLb }
func KJkgToBtuLb(k float64) float64 { return k / kJkgPerBtuLb }

// BtuLbFToKJkgK converts specific entropy BTU/(lb·°F) -> kJ/(kg·K).
func BtuLbFToKJkgK(b float64) float64 { return b * kJkgPerBtuLb * 9.0 / 5.0 }

// KJkgKToBtuLbF converts specific entropy kJ/(kg·K) -> BTU/(lb·°F).
func KJkgKToBtuLbF(k float64) float64 { return k / kJkgPerBtuLb * 5.0 / 9.0 }

// Mass flow and power

func LbMinToKgS(lb float64) float64 { return lb * kgSPerLbMin }
func KgSToLbMin(kg float64) float64 { return kg / kgSPerLbMin }
func KWToBtuHr(kw float64) float64  { return kw * btuHrPerKW }
func BtuHrToKW(b float64) float64   { return b / btuHrPerKW }

// KWToTons converts thermal power to US tons of refrigeration.
func KWToTons(kw float64) float64 { return kw / TonRefrigerationKW }

// System selects the display unit system for shells.
type System int

const (
	SI System = iota
	IP
)

// ParseSystem accepts "si" or "ip" (case-insensitive).
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "si", "":
		return SI, nil
	case "ip":
		return IP, nil
	}
	return SI, fmt.Errorf("units: unknown system %q (want si or ip)", s)
}

func (s System) String() string {
	if s == IP {
		return "ip"
	}
	return "si"
}

// Display conversions: SI model value in, display value + unit label out.

func (s System) Temp(k float64) (float64, string) {
	if s == IP {
		return KToF(k), "°F"
	}
	return KToC(k), "°C"
}

func (s System) Press(kpa float64) (float64, string) {
	if s == IP {
		return KPaToPsia(kpa), "psia"
	}
	return kpa, "kPa"
}

func (s System) Enthalpy(kjkg float64) (float64, string) {
	if s == IP {
		return KJkgToBtuLb(kjkg), "BTU/lb"
	}
	return kjkg, "kJ/kg"
}

func (s System) Entropy(kjkgk float64) (float64, string) {
	if s == IP {
		return KJkgKToBtuLbF(kjkgk), "BTU/(lb·°F)"
	}
	return kjkgk, "kJ/(kg·K)"
}

func (s System) Power(kw float64) (float64, string) {
	if s == IP {
		return KWToBtuHr(kw), "BTU/hr"
	}
	return kw, "kW"
}

func (s System) MassFlow(kgs float64) (float64, string) {
	if s == IP {
		return KgSToLbMin(kgs), "lb/min"
	}
	return kgs, "kg/s"
}
