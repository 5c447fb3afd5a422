package cycle

// By selects how a saturation side is specified.
type By int

const (
	// ByTemperature gives the saturation temperature [K].
	ByTemperature By = iota
	// ByPressure gives the absolute pressure [kPa].
	ByPressure
)

// Saturation specifies one side of the cycle (evaporator or condenser) by
// either saturation temperature or absolute pressure.
type Saturation struct {
	By    By      `json:"by"`
	Value float64 `json:"value"`
}

// Inputs are the user-supplied cycle parameters, all in SI units.
// Shells normalize display units before building Inputs.
type Inputs struct {
	Fluid      string     `json:"fluid"`
	Evaporator Saturation `json:"evaporator"`
	Condenser  Saturation `json:"condenser"`

	// SuperheatK is the vapor temperature rise above saturation at the
	// evaporator exit; SubcoolK the liquid drop below saturation at the
	// condenser exit. Both are >= 0.
	SuperheatK float64 `json:"superheat_k"`
	SubcoolK   float64 `json:"subcool_k"`

	// Efficiency is the compressor isentropic efficiency in (0,1].
	Efficiency float64 `json:"efficiency"`

	// MassFlowKgS is optional; when > 0 the result carries absolute power
	// and capacity figures in addition to per-kg quantities.
	MassFlowKgS float64 `json:"mass_flow_kg_s,omitempty"`

	// BalanceTol overrides DefaultBalanceTol when > 0.
	BalanceTol float64 `json:"balance_tol,omitempty"`
}

// StatePoint is one of the four user-visible cycle states.
type StatePoint struct {
	Index        int     `json:"index"` // 1..4
	Label        string  `json:"label"`
	PressKPa     float64 `json:"press_kpa"`
	TempK        float64 `json:"temp_k"`
	EnthalpyKJkg float64 `json:"enthalpy_kj_kg"`
	EntropyKJkgK float64 `json:"entropy_kj_kgk"`
	Quality      float64 `json:"quality"` // -1 outside the dome
}

// Result is the outcome of one cycle computation. It is created fresh per
// call and never mutated afterwards.
type Result struct {
	Fluid  string        `json:"fluid"`
	Points [4]StatePoint `json:"points"`

	// IdealDischargeKJkg is h2s, the isentropic compressor-outlet enthalpy.
	// It is an intermediate of the efficiency calculation, kept for display.
	IdealDischargeKJkg float64 `json:"ideal_discharge_kj_kg"`

	EvapSatTempK float64 `json:"evap_sat_temp_k"`
	CondSatTempK float64 `json:"cond_sat_temp_k"`

	// Per-kg performance.
	WorkKJkg         float64 `json:"work_kj_kg"`
	RefrigEffectKJkg float64 `json:"refrig_effect_kj_kg"`
	HeatRejectKJkg   float64 `json:"heat_reject_kj_kg"`
	COP              float64 `json:"cop"`

	// Absolute performance, populated only when Inputs.MassFlowKgS > 0.
	MassFlowKgS  float64 `json:"mass_flow_kg_s,omitempty"`
	PowerKW      float64 `json:"power_kw,omitempty"`
	CapacityKW   float64 `json:"capacity_kw,omitempty"`
	CapacityTons float64 `json:"capacity_tons,omitempty"`
	HeatRejectKW float64 `json:"heat_reject_kw,omitempty"`
	KWPerTon     float64 `json:"kw_per_ton,omitempty"`
}
