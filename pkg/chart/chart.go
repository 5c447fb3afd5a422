// Package chart builds and renders pressure-enthalpy diagrams: the fluid's
// saturation dome (bubble and dew lines from the property backend) with the
// 1-2-3-4 cycle overlaid, pressure on a logarithmic axis.
package chart

import (
	"fmt"
	"math"

	"github.com/vcycle/vcycle/pkg/cycle"
	"github.com/vcycle/vcycle/pkg/props"
)

// DefaultSamples is the number of saturation-dome sample points per side.
const DefaultSamples = 120

// Point is a labeled cycle state on the diagram.
type Point struct {
	Name     string  `json:"name"`
	HKJkg    float64 `json:"h_kj_kg"`
	PressKPa float64 `json:"press_kpa"`
}

// Diagram is the chart dataset, shell-agnostic: the CLI renders it to SVG,
// the browser shell draws it on a canvas.
type Diagram struct {
	Fluid string `json:"fluid"`

	// Saturation dome, sampled from low temperature towards critical.
	BubbleH []float64 `json:"bubble_h"`
	BubbleP []float64 `json:"bubble_p"`
	DewH    []float64 `json:"dew_h"`
	DewP    []float64 `json:"dew_p"`

	// Closed cycle polyline 1-2-3-4-1 in (h, P).
	CycleH []float64 `json:"cycle_h"`
	CycleP []float64 `json:"cycle_p"`

	Points [4]Point `json:"points"`
}

// Build samples the saturation dome for the result's fluid and lays the cycle
// over it. samples <= 0 falls back to DefaultSamples.
func Build(p props.Provider, res *cycle.Result, samples int) (*Diagram, error) {
	if samples <= 0 {
		samples = DefaultSamples
	}
	tMin, tMax, err := p.SaturationLimits(res.Fluid)
	if err != nil {
		return nil, err
	}
	d := &Diagram{Fluid: res.Fluid}
	step := (tMax - tMin) / float64(samples-1)
	for i := 0; i < samples; i++ {
		t := tMin + float64(i)*step
		liq, err := p.StateAtSat(res.Fluid, t, 0)
		if err != nil {
			return nil, err
		}
		vap, err := p.StateAtSat(res.Fluid, t, 1)
		if err != nil {
			return nil, err
		}
		d.BubbleH = append(d.BubbleH, liq.EnthalpyKJkg)
		d.BubbleP = append(d.BubbleP, liq.PressKPa)
		d.DewH = append(d.DewH, vap.EnthalpyKJkg)
		d.DewP = append(d.DewP, vap.PressKPa)
	}

	for i, pt := range res.Points {
		d.Points[i] = Point{
			Name:     fmt.Sprintf("%d", pt.Index),
			HKJkg:    pt.EnthalpyKJkg,
			PressKPa: pt.PressKPa,
		}
		d.CycleH = append(d.CycleH, pt.EnthalpyKJkg)
		d.CycleP = append(d.CycleP, pt.PressKPa)
	}
	// close the loop back to state 1
	d.CycleH = append(d.CycleH, res.Points[0].EnthalpyKJkg)
	d.CycleP = append(d.CycleP, res.Points[0].PressKPa)
	return d, nil
}

// bounds returns the enthalpy range and log10 pressure range covering the
// dome and the cycle, with display padding.
func (d *Diagram) bounds() (hMin, hMax, lpMin, lpMax float64) {
	hMin, hMax = math.Inf(1), math.Inf(-1)
	pMin, pMax := math.Inf(1), math.Inf(-1)
	scan := func(hs, ps []float64) {
		for i := range hs {
			hMin = math.Min(hMin, hs[i])
			hMax = math.Max(hMax, hs[i])
			pMin = math.Min(pMin, ps[i])
			pMax = math.Max(pMax, ps[i])
		}
	}
	scan(d.BubbleH, d.BubbleP)
	scan(d.DewH, d.DewP)
	scan(d.CycleH, d.CycleP)

	hPad := 0.05 * (hMax - hMin)
	hMin -= hPad
	hMax += hPad
	lpMin = math.Log10(pMin) - 0.08
	lpMax = math.Log10(pMax) + 0.08
	return hMin, hMax, lpMin, lpMax
}
