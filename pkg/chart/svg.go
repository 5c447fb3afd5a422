package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"
)

// SVG layout margins, px.
const (
	marginLeft   = 64
	marginRight  = 20
	marginTop    = 28
	marginBottom = 46
)

type svgTick struct {
	X, Y  float64
	Label string
}

type svgPoint struct {
	X, Y  float64
	Label string
}

type svgView struct {
	Width, Height int
	Title         string
	Bubble, Dew   string // polyline point lists
	Cycle         string
	Points        []svgPoint
	XTicks        []svgTick
	YTicks        []svgTick
	PlotLeft      int
	PlotTop       int
	PlotRight     int
	PlotBottom    int
}

// RenderSVG writes the diagram as a standalone SVG. Pressure is drawn on a
// log10 axis, enthalpy linear.
func (d *Diagram) RenderSVG(w io.Writer, width, height int) error {
	if width <= 0 {
		width = 720
	}
	if height <= 0 {
		height = 480
	}
	hMin, hMax, lpMin, lpMax := d.bounds()
	plotW := float64(width - marginLeft - marginRight)
	plotH := float64(height - marginTop - marginBottom)

	x := func(h float64) float64 {
		return marginLeft + (h-hMin)/(hMax-hMin)*plotW
	}
	y := func(p float64) float64 {
		return float64(height-marginBottom) - (math.Log10(p)-lpMin)/(lpMax-lpMin)*plotH
	}
	poly := func(hs, ps []float64) string {
		var b strings.Builder
		for i := range hs {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.1f,%.1f", x(hs[i]), y(ps[i]))
		}
		return b.String()
	}

	v := svgView{
		Width:      width,
		Height:     height,
		Title:      fmt.Sprintf("%s pressure-enthalpy diagram", d.Fluid),
		Bubble:     poly(d.BubbleH, d.BubbleP),
		Dew:        poly(d.DewH, d.DewP),
		Cycle:      poly(d.CycleH, d.CycleP),
		PlotLeft:   marginLeft,
		PlotTop:    marginTop,
		PlotRight:  width - marginRight,
		PlotBottom: height - marginBottom,
	}
	for _, pt := range d.Points {
		v.Points = append(v.Points, svgPoint{X: x(pt.HKJkg), Y: y(pt.PressKPa), Label: pt.Name})
	}

	// enthalpy ticks on a round 50 kJ/kg grid
	for h := math.Ceil(hMin/50) * 50; h <= hMax; h += 50 {
		v.XTicks = append(v.XTicks, svgTick{X: x(h), Y: float64(height - marginBottom), Label: fmt.Sprintf("%.0f", h)})
	}
	// pressure ticks at decades and half-decades inside range
	for e := math.Floor(lpMin); e <= lpMax; e++ {
		for _, m := range []float64{1, 3} {
			p := m * math.Pow(10, e)
			lp := math.Log10(p)
			if lp < lpMin || lp > lpMax {
				continue
			}
			v.YTicks = append(v.YTicks, svgTick{X: marginLeft, Y: y(p), Label: fmt.Sprintf("%.0f", p)})
		}
	}
	return svgTpl.Execute(w, v)
}

var svgTpl = template.Must(template.New("ph").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<style>
text{font-family:system-ui,Helvetica,Arial,sans-serif;font-size:11px;fill:#333}
.title{font-size:13px;font-weight:600}
.axis{stroke:#444;stroke-width:1;fill:none}
.grid{stroke:#ddd;stroke-width:0.5}
.dome{stroke:#2b6cb0;stroke-width:1.5;fill:none}
.cycle{stroke:#c53030;stroke-width:2;fill:none}
.pt{fill:#c53030}
</style>
<rect width="{{.Width}}" height="{{.Height}}" fill="#fff"/>
<text class="title" x="{{.PlotLeft}}" y="18">{{.Title}}</text>
{{range .YTicks}}<line class="grid" x1="{{$.PlotLeft}}" y1="{{printf "%.1f" .Y}}" x2="{{$.PlotRight}}" y2="{{printf "%.1f" .Y}}"/>
<text x="{{$.PlotLeft}}" y="{{printf "%.1f" .Y}}" dx="-6" dy="4" text-anchor="end">{{.Label}}</text>
{{end}}{{range .XTicks}}<line class="grid" x1="{{printf "%.1f" .X}}" y1="{{$.PlotTop}}" x2="{{printf "%.1f" .X}}" y2="{{$.PlotBottom}}"/>
<text x="{{printf "%.1f" .X}}" y="{{printf "%.1f" .Y}}" dy="14" text-anchor="middle">{{.Label}}</text>
{{end}}<polyline class="axis" points="{{.PlotLeft}},{{.PlotTop}} {{.PlotLeft}},{{.PlotBottom}} {{.PlotRight}},{{.PlotBottom}}"/>
<polyline class="dome" points="{{.Bubble}}"/>
<polyline class="dome" points="{{.Dew}}"/>
<polyline class="cycle" points="{{.Cycle}}"/>
{{range .Points}}<circle class="pt" cx="{{printf "%.1f" .X}}" cy="{{printf "%.1f" .Y}}" r="3.5"/>
<text x="{{printf "%.1f" .X}}" y="{{printf "%.1f" .Y}}" dx="6" dy="-6">{{.Label}}</text>
{{end}}<text x="{{.PlotRight}}" y="{{.PlotBottom}}" dy="32" text-anchor="end">h [kJ/kg]</text>
<text x="14" y="{{.PlotTop}}" dy="-8">P [kPa]</text>
</svg>
`))
