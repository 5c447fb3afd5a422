package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/vcycle/vcycle/pkg/chart"
	"github.com/vcycle/vcycle/pkg/cycle"
	"github.com/vcycle/vcycle/pkg/props"
	"github.com/vcycle/vcycle/pkg/units"
)

func fmtQuality(q float64) string {
	if q >= 0 && q <= 1 {
		return strconv.FormatFloat(q, 'f', 3, 64)
	}
	return "-"
}

// printResult writes the state-point table and the performance block.
func printResult(out io.Writer, res *cycle.Result, sys units.System, ref props.RefState) {
	_, tU := sys.Temp(0)
	_, pU := sys.Press(0)
	_, hU := sys.Enthalpy(0)
	_, sU := sys.Entropy(0)

	fmt.Fprintf(out, "Refrigerant %s (reference state %s), Tsat evap %.2f %s, Tsat cond %.2f %s\n\n",
		res.Fluid, ref, first(sys.Temp(res.EvapSatTempK)), tU, first(sys.Temp(res.CondSatTempK)), tU)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "STATE\tT (%s)\tP (%s)\th (%s)\ts (%s)\tx\t\n", tU, pU, hU, sU)
	fmt.Fprintln(tw, "-----\t-----\t-----\t-----\t-----\t-\t")
	for _, p := range res.Points {
		fmt.Fprintf(tw, "%d %s\t%.2f\t%.1f\t%.2f\t%.4f\t%s\t\n",
			p.Index, p.Label,
			first(sys.Temp(p.TempK)), first(sys.Press(p.PressKPa)),
			first(sys.Enthalpy(p.EnthalpyKJkg)), first(sys.Entropy(p.EntropyKJkgK)),
			fmtQuality(p.Quality))
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "specific work input:        %.2f %s\n", first(sys.Enthalpy(res.WorkKJkg)), hU)
	fmt.Fprintf(out, "refrigeration effect:       %.2f %s\n", first(sys.Enthalpy(res.RefrigEffectKJkg)), hU)
	fmt.Fprintf(out, "heat rejected:              %.2f %s\n", first(sys.Enthalpy(res.HeatRejectKJkg)), hU)
	fmt.Fprintf(out, "COP:                        %.2f\n", res.COP)
	if res.MassFlowKgS > 0 {
		_, wU := sys.Power(0)
		_, mU := sys.MassFlow(0)
		fmt.Fprintf(out, "mass flow:                  %.3f %s\n", first(sys.MassFlow(res.MassFlowKgS)), mU)
		fmt.Fprintf(out, "compressor power:           %.2f %s (%.2f kW)\n", first(sys.Power(res.PowerKW)), wU, res.PowerKW)
		fmt.Fprintf(out, "cooling capacity:           %.2f %s (%.2f tons)\n", first(sys.Power(res.CapacityKW)), wU, res.CapacityTons)
		fmt.Fprintf(out, "condenser heat rejection:   %.2f %s\n", first(sys.Power(res.HeatRejectKW)), wU)
		fmt.Fprintf(out, "kW per ton:                 %.2f\n", res.KWPerTon)
	}
}

// first drops the unit label from a (value, label) display pair.
func first(v float64, _ string) float64 { return v }

func createArtifact(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func writeCSV(path string, res *cycle.Result, sys units.System) error {
	f, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, tU := sys.Temp(0)
	_, pU := sys.Press(0)
	_, hU := sys.Enthalpy(0)
	_, sU := sys.Entropy(0)
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"state", "label", "t_" + tU, "p_" + pU, "h_" + hU, "s_" + sU, "quality"}); err != nil {
		return err
	}
	for _, p := range res.Points {
		rec := []string{
			strconv.Itoa(p.Index),
			p.Label,
			strconv.FormatFloat(first(sys.Temp(p.TempK)), 'f', 3, 64),
			strconv.FormatFloat(first(sys.Press(p.PressKPa)), 'f', 2, 64),
			strconv.FormatFloat(first(sys.Enthalpy(p.EnthalpyKJkg)), 'f', 3, 64),
			strconv.FormatFloat(first(sys.Entropy(p.EntropyKJkgK)), 'f', 5, 64),
			fmtQuality(p.Quality),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(path string, res *cycle.Result) error {
	f, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func writeSVG(path string, diag *chart.Diagram) error {
	f, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return diag.RenderSVG(f, 720, 480)
}

func writeHTML(path string, res *cycle.Result, diag *chart.Diagram, sys units.System) error {
	f, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var svg bytes.Buffer
	if err := diag.RenderSVG(&svg, 720, 480); err != nil {
		return err
	}

	type pointView struct {
		Index   int
		Label   string
		T, P    float64
		H, S    float64
		Quality string
	}
	type view struct {
		Res    *cycle.Result
		Points []pointView
		TU, PU string
		HU, SU string
		Chart  template.HTML
	}
	v := view{Res: res, Chart: template.HTML(svg.String())}
	_, v.TU = sys.Temp(0)
	_, v.PU = sys.Press(0)
	_, v.HU = sys.Enthalpy(0)
	_, v.SU = sys.Entropy(0)
	for _, p := range res.Points {
		v.Points = append(v.Points, pointView{
			Index:   p.Index,
			Label:   p.Label,
			T:       first(sys.Temp(p.TempK)),
			P:       first(sys.Press(p.PressKPa)),
			H:       first(sys.Enthalpy(p.EnthalpyKJkg)),
			S:       first(sys.Entropy(p.EntropyKJkgK)),
			Quality: fmtQuality(p.Quality),
		})
	}
	return reportTpl.Execute(f, v)
}

var reportTpl = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>vcycle report: {{.Res.Fluid}}</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;font-size:14px;margin:8px 0 16px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
</style>

<h1>Refrigeration cycle report</h1>
<p class="small">{{.Res.Fluid}} &nbsp;|&nbsp; COP {{printf "%.2f" .Res.COP}}</p>

<h2>State points</h2>
<table>
<thead><tr><th>state</th><th>T ({{.TU}})</th><th>P ({{.PU}})</th><th>h ({{.HU}})</th><th>s ({{.SU}})</th><th>x</th></tr></thead>
<tbody>
{{range .Points}}
<tr><td>{{.Index}} {{.Label}}</td><td>{{printf "%.2f" .T}}</td><td>{{printf "%.1f" .P}}</td><td>{{printf "%.2f" .H}}</td><td>{{printf "%.4f" .S}}</td><td>{{.Quality}}</td></tr>
{{end}}
</tbody>
</table>

<h2>Performance</h2>
<ul>
<li>specific work input: {{printf "%.2f" .Res.WorkKJkg}} kJ/kg</li>
<li>refrigeration effect: {{printf "%.2f" .Res.RefrigEffectKJkg}} kJ/kg</li>
<li>heat rejected: {{printf "%.2f" .Res.HeatRejectKJkg}} kJ/kg</li>
<li>COP: {{printf "%.2f" .Res.COP}}</li>
{{if gt .Res.MassFlowKgS 0.0}}
<li>compressor power: {{printf "%.2f" .Res.PowerKW}} kW</li>
<li>cooling capacity: {{printf "%.2f" .Res.CapacityKW}} kW ({{printf "%.2f" .Res.CapacityTons}} tons)</li>
<li>condenser heat rejection: {{printf "%.2f" .Res.HeatRejectKW}} kW</li>
<li>kW per ton: {{printf "%.2f" .Res.KWPerTon}}</li>
{{end}}
</ul>

<h2>Pressure-enthalpy diagram</h2>
{{.Chart}}
</html>
`))
