package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcycle/vcycle/pkg/chart"
	"github.com/vcycle/vcycle/pkg/cycle"
	"github.com/vcycle/vcycle/pkg/props"
	"github.com/vcycle/vcycle/pkg/server"
	"github.com/vcycle/vcycle/pkg/units"
)

type opts struct {
	// cycle inputs
	fluid     string
	evapTemp  float64
	evapPress float64
	condTemp  float64
	condPress float64
	superheat float64
	subcool   float64
	eff       float64
	massFlow  float64

	// conventions
	unitSys    string
	refState   string
	balanceTol float64

	interactive bool

	// artifacts
	csvPath  string
	jsonPath string
	htmlPath string
	svgPath  string
	chartN   int
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "vcycle",
		Short: "Single-stage vapor-compression refrigeration cycle calculator",
		Long: `vcycle evaluates a single-stage vapor-compression refrigeration cycle:
four state points (evaporator exit, compressor discharge, condenser exit,
evaporator inlet), specific work, refrigeration effect, heat rejection and
COP, plus a pressure-enthalpy diagram.

Either side of the cycle may be given as saturation temperature or absolute
pressure. Units follow --units: si takes °C/kPa/K/kg/s, ip takes
°F/psia/°F/lb-min. Properties come from the built-in correlation backend.

Examples:
  vcycle --fluid R134a --evap-temp -10 --cond-temp 40 --superheat 5 --subcool 5 --eff 0.8
  vcycle --units ip --fluid R22 --evap-press 69 --cond-press 297 --eff 0.72 --svg cycle.svg
  vcycle -I`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&o.fluid, "fluid", "R134a", "refrigerant identifier (see 'vcycle fluids')")
	root.Flags().Float64Var(&o.evapTemp, "evap-temp", 0, "evaporating saturation temperature")
	root.Flags().Float64Var(&o.evapPress, "evap-press", 0, "evaporating (low-side) absolute pressure")
	root.Flags().Float64Var(&o.condTemp, "cond-temp", 0, "condensing saturation temperature")
	root.Flags().Float64Var(&o.condPress, "cond-press", 0, "condensing (high-side) absolute pressure")
	root.Flags().Float64Var(&o.superheat, "superheat", 0, "superheat at evaporator exit")
	root.Flags().Float64Var(&o.subcool, "subcool", 0, "subcooling at condenser exit")
	root.Flags().Float64Var(&o.eff, "eff", 0.7, "compressor isentropic efficiency, fraction in (0,1]")
	root.Flags().Float64Var(&o.massFlow, "mass-flow", 0, "refrigerant mass flow (0 = per-kg results only)")
	root.Flags().StringVar(&o.unitSys, "units", "si", "input/display unit system: si or ip")
	root.Flags().StringVar(&o.refState, "ref-state", "IIR", "enthalpy/entropy reference state: IIR, ASHRAE or NBP")
	root.Flags().Float64Var(&o.balanceTol, "balance-tol", 0, "relative first-law closure tolerance (0 = default)")
	root.Flags().BoolVarP(&o.interactive, "interactive", "I", false, "prompt for every input instead of reading flags")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write state points to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write the full result to JSON file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write an HTML report with the P-h chart")
	root.Flags().StringVar(&o.svgPath, "svg", "", "write the P-h chart as SVG")
	root.Flags().IntVar(&o.chartN, "chart-samples", chart.DefaultSamples, "saturation dome sample count for charts")

	root.AddCommand(fluidsCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error(), "kind", errKind(err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, o opts) error {
	sys, err := units.ParseSystem(o.unitSys)
	if err != nil {
		return err
	}
	ref := props.RefState(strings.ToUpper(o.refState))
	if !ref.Valid() {
		return fmt.Errorf("unknown reference state %q (want IIR, ASHRAE or NBP)", o.refState)
	}
	provider := props.NewCorrelation(ref)

	var in cycle.Inputs
	if o.interactive {
		in, err = promptInputs(os.Stdin, os.Stdout, sys, provider)
	} else {
		in, err = flagInputs(cmd, o, sys)
	}
	if err != nil {
		return err
	}
	in.BalanceTol = o.balanceTol

	res, err := cycle.Compute(provider, in)
	if err != nil {
		return err
	}
	printResult(os.Stdout, res, sys, ref)

	needChart := o.htmlPath != "" || o.svgPath != ""
	var diag *chart.Diagram
	if needChart {
		if diag, err = chart.Build(provider, res, o.chartN); err != nil {
			return err
		}
	}
	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, res, sys); err != nil {
			return err
		}
		slog.Info("wrote csv", "path", o.csvPath)
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, res); err != nil {
			return err
		}
		slog.Info("wrote json", "path", o.jsonPath)
	}
	if o.svgPath != "" {
		if err := writeSVG(o.svgPath, diag); err != nil {
			return err
		}
		slog.Info("wrote svg", "path", o.svgPath)
	}
	if o.htmlPath != "" {
		if err := writeHTML(o.htmlPath, res, diag, sys); err != nil {
			return err
		}
		slog.Info("wrote html", "path", o.htmlPath)
	}
	return nil
}

// flagInputs converts flag values (in the chosen display units) into the SI
// Inputs the model consumes. Exactly one of temperature/pressure must be set
// per cycle side.
func flagInputs(cmd *cobra.Command, o opts, sys units.System) (cycle.Inputs, error) {
	evap, err := sideFromFlags(cmd, sys, "evap-temp", o.evapTemp, "evap-press", o.evapPress)
	if err != nil {
		return cycle.Inputs{}, err
	}
	cond, err := sideFromFlags(cmd, sys, "cond-temp", o.condTemp, "cond-press", o.condPress)
	if err != nil {
		return cycle.Inputs{}, err
	}
	superheat, subcool := o.superheat, o.subcool
	massFlow := o.massFlow
	if sys == units.IP {
		superheat = units.FDegToKDeg(superheat)
		subcool = units.FDegToKDeg(subcool)
		massFlow = units.LbMinToKgS(massFlow)
	}
	return cycle.Inputs{
		Fluid:       o.fluid,
		Evaporator:  evap,
		Condenser:   cond,
		SuperheatK:  superheat,
		SubcoolK:    subcool,
		Efficiency:  o.eff,
		MassFlowKgS: massFlow,
	}, nil
}

func sideFromFlags(cmd *cobra.Command, sys units.System, tempFlag string, tempVal float64, pressFlag string, pressVal float64) (cycle.Saturation, error) {
	hasTemp := cmd.Flags().Changed(tempFlag)
	hasPress := cmd.Flags().Changed(pressFlag)
	switch {
	case hasTemp && hasPress:
		return cycle.Saturation{}, fmt.Errorf("--%s and --%s are mutually exclusive", tempFlag, pressFlag)
	case hasTemp:
		return cycle.Saturation{By: cycle.ByTemperature, Value: tempToK(sys, tempVal)}, nil
	case hasPress:
		return cycle.Saturation{By: cycle.ByPressure, Value: pressToKPa(sys, pressVal)}, nil
	}
	return cycle.Saturation{}, fmt.Errorf("one of --%s or --%s is required (or use --interactive)", tempFlag, pressFlag)
}

func tempToK(sys units.System, v float64) float64 {
	if sys == units.IP {
		return units.FToK(v)
	}
	return units.CToK(v)
}

func pressToKPa(sys units.System, v float64) float64 {
	if sys == units.IP {
		return units.PsiaToKPa(v)
	}
	return v
}

func fluidsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fluids",
		Short: "List supported refrigerants",
		Run: func(*cobra.Command, []string) {
			p := props.NewCorrelation(props.RefIIR)
			for _, f := range p.Fluids() {
				minK, maxK, _ := p.SaturationLimits(f)
				fmt.Printf("%-8s saturation %.1f .. %.1f °C\n", f, units.KToC(minK), units.KToC(maxK))
			}
		},
	}
}

func serveCmd() *cobra.Command {
	var cfgPath, addr, refState string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser UI (dropdowns, table, P-h chart)",
		RunE: func(*cobra.Command, []string) error {
			cfg, err := server.LoadConfig(cfgPath)
			if err != nil {
				slog.Warn("config not loaded, using defaults", "err", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ref := props.RefState(strings.ToUpper(refState))
			if !ref.Valid() {
				return fmt.Errorf("unknown reference state %q", refState)
			}
			s := server.New(cfg, props.NewCorrelation(ref), slog.Default())
			return s.ListenAndServe()
		},
	}
	c.Flags().StringVar(&cfgPath, "config", "", "ini config file (section [server])")
	c.Flags().StringVar(&addr, "addr", "", "listen address override, e.g. :8790")
	c.Flags().StringVar(&refState, "ref-state", "IIR", "enthalpy/entropy reference state")
	return c
}

func errKind(err error) string {
	switch {
	case errors.Is(err, cycle.ErrInvalidInput), errors.Is(err, props.ErrUnknownFluid):
		return "invalid_input"
	case errors.Is(err, cycle.ErrInfeasibleCycle):
		return "infeasible_cycle"
	case errors.Is(err, props.ErrPropertyLookup):
		return "property_lookup"
	case errors.Is(err, cycle.ErrEnergyBalance):
		return "energy_balance"
	}
	return "error"
}
