package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vcycle/vcycle/pkg/cycle"
	"github.com/vcycle/vcycle/pkg/props"
	"github.com/vcycle/vcycle/pkg/units"
)

// promptInputs drives the interactive terminal mode: every question re-asks
// until the answer parses and sits inside its allowed range, so the model
// only ever sees well-formed values.
func promptInputs(r io.Reader, w io.Writer, sys units.System, p props.Provider) (cycle.Inputs, error) {
	sc := bufio.NewScanner(r)

	tempUnit, pressUnit, degUnit, flowUnit := "°C", "kPa", "K", "kg/s"
	if sys == units.IP {
		tempUnit, pressUnit, degUnit, flowUnit = "°F", "psia", "°F", "lb/min"
	}

	fluids := p.Fluids()
	fmt.Fprintf(w, "Supported refrigerants: %s\n", strings.Join(fluids, ", "))
	fluid, err := promptChoice(sc, w, "Refrigerant", fluids)
	if err != nil {
		return cycle.Inputs{}, err
	}

	evap, err := promptSide(sc, w, sys, "evaporator", tempUnit, pressUnit)
	if err != nil {
		return cycle.Inputs{}, err
	}
	cond, err := promptSide(sc, w, sys, "condenser", tempUnit, pressUnit)
	if err != nil {
		return cycle.Inputs{}, err
	}

	superheat, err := promptFloat(sc, w, fmt.Sprintf("Superheat [%s] (0-30)", degUnit), 0, 30)
	if err != nil {
		return cycle.Inputs{}, err
	}
	subcool, err := promptFloat(sc, w, fmt.Sprintf("Subcooling [%s] (0-30)", degUnit), 0, 30)
	if err != nil {
		return cycle.Inputs{}, err
	}
	eff, err := promptFloat(sc, w, "Compressor isentropic efficiency (0,1]", 0.01, 1)
	if err != nil {
		return cycle.Inputs{}, err
	}
	massFlow, err := promptFloat(sc, w, fmt.Sprintf("Mass flow [%s] (0 = per-kg only)", flowUnit), 0, 1e6)
	if err != nil {
		return cycle.Inputs{}, err
	}

	if sys == units.IP {
		superheat = units.FDegToKDeg(superheat)
		subcool = units.FDegToKDeg(subcool)
		massFlow = units.LbMinToKgS(massFlow)
	}
	return cycle.Inputs{
		Fluid:       fluid,
		Evaporator:  evap,
		Condenser:   cond,
		SuperheatK:  superheat,
		SubcoolK:    subcool,
		Efficiency:  eff,
		MassFlowKgS: massFlow,
	}, nil
}

func promptSide(sc *bufio.Scanner, w io.Writer, sys units.System, side, tempUnit, pressUnit string) (cycle.Saturation, error) {
	kind, err := promptChoice(sc, w,
		fmt.Sprintf("Specify %s by (1) saturation temperature [%s] or (2) pressure [%s]", side, tempUnit, pressUnit),
		[]string{"1", "2"})
	if err != nil {
		return cycle.Saturation{}, err
	}
	if kind == "1" {
		v, err := promptFloat(sc, w, fmt.Sprintf("%s saturation temperature [%s]", side, tempUnit), -1e6, 1e6)
		if err != nil {
			return cycle.Saturation{}, err
		}
		return cycle.Saturation{By: cycle.ByTemperature, Value: tempToK(sys, v)}, nil
	}
	v, err := promptFloat(sc, w, fmt.Sprintf("%s pressure [%s]", side, pressUnit), 0, 1e6)
	if err != nil {
		return cycle.Saturation{}, err
	}
	return cycle.Saturation{By: cycle.ByPressure, Value: pressToKPa(sys, v)}, nil
}

func promptFloat(sc *bufio.Scanner, w io.Writer, label string, min, max float64) (float64, error) {
	for {
		fmt.Fprintf(w, "%s: ", label)
		if !sc.Scan() {
			return 0, io.ErrUnexpectedEOF
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
		if err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(w, "invalid input, enter a number between %g and %g\n", min, max)
	}
}

func promptChoice(sc *bufio.Scanner, w io.Writer, label string, choices []string) (string, error) {
	for {
		fmt.Fprintf(w, "%s: ", label)
		if !sc.Scan() {
			return "", io.ErrUnexpectedEOF
		}
		got := strings.TrimSpace(sc.Text())
		for _, c := range choices {
			if strings.EqualFold(got, c) {
				return c, nil
			}
		}
		fmt.Fprintf(w, "invalid choice, expected one of: %s\n", strings.Join(choices, ", "))
	}
}
