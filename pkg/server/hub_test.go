package server

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcycle/vcycle/pkg/props"
)

func testHub() *hub {
	return &hub{
		provider: props.NewCorrelation(props.RefIIR),
		cfg:      DefaultConfig(),
		log:      slog.Default(),
	}
}

func validCalc() CalcRequest {
	return CalcRequest{
		Fluid:      "R134a",
		EvapBy:     "temp",
		EvapValue:  -10,
		CondBy:     "temp",
		CondValue:  40,
		SuperheatK: 5,
		SubcoolK:   5,
		Efficiency: 0.8,
	}
}

func TestHandle_Fluids(t *testing.T) {
	h := testHub()
	resp := h.handle(request{Type: "fluids"})
	assert.Equal(t, "fluids", resp.Type)
	assert.Contains(t, resp.Fluids, "R134a")
	assert.Nil(t, resp.Result)
}

func TestHandle_CalcResult(t *testing.T) {
	h := testHub()
	calc := validCalc()
	resp := h.handle(request{Type: "calc", Calc: &calc})

	require.Equal(t, "result", resp.Type, "error: %s", resp.Error)
	require.NotNil(t, resp.Result)
	require.NotNil(t, resp.Diagram)
	assert.Equal(t, "R134a", resp.Result.Fluid)
	assert.Positive(t, resp.Result.COP)
	assert.Len(t, resp.Diagram.BubbleH, DefaultConfig().ChartSamples)
	// browser sends °C; the boundary must have converted
	assert.InDelta(t, 263.15, resp.Result.EvapSatTempK, 1e-9)
}

func TestHandle_CalcWithPressureEntryAndMassFlow(t *testing.T) {
	h := testHub()
	calc := validCalc()
	calc.EvapBy = "press"
	calc.EvapValue = 200.6
	calc.MassFlowKgS = 0.5
	resp := h.handle(request{Type: "calc", Calc: &calc})

	require.Equal(t, "result", resp.Type, "error: %s", resp.Error)
	assert.Positive(t, resp.Result.PowerKW)
	assert.Positive(t, resp.Result.CapacityTons)
}

func TestHandle_Errors(t *testing.T) {
	h := testHub()

	cases := []struct {
		name     string
		req      request
		wantKind string
	}{
		{"unknown type", request{Type: "ping"}, "invalid_input"},
		{"missing payload", request{Type: "calc"}, "invalid_input"},
		{
			"bad saturation kind",
			request{Type: "calc", Calc: func() *CalcRequest { c := validCalc(); c.EvapBy = "enthalpy"; return &c }()},
			"invalid_input",
		},
		{
			"unsupported fluid",
			request{Type: "calc", Calc: func() *CalcRequest { c := validCalc(); c.Fluid = "R744"; return &c }()},
			"invalid_input",
		},
		{
			"condenser below evaporator",
			request{Type: "calc", Calc: func() *CalcRequest { c := validCalc(); c.CondValue = -20; return &c }()},
			"infeasible_cycle",
		},
		{
			"evaporator out of range",
			request{Type: "calc", Calc: func() *CalcRequest { c := validCalc(); c.EvapValue = -150; return &c }()},
			"property_lookup",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := h.handle(c.req)
			assert.Equal(t, "error", resp.Type)
			assert.Equal(t, c.wantKind, resp.Kind)
			assert.NotEmpty(t, resp.Error)
			assert.Nil(t, resp.Result)
		})
	}
}
