package server

import (
	"errors"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/vcycle/vcycle/pkg/chart"
	"github.com/vcycle/vcycle/pkg/cycle"
	"github.com/vcycle/vcycle/pkg/props"
	"github.com/vcycle/vcycle/pkg/units"
)

// CalcRequest is a cycle computation request from the browser. Temperatures
// arrive in °C, pressures in kPa; conversion to the model's SI frame happens
// here at the boundary.
type CalcRequest struct {
	Fluid       string  `json:"fluid"`
	EvapBy      string  `json:"evap_by"` // "temp" or "press"
	EvapValue   float64 `json:"evap_value"`
	CondBy      string  `json:"cond_by"`
	CondValue   float64 `json:"cond_value"`
	SuperheatK  float64 `json:"superheat_k"`
	SubcoolK    float64 `json:"subcool_k"`
	Efficiency  float64 `json:"efficiency"`
	MassFlowKgS float64 `json:"mass_flow_kg_s"`
}

type request struct {
	Type string       `json:"type"`
	Calc *CalcRequest `json:"calc,omitempty"`
}

type response struct {
	Type    string         `json:"type"` // fluids | result | error
	Fluids  []string       `json:"fluids,omitempty"`
	Result  *cycle.Result  `json:"result,omitempty"`
	Diagram *chart.Diagram `json:"diagram,omitempty"`
	Kind    string         `json:"kind,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// hub serves one websocket connection: a read loop feeding handle and a
// write loop serializing replies. Connections share nothing, so concurrent
// clients are independent.
type hub struct {
	conn     *websocket.Conn
	provider props.Provider
	cfg      Config
	log      *slog.Logger
	out      chan response
}

func newHub(conn *websocket.Conn, p props.Provider, cfg Config, log *slog.Logger) *hub {
	return &hub{
		conn:     conn,
		provider: p,
		cfg:      cfg,
		log:      log,
		out:      make(chan response, 4),
	}
}

func (h *hub) run() {
	go h.writeLoop()
	defer close(h.out)
	for {
		var req request
		if err := h.conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("read", "err", err)
			}
			return
		}
		h.out <- h.handle(req)
	}
}

func (h *hub) writeLoop() {
	for reply := range h.out {
		if err := h.conn.WriteJSON(&reply); err != nil {
			h.log.Debug("write", "err", err)
			return
		}
	}
}

// handle maps one request to one reply. Pure apart from provider lookups,
// so it is tested without a connection.
func (h *hub) handle(req request) response {
	switch req.Type {
	case "fluids":
		return response{Type: "fluids", Fluids: h.provider.Fluids()}
	case "calc":
		if req.Calc == nil {
			return response{Type: "error", Kind: "invalid_input", Error: "calc payload missing"}
		}
		return h.calc(*req.Calc)
	default:
		return response{Type: "error", Kind: "invalid_input", Error: "unknown message type " + req.Type}
	}
}

func (h *hub) calc(req CalcRequest) response {
	in, err := toInputs(req)
	if err != nil {
		return errResponse(err)
	}
	res, err := cycle.Compute(h.provider, in)
	if err != nil {
		return errResponse(err)
	}
	diag, err := chart.Build(h.provider, res, h.cfg.ChartSamples)
	if err != nil {
		return errResponse(err)
	}
	return response{Type: "result", Result: res, Diagram: diag}
}

func toInputs(req CalcRequest) (cycle.Inputs, error) {
	evap, err := toSaturation(req.EvapBy, req.EvapValue)
	if err != nil {
		return cycle.Inputs{}, err
	}
	cond, err := toSaturation(req.CondBy, req.CondValue)
	if err != nil {
		return cycle.Inputs{}, err
	}
	return cycle.Inputs{
		Fluid:       req.Fluid,
		Evaporator:  evap,
		Condenser:   cond,
		SuperheatK:  req.SuperheatK,
		SubcoolK:    req.SubcoolK,
		Efficiency:  req.Efficiency,
		MassFlowKgS: req.MassFlowKgS,
	}, nil
}

func toSaturation(by string, value float64) (cycle.Saturation, error) {
	switch by {
	case "temp":
		return cycle.Saturation{By: cycle.ByTemperature, Value: units.CToK(value)}, nil
	case "press":
		return cycle.Saturation{By: cycle.ByPressure, Value: value}, nil
	}
	return cycle.Saturation{}, errors.Join(cycle.ErrInvalidInput,
		errors.New("saturation kind must be temp or press, got "+by))
}

func errResponse(err error) response {
	return response{Type: "error", Kind: errKind(err), Error: err.Error()}
}

// errKind maps the error taxonomy onto wire identifiers the UI switches on.
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
	return "internal"
}
