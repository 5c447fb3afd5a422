package cycle

import "errors"

var (
	// ErrInvalidInput indicates a malformed or out-of-domain user value,
	// detected before any property lookup.
	ErrInvalidInput = errors.New("cycle: invalid input")

	// ErrInfeasibleCycle indicates a thermodynamically impossible request,
	// e.g. condensing pressure not exceeding evaporating pressure.
	ErrInfeasibleCycle = errors.New("cycle: infeasible cycle")

	// ErrEnergyBalance indicates the computed states violate first-law
	// closure beyond tolerance. This points at an inconsistent property
	// backend, not at user input, and is surfaced rather than corrected.
	ErrEnergyBalance = errors.New("cycle: energy balance violated")
)
