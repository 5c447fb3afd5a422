// Package props defines the thermophysical property contract the cycle model
// depends on, plus a built-in closed-form backend.
//
// The Provider interface is the boundary to whatever supplies refrigerant
// properties. Every method is a pure function: the same fluid and state request
// always yields the same answer, and a request outside a fluid's validity
// region fails with an error wrapping ErrPropertyLookup rather than panicking
// or guessing. That makes any backend substitutable without touching pkg/cycle.
//
//   - SaturationPressure / SaturationTemperature walk the saturation line.
//   - StateAtPT / StateAtPH / StateAtPS / StateAtSat resolve a full State
//     (pressure, temperature, enthalpy, entropy, quality) from the two
//     independent variables the cycle actually uses.
//   - Fluids and SaturationLimits expose the catalog so shells can validate
//     input and draw the saturation dome without knowing backend internals.
//
// Units are SI throughout: kelvin, kPa (absolute), kJ/kg, kJ/(kg·K).
// Quality is the vapor mass fraction in [0,1] inside the two-phase dome and
// -1 everywhere else (kept finite so states stay JSON-encodable).
//
// The built-in Correlation backend models each refrigerant with an
// Antoine-form saturation pressure curve, a Watson-scaled latent heat, an
// incompressible liquid and a constant-cp superheated vapor. It is built for
// teaching-scale accuracy (a few kJ/kg against published tables over typical
// refrigeration ranges), not for equipment rating.
package props
