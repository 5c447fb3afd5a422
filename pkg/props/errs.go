package props

import "errors"

var (
	// ErrUnknownFluid indicates the refrigerant identifier is not in the
	// backend's catalog.
	ErrUnknownFluid = errors.New("props: unknown fluid")

	// ErrPropertyLookup indicates the requested state lies outside the
	// backend's validity region for the fluid (temperature, pressure or
	// quality out of range). Requests failing with it are never retried.
	ErrPropertyLookup = errors.New("props: state outside validity region")
)
