package tui

import "errors"

// ErrMissingSessionController is returned when the session controller is not provided.
var ErrMissingSessionController = errors.New("tui: session controller is required")

// ErrMissingGraphService is returned when the graph service is not provided.
var ErrMissingGraphService = errors.New("tui: graph service is required")

// ErrMissingDecorationService is returned when the decoration service is not provided.
var ErrMissingDecorationService = errors.New("tui: decoration service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
