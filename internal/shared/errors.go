package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Data binding errors
	ErrNotReady          = fmt.Errorf("data binding not ready")
	ErrNoCategory        = fmt.Errorf("no category field bound")
	ErrSourceUnavailable = fmt.Errorf("data source unavailable")
	ErrEmptySource       = fmt.Errorf("data source returned no rows")

	// Host errors
	ErrHostRejected = fmt.Errorf("host rejected selection event")
	ErrTimeout      = fmt.Errorf("operation timed out")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
