package sdm

import "github.com/cockroachdb/errors"

var (
	// ErrParameters is returned when an operation is handed arguments that fail
	// basic sanity checks, such as an out-of-range config index or a nil layer stack
	ErrParameters = errors.New("invalid parameters")
	// ErrNotSupported is returned when the panel or the driver cannot carry out the
	// requested operation at all, regardless of arguments
	ErrNotSupported = errors.New("operation not supported")
	// ErrResources is returned when a frame cannot be composed because the hardware
	// block has run out of pipes or another fixed resource
	ErrResources = errors.New("insufficient hardware resources")
	// ErrNotValidated is returned from commit paths when no successful Prepare
	// precedes the commit attempt
	ErrNotValidated = errors.New("frame not validated")
	// ErrTimeOut is returned when a hardware or sideband acknowledgement does not
	// arrive within its deadline
	ErrTimeOut = errors.New("operation timed out")
	// ErrDriverData is returned when data read back from the driver or panel is
	// internally inconsistent and cannot be trusted
	ErrDriverData = errors.New("inconsistent driver data")
	// ErrDeferred is returned when an operation was accepted but its hardware
	// effect is postponed to a later frame boundary
	ErrDeferred = errors.New("operation deferred")
	// ErrNoAppLayers is returned from prepare when the incoming stack carries no
	// application layers for this display
	ErrNoAppLayers = errors.New("stack has no app layers")
	// ErrPermission is returned when the display is in a state that forbids the
	// operation, such as a powered-off panel
	ErrPermission = errors.New("operation not permitted")
	// ErrShutDown is returned once a display has been deinitialized and can no
	// longer accept work
	ErrShutDown = errors.New("display has shut down")
	// ErrUndefined is returned for failures that do not map to any other error in
	// this taxonomy
	ErrUndefined = errors.New("undefined failure")
)
