package sdm

// PrimariesTransfer names a color space as a primaries and transfer-function
// pair, using the CTA-861 code points.
type PrimariesTransfer struct {
	Primaries uint32
	Transfer  uint32
}

// PccCoeff is one row of a polynomial color-correction matrix.
type PccCoeff struct {
	C float32
	R float32
	G float32
	B float32
}

// PccConfig is the color-correction matrix programmed behind the mixer.
type PccConfig struct {
	Valid bool
	Red   PccCoeff
	Green PccCoeff
	Blue  PccCoeff
}

// ColorMode is one renderable color mode exposed by the color pipeline.
type ColorMode struct {
	Intent     uint32
	BlendSpace PrimariesTransfer
	// HWAssets names the color blocks this mode programs
	HWAssets []string
}

// ColorManager owns the color pipeline of one display.
type ColorManager interface {
	// StcModes lists the modes the pipeline can render
	StcModes() ([]ColorMode, error)
	// SetStcMode makes a mode current; hardware programming lands with the
	// next commit
	SetStcMode(mode ColorMode) error
	// NotifyCalibrationMode tells the pipeline a calibration tool has taken
	// over, suspending mode programming
	NotifyCalibrationMode(inCalibration bool) error
	// NeedsPartialUpdateDisable reports whether pending color programming
	// requires one full-frame refresh
	NeedsPartialUpdateDisable() bool
	// SetLtmPccConfig stages a local tone-mapping correction matrix
	SetLtmPccConfig(config PccConfig) error
}
