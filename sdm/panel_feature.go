package sdm

// BufferInfo describes a buffer owned by a panel feature, such as a demura
// correction table.
type BufferInfo struct {
	Width  uint32
	Height uint32
	Stride uint32
	Format LayerBufferFormat
	Size   uint32
	FD     int
	ID     uint64
}

// DemuraInputConfig is what the demura feature needs to locate its per-panel
// correction data.
type DemuraInputConfig struct {
	PanelID            uint64
	PanelName          string
	BrightnessBasePath string
}

// DemuraIntf is one bound demura correction instance.
type DemuraIntf interface {
	Init() error
	Deinit() error
	// SetActive enables or pauses correction without releasing the instance
	SetActive(active bool) error
	// CorrectionBuffer returns the table the correction layer fetches from
	CorrectionBuffer() (BufferInfo, error)
}

// SPRInputConfig is what the subpixel-rendering feature needs at bind time.
type SPRInputConfig struct {
	PanelName string
}

// SPRIntf is one bound subpixel-rendering instance.
type SPRIntf interface {
	Init() error
	Deinit() error
	Enabled() (bool, error)
}

// PanelFeatureFactory constructs panel-feature instances for one display.
// Implementations decide whether a real engine or an inert stub backs each
// interface.
type PanelFeatureFactory interface {
	CreateDemuraIntf(config DemuraInputConfig) (DemuraIntf, error)
	CreateSPRIntf(config SPRInputConfig) (SPRIntf, error)
}
