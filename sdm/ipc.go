package sdm

// IPCBacklightParams mirrors a brightness change to the peer VM.
type IPCBacklightParams struct {
	Brightness float32
	IsPrimary  bool
}

// IPCDisplayConfigParams mirrors the active config to the peer VM.
type IPCDisplayConfigParams struct {
	XPixels     uint32
	YPixels     uint32
	FPS         uint32
	ConfigIndex uint32
	SmartPanel  bool
	IsPrimary   bool
}

// IPCIntf carries display state to a cooperating VM in trusted-UI setups. An
// implementation may drop messages when no peer is attached.
type IPCIntf interface {
	SetBacklightParams(params IPCBacklightParams) error
	SetDisplayConfigParams(params IPCDisplayConfigParams) error
}
