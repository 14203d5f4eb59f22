package sdm

// LayerStackFlags summarizes properties of a submitted stack that the
// composition core checks in aggregate rather than per layer.
type LayerStackFlags struct {
	// GeometryChanged indicates at least one layer moved, resized, or changed
	// z-order since the previous frame
	GeometryChanged bool
	// SkipPresent indicates at least one layer carries the Skip flag
	SkipPresent bool
	// SingleBufferedPresent indicates at least one single-buffered layer is in
	// the stack
	SingleBufferedPresent bool
	// CursorPresent indicates a cursor-eligible layer is in the stack
	CursorPresent bool
	// StitchPresent indicates a stitch target accompanies the app layers
	StitchPresent bool
	// DemuraPresent indicates the demura correction layer accompanies the app
	// layers
	DemuraPresent bool
	// NoisePresent indicates the noise dither layer accompanies the app layers
	NoisePresent bool
}

// LayerStack is the unit of work a client submits for one frame. The same
// stack instance flows through Prepare and Commit.
type LayerStack struct {
	Layers []*Layer

	// RetireFence is populated on commit and signals when this frame has been
	// fully replaced on the panel
	RetireFence Fence

	Flags LayerStackFlags

	// BlendCS is the color space the client composed GPU layers in, forwarded
	// to the mixer so hardware blending happens in the same space
	BlendCS PrimariesTransfer
}

// AppLayerCount returns the number of client-owned layers in the stack, not
// counting the target and feature layers appended behind them.
func (s *LayerStack) AppLayerCount() uint32 {
	var count uint32
	for _, layer := range s.Layers {
		switch layer.Composition {
		case CompositionGPUTarget, CompositionStitchTarget, CompositionDemura, CompositionCWBTarget:
		default:
			if !layer.Flags.IsNoise {
				count++
			}
		}
	}
	return count
}
