package resource

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Parikk-Studio/android-hardware-qcom-display/disputils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/internal/utils"
	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// CreateFlags indicate specific manager behaviors to activate or deactivate
type CreateFlags int32

const (
	// ManagerCreateExternallySynchronized ensures that this manager and the pipe pool
	// it owns will not be synchronized internally. The consumer must guarantee that the
	// frame cycle and registration calls are used from only one thread at a time or are
	// synchronized by some other mechanism, but performance may improve because internal
	// mutexes are not used.
	ManagerCreateExternallySynchronized CreateFlags = 1 << iota
)

var createFlagsMapping = map[CreateFlags]string{
	ManagerCreateExternallySynchronized: "ManagerCreateExternallySynchronized",
}

func (f CreateFlags) String() string {
	return createFlagsMapping[f]
}

const (
	// maxDecimationDownScaleRatio is the largest downscale the fetch decimator
	// can contribute on top of the scaler
	maxDecimationDownScaleRatio = 16

	defaultMaxPipeWidth  = 2048
	defaultMaxCursorSize = 128
)

// CreateOptions contains optional settings when creating a Manager
type CreateOptions struct {
	// Flags indicates specific manager behaviors to activate or deactivate
	Flags CreateFlags
}

type hwBlockContext struct {
	inUse bool
}

// displayResourceContext is the per-display state behind the opaque handle
// returned from RegisterDisplay.
type displayResourceContext struct {
	displayID         int32
	displayType       sdm.DisplayType
	displayAttributes sdm.HWDisplayAttributes
	panelInfo         sdm.HWPanelInfo
	mixerAttributes   sdm.HWMixerAttributes
	fbResolution      sdm.Resolution
	hwBlock           hwBlockType
	frameCount        uint64
	maxMixerStages    uint32
}

// Manager arbitrates the fixed pool of source pipes across registered displays
// and derives per-frame pipe programming from submitted stacks.
type Manager struct {
	useMutex bool
	logger   *slog.Logger

	// poolMutex is held from Start to Stop so that exactly one display's frame
	// owns the pool while it is being configured
	poolMutex utils.OptionalMutex

	hwResInfo sdm.HWResourceInfo

	blockCtx [hwBlockMax]hwBlockContext

	srcPipes []sourcePipe
	numPipe  uint32

	vigSegment    classSegment
	rgbSegment    classSegment
	dmaSegment    classSegment
	cursorSegment classSegment

	allocTick uint64

	bandwidthMode sdm.HWBandwidthMode
}

var _ disputils.Validatable = &Manager{}

// NewManager creates a Manager around the capability table reported for one
// hardware unit
//
// logger - Debug logging for the pool and the per-frame configuration pass
//
// hwResourceInfo - The capability table reported by the driver at startup. Zero
// scaling and width limits fall back to conservative defaults.
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewManager(logger *slog.Logger, hwResourceInfo sdm.HWResourceInfo, options CreateOptions) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	useMutex := options.Flags&ManagerCreateExternallySynchronized == 0

	if hwResourceInfo.MaxScaleUp == 0 {
		hwResourceInfo.MaxScaleUp = 1
	}
	if hwResourceInfo.MaxScaleDown == 0 {
		hwResourceInfo.MaxScaleDown = 1
	}
	if hwResourceInfo.MaxPipeWidth == 0 {
		hwResourceInfo.MaxPipeWidth = defaultMaxPipeWidth
	}
	if hwResourceInfo.MaxMixerWidth == 0 {
		hwResourceInfo.MaxMixerWidth = defaultMaxPipeWidth
	}
	if hwResourceInfo.MaxCursorSize == 0 {
		hwResourceInfo.MaxCursorSize = defaultMaxCursorSize
	}

	manager := &Manager{
		useMutex:  useMutex,
		logger:    logger,
		poolMutex: utils.OptionalMutex{UseMutex: useMutex},
		hwResInfo: hwResourceInfo,
	}

	err := manager.initPipePool()
	if err != nil {
		return nil, err
	}

	return manager, nil
}

func (m *Manager) initPipePool() error {
	pipeCaps := m.hwResInfo.PipeCaps
	if len(pipeCaps) == 0 {
		pipeCaps = synthesizePipeCaps(&m.hwResInfo)
	}

	for _, pipeType := range []sdm.PipeType{sdm.PipeTypeVIG, sdm.PipeTypeRGB, sdm.PipeTypeDMA, sdm.PipeTypeCursor} {
		segment := classSegment{start: uint32(len(m.srcPipes))}

		for _, pipeCap := range pipeCaps {
			if pipeCap.Type != pipeType {
				continue
			}
			m.srcPipes = append(m.srcPipes, sourcePipe{
				pipeType:   pipeType,
				owner:      pipeOwnerUserMode,
				mdssPipeID: pipeCap.ID,
				index:      uint32(len(m.srcPipes)),
				hwBlock:    hwBlockMax,
			})
			segment.count++
		}

		switch pipeType {
		case sdm.PipeTypeVIG:
			m.vigSegment = segment
		case sdm.PipeTypeRGB:
			m.rgbSegment = segment
		case sdm.PipeTypeDMA:
			m.dmaSegment = segment
		case sdm.PipeTypeCursor:
			m.cursorSegment = segment
		}
	}

	m.numPipe = uint32(len(m.srcPipes))

	if m.vigSegment.count+m.rgbSegment.count+m.dmaSegment.count == 0 {
		return errors.Wrap(sdm.ErrDriverData, "capability table reports no source pipes")
	}

	// Keep the summary counts consistent with the table we actually built
	m.hwResInfo.NumVIGPipe = m.vigSegment.count
	m.hwResInfo.NumRGBPipe = m.rgbSegment.count
	m.hwResInfo.NumDMAPipe = m.dmaSegment.count
	m.hwResInfo.NumCursorPipe = m.cursorSegment.count

	return nil
}

func synthesizePipeCaps(info *sdm.HWResourceInfo) []sdm.HWPipeCaps {
	pipeCaps := make([]sdm.HWPipeCaps, 0, info.NumVIGPipe+info.NumRGBPipe+info.NumDMAPipe+info.NumCursorPipe)

	var id uint32
	appendClass := func(pipeType sdm.PipeType, count uint32) {
		for i := uint32(0); i < count; i++ {
			pipeCaps = append(pipeCaps, sdm.HWPipeCaps{Type: pipeType, ID: id})
			id++
		}
	}

	appendClass(sdm.PipeTypeVIG, info.NumVIGPipe)
	appendClass(sdm.PipeTypeRGB, info.NumRGBPipe)
	appendClass(sdm.PipeTypeDMA, info.NumDMAPipe)
	appendClass(sdm.PipeTypeCursor, info.NumCursorPipe)

	return pipeCaps
}

func (m *Manager) context(displayCtx sdm.Handle) (*displayResourceContext, error) {
	ctx, ok := displayCtx.(*displayResourceContext)
	if !ok || ctx == nil {
		return nil, errors.Wrap(sdm.ErrParameters, "handle does not belong to this manager")
	}
	return ctx, nil
}

// RegisterDisplay admits a display onto the hardware block matching its type.
// Each block drives at most one display at a time.
func (m *Manager) RegisterDisplay(displayID int32, displayType sdm.DisplayType,
	displayAttributes sdm.HWDisplayAttributes, panelInfo sdm.HWPanelInfo,
	mixerAttributes sdm.HWMixerAttributes, fbResolution sdm.Resolution) (sdm.Handle, error) {

	m.logger.Debug("Manager::RegisterDisplay", slog.Int("displayId", int(displayID)))

	block := blockForDisplay(displayType)
	if block == hwBlockMax {
		return nil, errors.Wrapf(sdm.ErrParameters, "unknown display type %d", displayType)
	}

	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	if m.blockCtx[block].inUse {
		return nil, errors.Wrapf(sdm.ErrResources, "hardware block %d already drives a display", block)
	}

	ctx := &displayResourceContext{
		displayID:         displayID,
		displayType:       displayType,
		displayAttributes: displayAttributes,
		panelInfo:         panelInfo,
		mixerAttributes:   mixerAttributes,
		fbResolution:      fbResolution,
		hwBlock:           block,
		maxMixerStages:    m.hwResInfo.NumBlendingStages,
	}
	m.blockCtx[block].inUse = true

	return ctx, nil
}

// UnregisterDisplay releases the display's pipes and frees its hardware block.
func (m *Manager) UnregisterDisplay(displayCtx sdm.Handle) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	m.logger.Debug("Manager::UnregisterDisplay", slog.Int("displayId", int(ctx.displayID)))

	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	m.releaseBlockPipes(ctx.hwBlock)
	m.blockCtx[ctx.hwBlock].inUse = false
	ctx.hwBlock = hwBlockMax

	return nil
}

// ReconfigureDisplay rebinds the display to new geometry. The next Prepare
// derives pipe programming from the new attributes.
func (m *Manager) ReconfigureDisplay(displayCtx sdm.Handle, displayAttributes sdm.HWDisplayAttributes,
	panelInfo sdm.HWPanelInfo, mixerAttributes sdm.HWMixerAttributes, fbResolution sdm.Resolution) error {

	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	m.logger.Debug("Manager::ReconfigureDisplay", slog.Int("displayId", int(ctx.displayID)))

	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	ctx.displayAttributes = displayAttributes
	ctx.panelInfo = panelInfo
	ctx.mixerAttributes = mixerAttributes
	ctx.fbResolution = fbResolution

	return nil
}

// Start opens a frame for the display and takes ownership of the pool until
// Stop. Displays contending for shared pipes are arbitrated by whoever starts
// first.
func (m *Manager) Start(displayCtx sdm.Handle) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	m.poolMutex.Lock()

	m.logger.Debug("Manager::Start", slog.Int("displayId", int(ctx.displayID)))
	disputils.DebugValidate(m)

	return nil
}

// Stop closes the frame opened by Start and releases pool ownership.
func (m *Manager) Stop(displayCtx sdm.Handle, stack *sdm.DispLayerStack) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	m.logger.Debug("Manager::Stop", slog.Int("displayId", int(ctx.displayID)))
	disputils.DebugValidate(m)

	m.poolMutex.Unlock()

	return nil
}

// Prepare rebuilds the display's pipe assignment for the submitted frame.
// Callers run it inside the Start/Stop bracket. On failure the frame has no
// usable assignment and the caller is expected to fall back to GPU
// composition.
func (m *Manager) Prepare(displayCtx sdm.Handle, stack *sdm.DispLayerStack) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}
	if stack == nil || stack.Stack == nil {
		return errors.Wrap(sdm.ErrParameters, "nil layer stack")
	}

	m.logger.Debug("Manager::Prepare", slog.Int("displayId", int(ctx.displayID)))

	// Assignment is rebuilt from scratch every prepare, so repeating a prepare
	// with the same stack lands on the same pipes.
	m.releaseBlockPipes(ctx.hwBlock)

	return m.config(ctx, stack)
}

// PostPrepare finalizes bookkeeping after the driver accepted the prepared
// frame.
func (m *Manager) PostPrepare(displayCtx sdm.Handle, stack *sdm.DispLayerStack) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	m.logger.Debug("Manager::PostPrepare", slog.Int("displayId", int(ctx.displayID)))
	disputils.DebugValidate(m)

	return nil
}

// Commit checks that the frame about to reach hardware still carries a full
// pipe assignment.
func (m *Manager) Commit(displayCtx sdm.Handle, stack *sdm.DispLayerStack) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}
	if stack == nil {
		return errors.Wrap(sdm.ErrParameters, "nil layer stack")
	}

	m.logger.Debug("Manager::Commit", slog.Int("displayId", int(ctx.displayID)))

	info := &stack.Info
	if len(info.HWLayers) == 0 || len(info.Config) != len(info.HWLayers) {
		return errors.Wrap(sdm.ErrNotValidated, "commit without a prepared frame")
	}
	for i := range info.Config {
		if !info.Config[i].LeftPipe.Valid && !info.Config[i].RightPipe.Valid {
			return errors.Wrapf(sdm.ErrNotValidated, "layer %d has no pipe assignment", i)
		}
	}

	return nil
}

// PostCommit retires the frame. The committed pipes are stamped with the
// current allocation tick so the next frame's tie-breaks rotate away from
// them. Prepares that never commit leave the rotation unchanged.
func (m *Manager) PostCommit(displayCtx sdm.Handle, stack *sdm.DispLayerStack) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	for i := range m.srcPipes {
		pipe := &m.srcPipes[i]
		if pipe.owner == pipeOwnerUserMode && pipe.hwBlock == ctx.hwBlock {
			m.allocTick++
			pipe.lastUsed = m.allocTick
		}
	}

	ctx.frameCount++
	m.logger.Debug("Manager::PostCommit",
		slog.Int("displayId", int(ctx.displayID)),
		slog.Uint64("frameCount", ctx.frameCount),
	)

	return nil
}

// Purge returns every pipe held by the display to the free state. Used at
// teardown and when the display turns off.
func (m *Manager) Purge(displayCtx sdm.Handle) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	m.logger.Debug("Manager::Purge", slog.Int("displayId", int(ctx.displayID)))

	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	m.releaseBlockPipes(ctx.hwBlock)

	return nil
}

// SetMaxMixerStages caps how many layers the display may stage per frame.
func (m *Manager) SetMaxMixerStages(displayCtx sdm.Handle, maxMixerStages uint32) error {
	ctx, err := m.context(displayCtx)
	if err != nil {
		return err
	}

	if m.hwResInfo.NumBlendingStages > 0 && maxMixerStages > m.hwResInfo.NumBlendingStages {
		return errors.Wrapf(sdm.ErrParameters, "%d stages exceed the %d the mixer has",
			maxMixerStages, m.hwResInfo.NumBlendingStages)
	}

	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	ctx.maxMixerStages = maxMixerStages

	return nil
}

// SetMaxBandwidthMode selects which bandwidth budget subsequent frames are
// validated against.
func (m *Manager) SetMaxBandwidthMode(mode sdm.HWBandwidthMode) error {
	if mode > sdm.BandwidthModeHFlip {
		return errors.Wrapf(sdm.ErrParameters, "unknown bandwidth mode %d", mode)
	}

	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	m.bandwidthMode = mode

	return nil
}

// GetScaleLutConfig returns the scaler lookup-table sizes the driver expects
// to be seeded before the first scaled frame.
func (m *Manager) GetScaleLutConfig() (sdm.HWScaleLutInfo, error) {
	return m.hwResInfo.ScaleLutInfo, nil
}

// Validate checks pool invariants. It is called through DebugValidate around
// the frame cycle when the debug build tag is active.
func (m *Manager) Validate() error {
	if uint32(len(m.srcPipes)) != m.numPipe {
		return errors.Errorf("pool holds %d pipes but was built with %d", len(m.srcPipes), m.numPipe)
	}

	type blockID struct {
		block hwBlockType
		id    uint32
	}
	seen := make(map[blockID]bool, len(m.srcPipes))

	for i := range m.srcPipes {
		pipe := &m.srcPipes[i]

		if pipe.index != uint32(i) {
			return errors.Errorf("pipe at position %d carries index %d", i, pipe.index)
		}
		if pipe.owner != pipeOwnerUserMode && pipe.owner != pipeOwnerKernelMode {
			return errors.Errorf("pipe %d has owner %d", i, pipe.owner)
		}
		if pipe.hwBlock < hwBlockBuiltIn || pipe.hwBlock > hwBlockMax {
			return errors.Errorf("pipe %d assigned to block %d", i, pipe.hwBlock)
		}

		if pipe.hwBlock != hwBlockMax {
			key := blockID{block: pipe.hwBlock, id: pipe.mdssPipeID}
			if seen[key] {
				return errors.Errorf("pipe id %d acquired twice on block %d", pipe.mdssPipeID, pipe.hwBlock)
			}
			seen[key] = true
		}
	}

	return nil
}
