package resource

import (
	"log/slog"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

type pipeOwner uint32

const (
	// pipeOwnerUserMode marks a pipe the manager may hand to layers
	pipeOwnerUserMode pipeOwner = iota
	// pipeOwnerKernelMode marks a pipe surrendered to the kernel, which only an
	// explicit driver handoff can return
	pipeOwnerKernelMode
)

type hwBlockType int

const (
	hwBlockBuiltIn hwBlockType = iota
	hwBlockPluggable
	hwBlockVirtual
	hwBlockMax
)

func blockForDisplay(displayType sdm.DisplayType) hwBlockType {
	switch displayType {
	case sdm.DisplayBuiltIn:
		return hwBlockBuiltIn
	case sdm.DisplayPluggable:
		return hwBlockPluggable
	case sdm.DisplayVirtual:
		return hwBlockVirtual
	}
	return hwBlockMax
}

// sourcePipe is the pool's bookkeeping for one physical pipe. hwBlock is
// hwBlockMax while the pipe is free.
type sourcePipe struct {
	pipeType   sdm.PipeType
	owner      pipeOwner
	mdssPipeID uint32
	index      uint32
	hwBlock    hwBlockType
	priority   int
	// lastUsed is the allocation tick stamped when a frame holding this pipe
	// commits, so ties on priority go to the pipe idle the longest
	lastUsed uint64
}

func (p *sourcePipe) resetState() {
	p.hwBlock = hwBlockMax
}

// classSegment locates one pipe class inside the pool slice. Classes are laid
// out contiguously at init.
type classSegment struct {
	start uint32
	count uint32
}

func (m *Manager) segmentFor(pipeType sdm.PipeType) classSegment {
	switch pipeType {
	case sdm.PipeTypeVIG:
		return m.vigSegment
	case sdm.PipeTypeRGB:
		return m.rgbSegment
	case sdm.PipeTypeDMA:
		return m.dmaSegment
	case sdm.PipeTypeCursor:
		return m.cursorSegment
	}
	return classSegment{}
}

// searchPipe acquires the free pipe with the highest priority in the segment
// for the given block, breaking priority ties toward the least recently used
// pipe so wear spreads across frames.
func (m *Manager) searchPipe(block hwBlockType, segment classSegment) (uint32, bool) {
	found := false
	var best uint32

	for i := segment.start; i < segment.start+segment.count; i++ {
		pipe := &m.srcPipes[i]
		if pipe.owner != pipeOwnerUserMode || pipe.hwBlock != hwBlockMax {
			continue
		}
		if !found {
			best = i
			found = true
			continue
		}
		bestPipe := &m.srcPipes[best]
		if pipe.priority > bestPipe.priority ||
			(pipe.priority == bestPipe.priority && pipe.lastUsed < bestPipe.lastUsed) {
			best = i
		}
	}

	if !found {
		return 0, false
	}

	m.srcPipes[best].hwBlock = block
	return best, true
}

func (m *Manager) nextPipe(pipeType sdm.PipeType, block hwBlockType) (uint32, bool) {
	return m.searchPipe(block, m.segmentFor(pipeType))
}

// getPipe walks the capability ladder for a layer: DMA for unscaled RGB, then
// RGB when its class can serve the request, with VIG as the last resort since
// it is the only class that handles video formats.
func (m *Manager) getPipe(block hwBlockType, isYUV bool, needScale bool) (uint32, bool) {
	if isYUV {
		return m.nextPipe(sdm.PipeTypeVIG, block)
	}

	if !needScale {
		if index, ok := m.nextPipe(sdm.PipeTypeDMA, block); ok {
			return index, true
		}
	}

	if !needScale || !m.hwResInfo.HasNonScalarRGB {
		if index, ok := m.nextPipe(sdm.PipeTypeRGB, block); ok {
			return index, true
		}
	}

	return m.nextPipe(sdm.PipeTypeVIG, block)
}

// releaseBlockPipes returns every user-mode pipe held by the block to the free
// state. Kernel-owned pipes are left alone.
func (m *Manager) releaseBlockPipes(block hwBlockType) {
	for i := range m.srcPipes {
		pipe := &m.srcPipes[i]
		if pipe.owner == pipeOwnerUserMode && pipe.hwBlock == block {
			pipe.resetState()
		}
	}
}

func (m *Manager) resourceStateLog() {
	m.logger.Debug("Manager::resourceStateLog")

	for i := range m.srcPipes {
		pipe := &m.srcPipes[i]
		m.logger.Debug("pipe state",
			slog.String("type", pipe.pipeType.String()),
			slog.Uint64("id", uint64(pipe.mdssPipeID)),
			slog.Int("block", int(pipe.hwBlock)),
			slog.Int("priority", pipe.priority),
			slog.Uint64("lastUsed", pipe.lastUsed),
		)
	}
}
