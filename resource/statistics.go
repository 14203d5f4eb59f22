package resource

import "github.com/Parikk-Studio/android-hardware-qcom-display/sdm"

type ClassStatistics struct {
	TotalPipes    int
	AcquiredPipes int
	KernelPipes   int
}

func (s *ClassStatistics) Clear() {
	s.TotalPipes = 0
	s.AcquiredPipes = 0
	s.KernelPipes = 0
}

func (s *ClassStatistics) AddClassStatistics(other *ClassStatistics) {
	s.TotalPipes += other.TotalPipes
	s.AcquiredPipes += other.AcquiredPipes
	s.KernelPipes += other.KernelPipes
}

func (s *ClassStatistics) FreePipes() int {
	return s.TotalPipes - s.AcquiredPipes - s.KernelPipes
}

type PoolStatistics struct {
	Total  ClassStatistics
	VIG    ClassStatistics
	RGB    ClassStatistics
	DMA    ClassStatistics
	Cursor ClassStatistics

	AllocationTick uint64
}

func (s *PoolStatistics) Clear() {
	s.Total.Clear()
	s.VIG.Clear()
	s.RGB.Clear()
	s.DMA.Clear()
	s.Cursor.Clear()
	s.AllocationTick = 0
}

// CalculatePoolStatistics walks the pipe pool and fills in per-class and
// aggregate acquisition counts.
func (m *Manager) CalculatePoolStatistics(stats *PoolStatistics) {
	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	stats.Clear()

	for i := uint32(0); i < m.numPipe; i++ {
		pipe := &m.srcPipes[i]

		class := m.classStatisticsFor(stats, pipe.pipeType)
		if class == nil {
			continue
		}

		class.TotalPipes++
		if pipe.owner == pipeOwnerKernelMode {
			class.KernelPipes++
		} else if pipe.hwBlock != hwBlockMax {
			class.AcquiredPipes++
		}
	}

	stats.Total.AddClassStatistics(&stats.VIG)
	stats.Total.AddClassStatistics(&stats.RGB)
	stats.Total.AddClassStatistics(&stats.DMA)
	stats.Total.AddClassStatistics(&stats.Cursor)
	stats.AllocationTick = m.allocTick
}

func (m *Manager) classStatisticsFor(stats *PoolStatistics, pipeType sdm.PipeType) *ClassStatistics {
	switch pipeType {
	case sdm.PipeTypeVIG:
		return &stats.VIG
	case sdm.PipeTypeRGB:
		return &stats.RGB
	case sdm.PipeTypeDMA:
		return &stats.DMA
	case sdm.PipeTypeCursor:
		return &stats.Cursor
	}

	return nil
}
