package resource

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// PrintDetailedMap writes a json dump of the pipe pool and its capability
// limits to writer, for inclusion in bug reports.
func (m *Manager) PrintDetailedMap(writer *jwriter.Writer) {
	m.poolMutex.Lock()
	defer m.poolMutex.Unlock()

	objState := writer.Object()
	defer objState.End()

	generalObj := objState.Name("General").Object()
	generalObj.Name("HWVersion").Int(int(m.hwResInfo.HWVersion))
	generalObj.Name("VIGPipes").Int(int(m.hwResInfo.NumVIGPipe))
	generalObj.Name("RGBPipes").Int(int(m.hwResInfo.NumRGBPipe))
	generalObj.Name("DMAPipes").Int(int(m.hwResInfo.NumDMAPipe))
	generalObj.Name("CursorPipes").Int(int(m.hwResInfo.NumCursorPipe))
	generalObj.Name("BlendingStages").Int(int(m.hwResInfo.NumBlendingStages))
	generalObj.Name("MaxScaleUp").Int(int(m.hwResInfo.MaxScaleUp))
	generalObj.Name("MaxScaleDown").Int(int(m.hwResInfo.MaxScaleDown))
	generalObj.Name("MaxPipeWidth").Int(int(m.hwResInfo.MaxPipeWidth))
	generalObj.Name("BandwidthMode").String(m.bandwidthMode.String())
	generalObj.End()

	m.printDetailedMapPipes(objState)
}

func (m *Manager) printDetailedMapPipes(json jwriter.ObjectState) {
	arrayState := json.Name("Pipes").Array()
	defer arrayState.End()

	for i := range m.srcPipes {
		pipe := &m.srcPipes[i]

		obj := arrayState.Object()
		obj.Name("Type").String(pipe.pipeType.String())
		obj.Name("Id").Int(int(pipe.mdssPipeID))
		obj.Name("Block").Int(int(pipe.hwBlock))
		obj.Name("Priority").Int(pipe.priority)
		obj.Name("LastUsed").Int(int(pipe.lastUsed))
		obj.End()
	}
}
