package display

import (
	"fmt"
	"strings"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/Parikk-Studio/android-hardware-qcom-display/sdm"
)

// Dump returns a human-readable snapshot of the session for bug reports.
func (d *Display) Dump() string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	var builder strings.Builder

	fmt.Fprintf(&builder, "display %d (%s) state=%s active=%t frames=%d\n",
		d.displayID, d.displayType, d.state, d.active, d.frameCount)
	fmt.Fprintf(&builder, "panel %q mode=%s %dx%d config=%d rate=%dHz\n",
		d.panelInfo.PanelName, d.panelInfo.Mode, d.displayAttributes.XPixels,
		d.displayAttributes.YPixels, d.activeConfigIndex, d.currentRefreshRate)
	fmt.Fprintf(&builder, "qsync requested=%s active=%s pendingAvr=%t\n",
		d.qsyncMode, d.activeQsyncMode, d.needsAVRUpdate)
	fmt.Fprintf(&builder, "partial update %s, idle handled=%t, validated=%t\n",
		d.puState, d.handleIdleTimeout, d.validated)

	if d.deferred.dirty {
		fmt.Fprintf(&builder, "deferred switch to config %d in %d frames\n",
			d.deferred.configIndex, d.deferred.frameCount)
	}
	if d.dsiClkHz != 0 {
		fmt.Fprintf(&builder, "dsi bit clock %dHz\n", d.dsiClkHz)
	}

	if d.lastFrame.valid {
		fmt.Fprintf(&builder, "last frame: %d app layers, demura=%t\n",
			d.lastFrame.appLayerCount, d.lastFrame.demuraPresent)
		for i := range d.lastFrame.leftROIs {
			fmt.Fprintf(&builder, "  left roi %d: %s\n", i, d.lastFrame.leftROIs[i].String())
		}
		for i := range d.lastFrame.rightROIs {
			fmt.Fprintf(&builder, "  right roi %d: %s\n", i, d.lastFrame.rightROIs[i].String())
		}
	}

	return builder.String()
}

// DumpJSON writes the same snapshot as a json object.
func (d *Display) DumpJSON(writer *jwriter.Writer) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	objState := writer.Object()
	defer objState.End()

	objState.Name("DisplayId").Int(int(d.displayID))
	objState.Name("Type").String(d.displayType.String())
	objState.Name("State").String(d.state.String())
	objState.Name("Active").Bool(d.active)
	objState.Name("FrameCount").Int(int(d.frameCount))
	objState.Name("Validated").Bool(d.validated)

	panelObj := objState.Name("Panel").Object()
	panelObj.Name("Name").String(d.panelInfo.PanelName)
	panelObj.Name("Mode").String(d.panelInfo.Mode.String())
	panelObj.Name("XPixels").Int(int(d.displayAttributes.XPixels))
	panelObj.Name("YPixels").Int(int(d.displayAttributes.YPixels))
	panelObj.Name("ActiveConfig").Int(int(d.activeConfigIndex))
	panelObj.Name("RefreshRate").Int(int(d.currentRefreshRate))
	panelObj.Name("PartialUpdate").Bool(d.panelInfo.PartialUpdate)
	panelObj.End()

	qsyncObj := objState.Name("Qsync").Object()
	qsyncObj.Name("Requested").String(d.qsyncMode.String())
	qsyncObj.Name("Active").String(d.activeQsyncMode.String())
	qsyncObj.Name("PendingAvrWrite").Bool(d.needsAVRUpdate)
	qsyncObj.End()

	objState.Name("PartialUpdateState").String(d.puState.String())
	objState.Name("IdleHandled").Bool(d.handleIdleTimeout)
	objState.Name("Sampling").String(d.samplingState.String())

	if d.deferred.dirty {
		deferredObj := objState.Name("DeferredConfig").Object()
		deferredObj.Name("ConfigIndex").Int(int(d.deferred.configIndex))
		deferredObj.Name("FramesLeft").Int(int(d.deferred.frameCount))
		deferredObj.End()
	}

	if d.lastFrame.valid {
		d.dumpLastFrame(objState)
	}
}

func (d *Display) dumpLastFrame(json jwriter.ObjectState) {
	frameObj := json.Name("LastFrame").Object()
	defer frameObj.End()

	frameObj.Name("AppLayers").Int(int(d.lastFrame.appLayerCount))
	frameObj.Name("Demura").Bool(d.lastFrame.demuraPresent)

	leftArr := frameObj.Name("LeftROI").Array()
	for i := range d.lastFrame.leftROIs {
		dumpRect(&leftArr, &d.lastFrame.leftROIs[i])
	}
	leftArr.End()

	rightArr := frameObj.Name("RightROI").Array()
	for i := range d.lastFrame.rightROIs {
		dumpRect(&rightArr, &d.lastFrame.rightROIs[i])
	}
	rightArr.End()
}

func dumpRect(array *jwriter.ArrayState, rect *sdm.Rect) {
	obj := array.Object()
	obj.Name("Left").Float64(float64(rect.Left))
	obj.Name("Top").Float64(float64(rect.Top))
	obj.Name("Right").Float64(float64(rect.Right))
	obj.Name("Bottom").Float64(float64(rect.Bottom))
	obj.End()
}
