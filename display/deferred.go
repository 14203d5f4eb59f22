package display

import "log/slog"

// deferredConfig shadows a refresh-rate switch that has been accepted but not
// yet pushed to the panel. The client already sees the target config; the
// panel keeps its old timing until the countdown runs out.
type deferredConfig struct {
	dirty       bool
	configIndex uint32
	frameCount  uint32
}

func (c *deferredConfig) stage(configIndex uint32, frames uint32) {
	c.dirty = true
	c.configIndex = configIndex
	c.frameCount = frames
}

// tick consumes one committed frame and reports whether the switch is due.
func (c *deferredConfig) tick() bool {
	if !c.dirty {
		return false
	}
	if c.frameCount > 0 {
		c.frameCount--
	}
	return c.frameCount == 0
}

func (c *deferredConfig) clear() {
	*c = deferredConfig{}
}

func (d *Display) updateDeferCountLocked() {
	if d.deferred.tick() {
		d.applyDeferredConfigLocked()
	}
}

// applyDeferredConfigLocked pushes the staged config to hardware. Members are
// rebound by the reconfigure that follows the next commit.
func (d *Display) applyDeferredConfigLocked() {
	if !d.deferred.dirty {
		return
	}

	index := d.deferred.configIndex
	d.deferred.clear()

	d.logger.Debug("applying deferred config", slog.Int("configIndex", int(index)))

	err := d.hwIntf.SetDisplayAttributes(index)
	if err != nil {
		d.logger.Error("error applying deferred config",
			slog.Int("configIndex", int(index)), slog.Any("error", err))
		return
	}

	d.validated = false
	d.lastFrame.valid = false
}
