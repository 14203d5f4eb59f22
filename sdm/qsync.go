package sdm

// QSyncMode is the client-facing adaptive-sync policy for a display. The mode
// is sticky across frames except for OneShot, which arms for a single commit.
type QSyncMode uint32

const (
	// QSyncModeNone holds the panel at its fixed refresh rate
	QSyncModeNone QSyncMode = iota
	// QSyncModeContinuous lets the panel follow the commit cadence until the
	// mode is changed again
	QSyncModeContinuous
	// QSyncModeOneShot stretches the next commit only and then drops back to
	// QSyncModeNone
	QSyncModeOneShot
	// QSyncModeOneShotContinuous re-arms the one-shot stretch on every commit
	// until the mode is changed again
	QSyncModeOneShotContinuous
)

var qsyncModeMapping = map[QSyncMode]string{
	QSyncModeNone:              "None",
	QSyncModeContinuous:        "Continuous",
	QSyncModeOneShot:           "OneShot",
	QSyncModeOneShotContinuous: "OneShotContinuous",
}

func (m QSyncMode) String() string {
	return qsyncModeMapping[m]
}

// AVRMode maps the client policy onto the hardware programming for one commit.
func (m QSyncMode) AVRMode() HWAVRMode {
	switch m {
	case QSyncModeContinuous:
		return AVRModeContinuous
	case QSyncModeOneShot, QSyncModeOneShotContinuous:
		return AVRModeOneShot
	}
	return AVRModeNone
}
