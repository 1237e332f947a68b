package cursor

import "time"

// debugStats holds per-frame timing and snapshot sizes.
// Only populated when Config.Debug is true.
type debugStats struct {
	snapshotTime time.Duration
	resolveTime  time.Duration
	projectTime  time.Duration
	windowCount  int
	cameraCount  int
}

// debugLog writes the frame's stats at debug level.
func (t *Tracker) debugLog(stats debugStats) {
	if !t.debug {
		return
	}
	t.log.Debug().
		Uint64("frame", t.info.frame+1).
		Dur("snapshot", stats.snapshotTime).
		Dur("resolve", stats.resolveTime).
		Dur("project", stats.projectTime).
		Dur("total", stats.snapshotTime+stats.resolveTime+stats.projectTime).
		Int("windows", stats.windowCount).
		Int("cameras", stats.cameraCount).
		Msg("cursor update")
}

// logChange records the new state after a change.
func (t *Tracker) logChange() {
	d, ok := t.info.Get()
	if !ok {
		t.log.Debug().Msg("cursor left all windows")
		return
	}
	ev := t.log.Debug().
		Uint64("window", uint64(d.Window)).
		Float64("x", d.WindowPosition.X).
		Float64("y", d.WindowPosition.Y)
	if cam, ok := t.info.Camera(); ok {
		ev = ev.Uint64("camera", uint64(cam))
	}
	ev.Msg("cursor changed")
}
