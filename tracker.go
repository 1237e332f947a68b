package cursor

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds optional Tracker settings. The zero value is ready to use.
type Config struct {
	// Logger receives resolution changes and host anomalies. nil disables
	// logging.
	Logger *zerolog.Logger
	// Debug logs per-frame timing and snapshot sizes at debug level.
	Debug bool
}

// Tracker owns the cursor state and is its only writer. Call Update once per
// frame, after the host has processed window events and before anything
// reads Info.
type Tracker struct {
	info  Info
	snap  Snapshot
	log   zerolog.Logger
	debug bool

	// contested is set while the host reports the pointer in several
	// windows, so the anomaly is logged once per episode.
	contested bool
}

// NewTracker creates a tracker with an empty cursor state.
func NewTracker(cfg Config) *Tracker {
	t := &Tracker{debug: cfg.Debug, log: zerolog.Nop()}
	if cfg.Logger != nil {
		t.log = *cfg.Logger
	}
	return t
}

// Info returns the cursor state. The pointer stays valid for the tracker's
// lifetime; its contents change on every Update.
func (t *Tracker) Info() *Info {
	return &t.info
}

// Update snapshots h, resolves the pointer's window and camera, projects it,
// and replaces the cursor state.
func (t *Tracker) Update(h Host) {
	var stats debugStats
	var t0 time.Time

	if t.debug {
		t0 = time.Now()
	}

	BuildSnapshot(h, &t.snap)

	if t.debug {
		stats.snapshotTime = time.Since(t0)
		stats.windowCount = len(t.snap.Windows)
		stats.cameraCount = len(t.snap.Cameras)
		t0 = time.Now()
	}

	res := Resolve(&t.snap)
	t.checkContested(res)

	if t.debug {
		stats.resolveTime = time.Since(t0)
		t0 = time.Now()
	}

	data, ok := Project(res)

	if t.debug {
		stats.projectTime = time.Since(t0)
		t.debugLog(stats)
	}

	t.set(data, ok)
}

// set replaces the state wholesale.
func (t *Tracker) set(data Data, ok bool) {
	changed := ok != t.info.ok || data != t.info.data
	t.info = Info{
		data:    data,
		ok:      ok,
		changed: changed,
		frame:   t.info.frame + 1,
	}
	if changed {
		t.logChange()
	}
}

func (t *Tracker) checkContested(res Resolution) {
	if res.Contested <= 1 {
		t.contested = false
		return
	}
	if t.contested {
		return
	}
	t.contested = true
	t.log.Warn().
		Int("windows", res.Contested).
		Uint64("chosen_window", uint64(res.Window.ID)).
		Msg("pointer reported inside several windows, using the lowest id")
}
