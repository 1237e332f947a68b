package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/cursor"
)

// CursorChanged is published when the cursor state differs from the
// previous frame.
type CursorChanged struct {
	Data     cursor.Data
	InWindow bool
	Frame    uint64
}

// CursorChangedEvent is the Donburi event type for cursor changes. Events are
// queued; call ProcessEvents (or events.ProcessAllEvents) to deliver them.
var CursorChangedEvent = events.NewEventType[CursorChanged]()

// System runs a cursor.Tracker over a world.
type System struct {
	world   donburi.World
	host    *Host
	tracker *cursor.Tracker
	entity  donburi.Entity
}

// NewSystem creates the system and the cursor singleton entity.
func NewSystem(world donburi.World, cfg cursor.Config) *System {
	return &System{
		world:   world,
		host:    NewHost(world),
		tracker: cursor.NewTracker(cfg),
		entity:  world.Create(CursorComponent),
	}
}

// Entity returns the singleton entity carrying CursorComponent.
func (s *System) Entity() donburi.Entity {
	return s.entity
}

// Info returns the tracker's cursor state.
func (s *System) Info() *cursor.Info {
	return s.tracker.Info()
}

// Update resolves the cursor for this frame, stores it on the singleton and
// publishes CursorChangedEvent if it changed.
func (s *System) Update() {
	s.tracker.Update(s.host)
	info := s.tracker.Info()
	data, ok := info.Get()

	if s.world.Valid(s.entity) {
		CursorComponent.SetValue(s.world.Entry(s.entity), CursorState{Data: data, InWindow: ok})
	}
	if info.Changed() {
		CursorChangedEvent.Publish(s.world, CursorChanged{Data: data, InWindow: ok, Frame: info.Frame()})
	}
}
