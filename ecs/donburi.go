package ecs

import (
	"github.com/phanxgames/patternlock"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LockEventType is the Donburi event type for patternlock events.
var LockEventType = events.NewEventType[patternlock.LockEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued on LockEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) patternlock.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event patternlock.LockEvent) {
	LockEventType.Publish(s.world, event)
}
