package ecs

import (
	"github.com/phanxgames/bounceback"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for scene events.
// Subscribe to this in your ECS systems to receive grab and bounce events.
var InteractionEventType = events.NewEventType[bounceback.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on InteractionEventType and delivered by
// InteractionEventType.ProcessEvents or events.ProcessAllEvents.
func NewDonburiStore(world donburi.World) bounceback.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event bounceback.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
