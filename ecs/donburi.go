// Package ecs provides ECS adapters for hud.
package ecs

import (
	"github.com/phanxgames/hud"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UIEventType is the Donburi event type for canvas events. Subscribe to it
// in ECS systems to react to clicks, drags, tab changes and activation.
var UIEventType = events.NewEventType[hud.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on UIEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) hud.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event hud.Event) {
	UIEventType.Publish(s.world, event)
}
