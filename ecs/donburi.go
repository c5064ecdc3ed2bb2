package ecs

import (
	"github.com/phanxgames/tiltcard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for card interaction events.
// Subscribe to this in your ECS systems to receive pointer events.
var InteractionEventType = events.NewEventType[tiltcard.InteractionEvent]()

// InteractionState is a component mirroring the card's interaction record.
var InteractionState = donburi.NewComponentType[tiltcard.InteractionState]()

// DonburiStore publishes card events to a Donburi world.
type DonburiStore struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. It also
// creates one entity carrying an InteractionState component, updated on
// every event. Events are queued and consumed with ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:  world,
		entity: world.Create(InteractionState),
	}
}

// Entity returns the entity whose InteractionState tracks the card.
func (s *DonburiStore) Entity() donburi.Entity {
	return s.entity
}

// EmitEvent implements tiltcard.EntityStore.
func (s *DonburiStore) EmitEvent(event tiltcard.InteractionEvent) {
	if entry := s.world.Entry(s.entity); entry.Valid() {
		InteractionState.SetValue(entry, tiltcard.InteractionState{
			Offset:  event.Offset,
			Hovered: event.Hovered,
			Pressed: event.Pressed,
		})
	}
	InteractionEventType.Publish(s.world, event)
}
