// Package ecs provides ECS adapters for tiltcard's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges card interaction
// events (enter, leave, move, down, up) into a [Donburi] world as typed
// events and keeps an entity's [InteractionState] component current.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	card.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
