// Package ecs provides ECS adapters for bounceback's grab and bounce events.
//
// The primary adapter is [NewDonburiStore], which bridges scene events
// (grab start/end, bounce start/complete/cancel) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
