// Package ecs bridges hud canvas events into a [Donburi] world.
//
// Usage:
//
//	canvas.SetEventStore(ecs.NewDonburiStore(world))
//
// Systems then subscribe to [UIEventType] and drain it with ProcessEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
