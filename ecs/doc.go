// Package ecs bridges patternlock events into an ECS world.
//
// [NewDonburiStore] publishes every recognizer event (stroke start, node
// visited, stroke end, reset) as a typed [Donburi] event. Subscribe to
// [LockEventType] in your systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	widget.Recognizer().SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
