// Package cache provides a simple key-value cache interface used for
// scope-keyed memoization.
//
// The package defines two interfaces:
//
//   - [Cache]: Untyped cache storing values as any
//   - [TypedCache]: Generic type-safe wrapper via [NewTyped]
//
// # Implementations
//
// [Mem] is a plain in-memory map guarded by a mutex. It never evicts:
// entries live until they are explicitly deleted. That is the right shape
// for memoizing live actor references per provider scope, where an eviction
// would orphan a running actor.
//
//	c := cache.NewMem()
//	c.Put("scope:abc", ref)
//	if v, ok := c.Get("scope:abc"); ok {
//	    // Use v
//	}
//	c.Delete("scope:abc")
//
// # Type-Safe Usage
//
// Use [NewTyped] for compile-time type safety:
//
//	refs := cache.NewTyped[bind.ActorRef[S]](memCache)
//	refs.Put("scope:abc", ref)
//	if ref, ok := refs.Get("scope:abc"); ok {
//	    // ref is bind.ActorRef[S], no type assertion needed
//	}
package cache
