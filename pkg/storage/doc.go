// Package storage defines the key-value boundary the SDK persists through,
// plus a typed JSON wrapper and an in-memory backend.
//
// A Strategy is a plain string key-value store. Two tiers back the session
// layer: a durable one that survives restarts (Redis or Mongo adapters live
// in pkg/redis and pkg/mongo) and an ephemeral one scoped to the process
// (MemoryStrategy).
//
// Storage[T] layers JSON serialization and optional key prefixing on top of
// a Strategy:
//
//	durable := storage.NewMemoryStrategy()
//	tokens := storage.New[string](durable, storage.WithPrefix("acme:"))
//	_ = tokens.Set(ctx, "auth_app1", "tok")
package storage
