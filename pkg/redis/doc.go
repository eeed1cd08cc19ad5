// Package redis backs the durable storage tier with a Redis server.
//
// It wraps the go-redis client with a retrying Connect helper and a
// storage.Strategy adapter:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		// handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	durable := redis.NewStrategy(client)
package redis
