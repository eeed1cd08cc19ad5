// Package mongo backs the durable storage tier with a MongoDB collection.
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		// handle error
//	}
//	coll := client.Database("cloudkit").Collection("kv")
//	durable := mongo.NewStrategy(coll)
package mongo
