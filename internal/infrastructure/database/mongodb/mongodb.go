package mongodb

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var lock = &sync.Mutex{}
var db *mongo.Database

// GetDBInstance lazily connects to MongoDB and reuses the handle across calls.
func GetDBInstance(uri string, dbName string) (*mongo.Database, error) {
	if db == nil {
		lock.Lock()
		defer lock.Unlock()

		clientOptions := options.Client().ApplyURI(uri)

		client, err := mongo.Connect(context.TODO(), clientOptions)
		if err != nil {
			return nil, err
		}

		err = client.Ping(context.TODO(), nil)
		if err != nil {
			return nil, err
		}

		db = client.Database(dbName)
	} else {
		log.Info().Str("component", "GetDBInstance").Msg("instance is already created")
	}

	return db, nil
}
