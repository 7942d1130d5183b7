package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Opts struct {
	URI               string
	Database          string
	Username          string
	Password          string
	ConnectTimeoutSec int
}

// NewMongo opens the single shared client every repository reuses. The
// Stable API version pin matches what the hosted cluster expects.
func NewMongo(o Opts) (*mongo.Client, *mongo.Database, error) {
	timeout := time.Duration(o.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(o.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	if o.Username != "" {
		opts.SetAuth(options.Credential{Username: o.Username, Password: o.Password})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, client.Database(o.Database), nil
}
