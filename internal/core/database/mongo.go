package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrEmptyURI = errors.New("mongo uri is empty")

type Opts struct {
	URI               string
	Database          string
	ConnectTimeoutSec int
}

// Connect 建立进程级共享的 mongo 连接（驱动自带连接池），并 ping 一次确认可用
func Connect(ctx context.Context, o Opts) (*mongo.Client, *mongo.Database, error) {
	if o.URI == "" {
		return nil, nil, ErrEmptyURI
	}
	if o.ConnectTimeoutSec <= 0 {
		o.ConnectTimeoutSec = 10
	}

	api := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.ConnectTimeoutSec)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(o.URI).SetServerAPIOptions(api))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(o.Database), nil
}
