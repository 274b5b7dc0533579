package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// opTimeout bounds individual repository operations.
const opTimeout = 10 * time.Second

// Open dials MongoDB, verifies the primary answers a ping, and returns the
// client together with the named database handle. The caller owns the client
// and must Disconnect it on shutdown. A non-positive connectTimeout falls
// back to 10s.
func Open(ctx context.Context, uri, database string, connectTimeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("dial mongodb: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, client.Database(database), nil
}
