package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	revokedCollection = "revoked_tokens"

	// revokedTokenTTL matches the token TTL: once the signed token itself has
	// expired the revocation record no longer needs to exist.
	revokedTokenTTL = 24 * time.Hour
)

// BlacklistRepository is the Mongo-backed revocation list. Expiry is handled
// by the TTL index on created_at (see EnsureIndexes); IsRevoked additionally
// filters on the window so an entry past it is never reported as revoked even
// before the TTL monitor sweeps it.
type BlacklistRepository struct {
	coll *mongo.Collection
}

func NewBlacklistRepository(db *mongo.Database) *BlacklistRepository {
	return &BlacklistRepository{coll: db.Collection(revokedCollection)}
}

type revokedToken struct {
	Token     string    `bson:"token"`
	CreatedAt time.Time `bson:"created_at"`
}

// Revoke inserts the token. A duplicate insert is a no-op: the token is
// already denied and logout stays idempotent.
func (r *BlacklistRepository) Revoke(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, revokedToken{Token: token, CreatedAt: time.Now().UTC()})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return storeErr("revoke token", err)
	}
	return nil
}

func (r *BlacklistRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"token":      token,
		"created_at": bson.M{"$gt": time.Now().UTC().Add(-revokedTokenTTL)},
	}
	err := r.coll.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, storeErr("check revoked token", err)
	}
	return true, nil
}
