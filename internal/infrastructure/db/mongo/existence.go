package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExistenceChecker backs the validation engine's is_unique rule. It answers
// existence queries for any collection/field pair; this is a best-effort
// pre-check, the unique indexes remain the authoritative guard.
type ExistenceChecker struct {
	db *mongo.Database
}

func NewExistenceChecker(db *mongo.Database) *ExistenceChecker {
	return &ExistenceChecker{db: db}
}

// ExistsByField reports whether any document in collection has field set to
// value. When excludeID > 0 the document with that _id is ignored, so an
// update does not collide with the record itself.
func (c *ExistenceChecker) ExistsByField(ctx context.Context, collection, field, value string, excludeID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{field: value}
	if excludeID > 0 {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	n, err := c.db.Collection(collection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("exists %s.%s: %w", collection, field, err)
	}
	return n > 0, nil
}
