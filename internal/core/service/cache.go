package service

import "context"

// RecordCache abstracts the read-through cache (Redis) used for by-id lookups.
// Get reports a miss with found=false; cache failures are never fatal to the
// request that hits them.
type RecordCache interface {
	Get(ctx context.Context, collection string, id int64, dest any) (bool, error)
	Set(ctx context.Context, collection string, id int64, value any) error
	Invalidate(ctx context.Context, collection string, id int64) error
}
