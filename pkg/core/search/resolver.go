package search

import (
	"context"

	"go.uber.org/zap"
)

// Resolver chains the listing index and the web search. The listing file
// is optional; without one every lookup goes straight to the web.
type Resolver struct {
	listing *ListingIndex
	web     *WebResolver
	log     *zap.Logger
}

// NewResolver builds a resolver. listingPath may be empty; a listing file
// that fails to load is logged and skipped, not fatal.
func NewResolver(listingPath string, log *zap.Logger) *Resolver {
	r := &Resolver{web: NewWebResolver(log), log: log}
	if listingPath == "" {
		return r
	}
	listings, err := LoadListings(listingPath)
	if err != nil {
		log.Warn("listing file unavailable", zap.String("path", listingPath), zap.Error(err))
		return r
	}
	r.listing = NewListingIndex(listings, log)
	log.Info("listing index loaded", zap.Int("listings", len(listings)))
	return r
}

// Resolve maps a free-text name to a six-digit code. Best effort: a false
// positive is possible on ambiguous names.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool) {
	if r.listing != nil {
		if code, ok := r.listing.Lookup(name); ok {
			r.log.Debug("resolved from listing", zap.String("query", name), zap.String("code", code))
			return code, true
		}
	}
	return r.web.Resolve(ctx, name)
}
