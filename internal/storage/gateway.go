package storage

import (
	"context"
	"log/slog"
)

// Gateway prefers the primary document store and falls back to the
// file store when the primary is absent or failing. Callers get back
// the location that actually served them and never see a primary
// failure that the fallback absorbed.
type Gateway struct {
	primary  Store // nil when Mongo was never reachable
	fallback Store
	logger   *slog.Logger
}

func NewGateway(primary, fallback Store, logger *slog.Logger) *Gateway {
	return &Gateway{primary: primary, fallback: fallback, logger: logger}
}

// Save writes doc to collection and reports where it landed.
func (g *Gateway) Save(ctx context.Context, collection string, doc interface{}) (string, error) {
	if g.primary != nil {
		err := g.primary.Save(ctx, collection, doc)
		if err == nil {
			return LocationMongo, nil
		}
		g.logger.Warn("primary save failed, falling back to file",
			slog.String("collection", collection),
			slog.String("error", err.Error()))
	}
	if err := g.fallback.Save(ctx, collection, doc); err != nil {
		return "", err
	}
	return LocationFile, nil
}

// List reads the most recent records from whichever backend answers.
func (g *Gateway) List(ctx context.Context, collection, sortKey string, limit int64) ([]Record, string, error) {
	if g.primary != nil {
		docs, err := g.primary.List(ctx, collection, sortKey, limit)
		if err == nil {
			return docs, LocationMongo, nil
		}
		g.logger.Warn("primary list failed, falling back to file",
			slog.String("collection", collection),
			slog.String("error", err.Error()))
	}
	docs, err := g.fallback.List(ctx, collection, sortKey, limit)
	if err != nil {
		return nil, "", err
	}
	return docs, LocationFile, nil
}
