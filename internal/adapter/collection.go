package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-delta-sync/models"
)

// collectionFeed narrows a [FeedClient] to a single collection and decodes the
// raw payloads it returns into the concrete entity type E.
type collectionFeed[E models.Entity] struct {
	client     FeedClient
	collection string
}

// NewCollectionFeed builds the typed [ChangeFeed] view of collection on top of
// client. One feed client is shared by all collection feeds of a sync client.
func NewCollectionFeed[E models.Entity](client FeedClient, collection string) ChangeFeed[E] {
	return &collectionFeed[E]{client: client, collection: collection}
}

// Changes implements [ChangeFeed].
func (f *collectionFeed[E]) Changes(ctx context.Context, since int64) (models.ChangeList, error) {
	return f.client.Changes(ctx, f.collection, since)
}

// LatestVersion implements [ChangeFeed].
func (f *collectionFeed[E]) LatestVersion(ctx context.Context) (int64, error) {
	return f.client.LatestVersion(ctx, f.collection)
}

// FetchEntities implements [ChangeFeed]. Payload order follows the id order of
// the underlying batch response.
func (f *collectionFeed[E]) FetchEntities(ctx context.Context, ids []string) ([]E, error) {
	raw, err := f.client.FetchEntities(ctx, f.collection, ids)
	if err != nil {
		return nil, err
	}

	entities := make([]E, 0, len(raw))
	for _, payload := range raw {
		var entity E
		if err = json.Unmarshal(payload, &entity); err != nil {
			return nil, fmt.Errorf("decode %s entity: %w", f.collection, err)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}
