package models

// Entity is implemented by every synchronized domain object. The engine
// relies only on a stable string identifier; payload fields are owned by
// the local store once upserted and are superseded, never merged, by a
// later upsert with the same id.
type Entity interface {
	EntityID() string
}

// Collection names served by the reference feed server and synchronized by
// the client.
const (
	CollectionTopics    = "topics"
	CollectionAuthors   = "authors"
	CollectionResources = "resources"
)
