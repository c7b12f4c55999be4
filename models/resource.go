package models

import "time"

// ResourceKind is the semantic type of a synchronized resource.
type ResourceKind string

// Resource kinds recognized by the catalog.
const (
	ResourceArticle ResourceKind = "article"
	ResourceVideo   ResourceKind = "video"
	ResourceBook    ResourceKind = "book"
	ResourcePodcast ResourceKind = "podcast"
)

// Resource is a synchronized catalog entry pointing at a piece of content.
type Resource struct {
	// ID is the stable identifier assigned by the remote catalog.
	ID string `json:"id"`

	// Title is the human-readable resource name.
	Title string `json:"title"`

	// URL locates the content itself.
	URL string `json:"url"`

	// Kind classifies the resource (article, video, book, podcast).
	Kind ResourceKind `json:"kind"`

	// TopicID optionally links the resource to a topic.
	TopicID string `json:"topic_id,omitempty"`

	// AuthorID optionally links the resource to an author.
	AuthorID string `json:"author_id,omitempty"`

	// UpdatedAt is the remote modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements [Entity].
func (r Resource) EntityID() string {
	return r.ID
}
