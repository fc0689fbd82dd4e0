package article

import "time"

// Article is the single persisted resource of the service. The store's "_id"
// holds the server-minted UUID and is exposed as "id" on the wire.
type Article struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Tags        []string  `json:"tags" bson:"tags"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy so callers never share the tags slice.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	c.Tags = append(make([]string, 0, len(a.Tags)), a.Tags...)
	return &c
}

// Input carries the client-supplied fields of a create or update request.
// Updates replace all three fields; there is no partial merge.
type Input struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        TagsInput `json:"tags"`
}
