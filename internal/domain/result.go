package domain

import "errors"

// ErrInvalidID marks a record identifier that could not be parsed into the
// store's native id type. Handlers map it to 400.
var ErrInvalidID = errors.New("invalid record id")

// Result shapes mirror the document store's write acknowledgements; they go
// out to clients verbatim, so the json keys follow the store convention.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
