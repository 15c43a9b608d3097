package domain

import (
	"context"
	"time"
)

// SavedFilter is a named, persisted FilterSpec
type SavedFilter struct {
	Name      string     `json:"name"`
	Spec      FilterSpec `json:"spec"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Repo abstracts saved filter persistence
type Repo interface {
	Upsert(ctx context.Context, name string, spec FilterSpec) error
	Get(ctx context.Context, name string) (SavedFilter, error)
	List(ctx context.Context) ([]SavedFilter, error)
	Delete(ctx context.Context, name string) error
}

// QueryPort receives committed FilterSpecs. The builder hands the spec over
// and moves on, delivery and retries belong to the implementation.
type QueryPort interface {
	Submit(ctx context.Context, spec FilterSpec) error
}
