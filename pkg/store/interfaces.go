package store

import (
	"context"

	"panomaster/pkg/scene"
)

// SceneStore handles scene preset persistence.
type SceneStore interface {
	GetScene(ctx context.Context, name string) (*scene.Preset, error)
	SaveScene(ctx context.Context, preset *scene.Preset) error
	ListScenes(ctx context.Context) ([]*scene.Preset, error)
	DeleteScene(ctx context.Context, name string) error
}

// Store composes the repository interfaces for full store access.
// Consumers should depend on specific sub-interfaces when possible.
type Store interface {
	SceneStore

	// Close closes the store connection.
	Close() error
}
