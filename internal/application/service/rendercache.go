package service

import (
	"context"

	"github.com/google/uuid"
)

// RenderCache holds rendered portfolio pages between updates. A nil-safe
// no-op implementation is acceptable; rendering is deterministic, so a miss
// only costs a re-render.
type RenderCache interface {
	Get(ctx context.Context, shareID uuid.UUID) (string, bool)
	Set(ctx context.Context, shareID uuid.UUID, html string)
	Invalidate(ctx context.Context, shareID uuid.UUID)
}
