package services

import (
	"context"

	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
)

// SyncSvcFacade replicates the record collection to the remote content store.
type SyncSvcFacade interface {
	// PushToRemote serializes the current collection and upserts it at the
	// configured remote path. Failure is non-fatal to the core: the error is
	// returned for display and the local store is unaffected either way.
	PushToRemote(ctx context.Context, actingUser string) (*dto.SyncPushResult, error)
}
