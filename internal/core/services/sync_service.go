package services

import (
	"context"
	"fmt"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
)

// SyncService replicates the record collection to the remote content store.
// The push is best effort: a remote failure is reported back for display and
// never affects the local store, which stays the source of truth.
type SyncService struct {
	recordRepo repositories.RecordRepositoryFacade
	remote     repositories.RemoteStore
	targetPath string
}

// NewSyncService wires the sync service. remote may be nil when the remote
// target is not configured; pushes then report that instead of failing.
func NewSyncService(recordRepo repositories.RecordRepositoryFacade, remote repositories.RemoteStore, targetPath string) *SyncService {
	return &SyncService{recordRepo: recordRepo, remote: remote, targetPath: targetPath}
}

// PushToRemote serializes the current collection byte-exactly as the record
// store writes it and upserts it at the configured remote path.
func (s *SyncService) PushToRemote(ctx context.Context, actingUser string) (*dto.SyncPushResult, error) {
	if s.remote == nil {
		return &dto.SyncPushResult{Committed: false, Message: "remote sync not configured"}, nil
	}

	records, err := s.recordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	content, err := s.recordRepo.Serialize(records)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize records: %w", err)
	}

	message := fmt.Sprintf("chore: update tracker data (%d records)", len(records))
	commit, err := s.remote.UpsertFile(ctx, s.targetPath, content, message)
	if err != nil {
		// Non-fatal by contract: report the remote failure, local store unaffected.
		return &dto.SyncPushResult{Committed: false, Message: err.Error()}, nil
	}

	return &dto.SyncPushResult{
		Committed: true,
		Message:   "Committed to remote.",
		SHA:       commit.SHA,
		URL:       commit.HTMLURL,
	}, nil
}
