package repositories

import "context"

// RemoteCommit describes a successful remote upsert.
type RemoteCommit struct {
	SHA     string
	HTMLURL string
}

// RemoteStore is the external version-controlled file store the dataset is
// replicated to. Implementations perform a read-modify-write: fetch the
// current revision token if the file exists, then write conditioned on it.
type RemoteStore interface {
	UpsertFile(ctx context.Context, path string, content []byte, commitMessage string) (*RemoteCommit, error)
}

// EmailMessage is an outbound notification.
type EmailMessage struct {
	To      []string
	Cc      []string
	Subject string
	Body    string
}

// Mailer delivers notification emails. Failures wrap apperrors.ErrDelivery
// and never roll back the record mutation that triggered the send.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// RepositoryProvider holds all outbound dependencies needed by services,
// keeping the service container constructor signature manageable.
type RepositoryProvider struct {
	RecordRepo   RecordRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
	RemoteStore  RemoteStore
	Mailer       Mailer
}
