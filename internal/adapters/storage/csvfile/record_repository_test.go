package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjtmarts/transfer_tracker_app/internal/adapters/storage/csvfile"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaHeader = "Date of eComm Request,Order Number,In-Correct,Store - Fitment Completed,Status,Date Finance Updated,Amount,Amount Type,Requested By,Reason,Email Subject,Email Body,Email Sent At,Archived,Last Modified By,Last Modified At"

func newRepo(t *testing.T) (repo interface {
	Load(ctx context.Context) ([]domain.TransferRecord, error)
	Save(ctx context.Context, records []domain.TransferRecord) error
	Serialize(records []domain.TransferRecord) ([]byte, error)
}, path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "data", "orders_tracker.csv")
	return csvfile.NewRecordRepository(path), path
}

func TestLoad_InitializesMissingFile(t *testing.T) {
	repo, path := newRepo(t)

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, schemaHeader, strings.TrimRight(string(data), "\r\n"))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	records := []domain.TransferRecord{
		{
			RequestDate:        "2024-01-10",
			OrderNumber:        "BJ1001",
			IncorrectStore:     "Frankston",
			FitmentStore:       "Moorabbin",
			Status:             "Flagged",
			FinanceUpdatedDate: "2024-01-20",
			Amount:             "$1,640.26",
			AmountType:         "To be Paid",
			RequestedBy:        "eComm",
			Reason:             "wrong store, customer said\n\"please fix\"",
			EmailSubject:       "Collect Money from the Store | Credit Note",
			EmailBody:          "Hi Accounts Team,\n\nline two",
			EmailSentAt:        "2024-01-10T02:00:00Z",
			Archived:           false,
			LastModifiedBy:     "jo@bobjane.com.au",
			LastModifiedAt:     "2024-01-10T02:00:00Z",
		},
		{
			OrderNumber: "BJ2002",
			Archived:    true,
		},
	}

	require.NoError(t, repo.Save(ctx, records))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSaveLoad_RoundTripEmptyCollection(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.TransferRecord{}))
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoad_ReconcilesMissingColumnsByName(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	// Legacy partial file: a subset of columns, in a different order, plus an
	// unknown column that must be ignored.
	content := "Status,Order Number,Mystery Column\nFlagged,BJ1001,whatever\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "BJ1001", r.OrderNumber)
	assert.Equal(t, "Flagged", r.Status)
	assert.Equal(t, "", r.RequestDate)
	assert.Equal(t, "", r.Amount)
	assert.Equal(t, "", r.EmailSentAt)
	assert.False(t, bool(r.Archived))
}

func TestLoad_PermissiveArchivedTokens(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	content := "Order Number,Archived\nA,true\nB,YES\nC,1\nD,y\nE,false\nF,\nG,archived\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 7)

	archived := map[string]bool{}
	for _, r := range records {
		archived[r.OrderNumber] = bool(r.Archived)
	}
	assert.True(t, archived["A"])
	assert.True(t, archived["B"])
	assert.True(t, archived["C"])
	assert.True(t, archived["D"])
	assert.False(t, archived["E"])
	assert.False(t, archived["F"])
	assert.False(t, archived["G"])
}

func TestLoad_EmptyFileTreatedAsEmptyCollection(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSerialize_MatchesSavedFile(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()

	records := []domain.TransferRecord{
		{OrderNumber: "BJ1001", RequestDate: "2024-01-10", Status: "Flagged"},
	}
	require.NoError(t, repo.Save(ctx, records))

	serialized, err := repo.Serialize(records)
	require.NoError(t, err)
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, onDisk, serialized)
}

// Two sessions load the same snapshot, mutate independently and save; the
// later save wins in full. Pinning this makes the accepted race explicit.
func TestSave_LastWriteWins(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.TransferRecord{{OrderNumber: "BJ1001"}}))

	sessionA, err := repo.Load(ctx)
	require.NoError(t, err)
	sessionB, err := repo.Load(ctx)
	require.NoError(t, err)

	sessionA = append(sessionA, domain.TransferRecord{OrderNumber: "BJ-A"})
	sessionB = append(sessionB, domain.TransferRecord{OrderNumber: "BJ-B"})

	require.NoError(t, repo.Save(ctx, sessionA))
	require.NoError(t, repo.Save(ctx, sessionB))

	final, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, final, 2)
	assert.Equal(t, "BJ1001", final[0].OrderNumber)
	assert.Equal(t, "BJ-B", final[1].OrderNumber) // session A's append is gone
}
