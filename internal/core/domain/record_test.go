package domain_test

import (
	"testing"

	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchived_PermissiveTokens(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"Yes", true},
		{"y", true},
		{"Y", true},
		{" true ", true},
		{"", false},
		{"false", false},
		{"0", false},
		{"no", false},
		{"archived", false},
		{"2", false},
	}
	for _, tt := range tests {
		t.Run("token "+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseArchived(tt.in))
		})
	}
}

func TestArchivedFlag_CSVRoundTrip(t *testing.T) {
	var a domain.ArchivedFlag
	require.NoError(t, a.UnmarshalCSV("YES"))
	assert.True(t, bool(a))

	s, err := a.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	require.NoError(t, a.UnmarshalCSV("nope"))
	assert.False(t, bool(a))

	s, err = a.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestDisplayValues_SchemaOrder(t *testing.T) {
	r := domain.TransferRecord{
		RequestDate:    "2024-01-10",
		OrderNumber:    "BJ1001",
		IncorrectStore: "Frankston",
		Status:         "Flagged",
		Archived:       true,
		LastModifiedAt: "2024-01-10T02:00:00Z",
	}

	values := r.DisplayValues()
	require.Len(t, values, 16)
	assert.Equal(t, "2024-01-10", values[0])
	assert.Equal(t, "BJ1001", values[1])
	assert.Equal(t, "Frankston", values[2])
	assert.Equal(t, "Flagged", values[4])
	assert.Equal(t, "true", values[13])
	assert.Equal(t, "2024-01-10T02:00:00Z", values[15])
}
