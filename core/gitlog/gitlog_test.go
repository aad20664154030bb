package gitlog

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain runs the parser over raw input and returns all records plus the
// skip count.
func drain(t *testing.T, input string) ([]schema.CommitRecord, int) {
	t.Helper()
	records, finish := Records(Lines([]byte(input)))
	collected := slices.Collect(records)
	return collected, finish()
}

func TestRecordsParsing(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		expectRecord   bool
		expectedAuthor string
		expectedHour   int
		expectedHash   string
	}{
		{
			name:           "three fields without hash",
			line:           "2024-01-01T09:15:00+00:00|Alice|a@x.com",
			expectRecord:   true,
			expectedAuthor: "Alice <a@x.com>",
			expectedHour:   9,
		},
		{
			name:           "four fields with hash",
			line:           "2024-01-01T09:15:00+00:00|Alice|a@x.com|abc1234",
			expectRecord:   true,
			expectedAuthor: "Alice <a@x.com>",
			expectedHour:   9,
			expectedHash:   "abc1234",
		},
		{
			name:           "git default date layout",
			line:           "2024-01-01 09:15:00 +0000|Alice|a@x.com",
			expectRecord:   true,
			expectedAuthor: "Alice <a@x.com>",
			expectedHour:   9,
		},
		{
			name:           "fields are whitespace trimmed",
			line:           "2024-01-01T09:15:00+00:00| Alice | a@x.com ",
			expectRecord:   true,
			expectedAuthor: "Alice <a@x.com>",
			expectedHour:   9,
		},
		{
			name:         "too few fields",
			line:         "2024-01-01T09:15:00+00:00|Alice",
			expectRecord: false,
		},
		{
			name:         "delimiter inside the author name",
			line:         "2024-01-01T09:15:00+00:00|Ali|ce|a@x.com|abc1234",
			expectRecord: false,
		},
		{
			name:         "unparseable timestamp",
			line:         "yesterday|Alice|a@x.com",
			expectRecord: false,
		},
		{
			name:         "empty name and email",
			line:         "2024-01-01T09:15:00+00:00| | ",
			expectRecord: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, skipped := drain(t, tt.line)
			if !tt.expectRecord {
				assert.Empty(t, records)
				assert.Equal(t, 1, skipped)
				return
			}
			require.Len(t, records, 1)
			assert.Zero(t, skipped)
			assert.Equal(t, tt.expectedAuthor, records[0].Author)
			assert.Equal(t, tt.expectedHour, records[0].Timestamp.Hour())
			assert.Equal(t, tt.expectedHash, records[0].Hash)
		})
	}
}

func TestRecordsPreservesOffset(t *testing.T) {
	records, skipped := drain(t, "2024-01-06T01:30:00+13:00|Kiri|k@x.nz")
	require.Len(t, records, 1)
	assert.Zero(t, skipped)

	// The author committed at 01:30 on a Saturday in their own timezone.
	ts := records[0].Timestamp
	assert.Equal(t, 1, ts.Hour())
	assert.Equal(t, 5, schema.ISOWeekday(ts))
	_, offset := ts.Zone()
	assert.Equal(t, 13*3600, offset)
}

func TestRecordsSkipIsolation(t *testing.T) {
	var input string
	for i := range 10 {
		input += fmt.Sprintf("2024-01-01T09:%02d:00+00:00|Alice|a@x.com\n", i)
	}
	input += "this line is garbage\n"

	records, skipped := drain(t, input)
	assert.Len(t, records, 10)
	assert.Equal(t, 1, skipped)
}

func TestRecordsEmptyInput(t *testing.T) {
	records, skipped := drain(t, "")
	assert.Empty(t, records)
	assert.Zero(t, skipped)
}

func TestRecordsBlankLinesAreNotSkips(t *testing.T) {
	records, skipped := drain(t, "2024-01-01T09:15:00+00:00|Alice|a@x.com\n\n\n")
	assert.Len(t, records, 1)
	assert.Zero(t, skipped)
}

func TestRecordsLazyConsumption(t *testing.T) {
	var pulled int
	lines := func(yield func(string) bool) {
		for i := range 1000 {
			pulled++
			if !yield(fmt.Sprintf("2024-01-01T09:%02d:00+00:00|Alice|a@x.com", i%60)) {
				return
			}
		}
	}

	records, _ := Records(lines)
	for range records {
		break
	}

	// Taking one record must not buffer the rest of the input.
	assert.Equal(t, 1, pulled)
}

func TestRecordsSkipCountStopsWithIteration(t *testing.T) {
	input := "garbage one\n" +
		"2024-01-01T09:15:00+00:00|Alice|a@x.com\n" +
		"garbage two\n" +
		"2024-01-02T10:00:00+00:00|Bob|b@x.com\n"

	records, finish := Records(Lines([]byte(input)))
	for range records {
		break // stop after the first record
	}

	// Only the garbage seen before the consumed record is counted.
	assert.Equal(t, 1, finish())
}

func TestTimestampsNewestFirstOrderKept(t *testing.T) {
	input := "2024-01-02T14:00:00+00:00|Bob|b@x.com\n" +
		"2024-01-01T09:15:00+00:00|Alice|a@x.com\n"

	records, _ := drain(t, input)
	require.Len(t, records, 2)
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))
	assert.Equal(t, time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC).Unix(), records[0].Timestamp.Unix())
}
