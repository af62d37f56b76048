package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeel-ahmed99/poker-hands/internal/statistics"
	"github.com/adeel-ahmed99/poker-hands/poker"
)

func play(t *testing.T, values ...int) poker.Showdown {
	t.Helper()
	d, err := poker.NewDeal(values)
	require.NoError(t, err)
	return poker.Play(d)
}

func sampleReport(t *testing.T) *Report {
	t.Helper()
	straight := play(t, 1, 15, 13, 46, 23, 37, 51, 2, 31)
	split := play(t, 13, 26, 16, 4, 7, 20, 33, 46, 2)

	var tally statistics.Tally
	tally.Add(straight)
	tally.Add(split)
	tally.AddError()

	return &Report{
		RunID:     "01h2xcejqtf2nbrexx3vqjhp41",
		Generated: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Elapsed:   "3ms",
		Summary:   NewSummary(tally),
		Deals: []Deal{
			NewDeal(1, straight, false),
			NewDeal(2, split, true),
			NewErrorDeal(3, []int{1, 1}, poker.ErrMalformedDeal),
		},
	}
}

func TestEncodeNil(t *testing.T) {
	err := Encode(&strings.Builder{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report is nil")
}

func TestNewDeal(t *testing.T) {
	r := sampleReport(t)

	first := r.Deals[0]
	assert.Equal(t, "A", first.Winner)
	assert.Equal(t, "Straight", first.Category)
	assert.Equal(t, []string{"10D", "11H", "12S", "13C", "1C"}, first.Hand)
	assert.False(t, first.Split)

	second := r.Deals[1]
	assert.Equal(t, "split", second.Winner)
	assert.True(t, second.Split)
	assert.Equal(t, "Four of a Kind", second.Category)

	third := r.Deals[2]
	assert.Empty(t, third.Winner)
	assert.Contains(t, third.Error, "malformed deal")
}

func TestNewSummary(t *testing.T) {
	s := sampleReport(t).Summary
	assert.Equal(t, 3, s.Deals)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 2, s.Showdowns)
	assert.Equal(t, 1, s.WinsA)
	assert.Equal(t, 1, s.Splits)
	assert.InDelta(t, 0.75, s.ScoreA, 1e-9)
	assert.Equal(t, map[string]int{"Straight": 1, "Four of a Kind": 1}, s.Winning)
}

func TestEncodeDecodeKeepsDeals(t *testing.T) {
	r := sampleReport(t)

	data, err := EncodeToBytes(r)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `run_id = "01h2xcejqtf2nbrexx3vqjhp41"`)
	assert.Contains(t, text, "[summary]")
	assert.Contains(t, text, "[[deal]]")
	assert.Equal(t, 3, strings.Count(text, "[[deal]]"))

	back, err := Decode(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, r.RunID, back.RunID)
	assert.True(t, r.Generated.Equal(back.Generated))
	assert.Equal(t, r.Summary, back.Summary)
	require.Len(t, back.Deals, 3)
	assert.Equal(t, r.Deals[0], back.Deals[0])
	assert.Equal(t, r.Deals[2].Error, back.Deals[2].Error)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("run_id = "))
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.toml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, sampleReport(t)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	back, err := Decode(f)
	require.NoError(t, err)
	assert.Len(t, back.Deals, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should be renamed away")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "results.toml"), sampleReport(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
