package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/racefinder/races"
)

func TestBundled(t *testing.T) {
	records, err := Bundled()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	var withParticipants, withoutParticipants int
	for _, r := range records {
		if r.Participants == nil {
			withoutParticipants++
		} else {
			withParticipants++
		}
	}
	assert.Positive(t, withParticipants)
	assert.Positive(t, withoutParticipants, "bundle carries records with no participant count")

	r := records[0]
	assert.Equal(t, "sf-marathon-2026", r.ID)
	assert.Equal(t, []string{"26.2 mi", "13.1 mi", "5K"}, r.DistanceOptions)
	require.NotNil(t, r.ElevationGain)
	assert.Equal(t, 1200, *r.ElevationGain)
}

func TestBundledBaseSet(t *testing.T) {
	records, err := Bundled()
	require.NoError(t, err)

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	c := races.New(records, races.DefaultBaseFilter, races.WithClock(func() time.Time { return now }))

	for _, r := range c.All() {
		assert.Contains(t, races.DefaultBaseFilter.States, r.State, r.ID)
	}
	_, ok := c.ByID("chicago-lakefront")
	assert.True(t, ok)

	got := c.Query(races.Criteria{}, races.SortName)
	names := map[string]int{}
	for _, d := range got {
		names[d.Name]++
	}
	assert.Equal(t, 1, names["San Diego 100 Mile Endurance Run"])
}

func TestParseVariants(t *testing.T) {
	array := `[{"id":"a","name":"A","date":"2025-01-01"},{"id":"b","name":"B","date":"01/02/2025","participants":10}]`
	wrapped := `  {"races": ` + array + `}`

	for name, in := range map[string]string{"array": array, "wrapped": wrapped} {
		t.Run(name, func(t *testing.T) {
			records, err := Parse([]byte(in))
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Nil(t, records[0].Participants)
			require.NotNil(t, records[1].Participants)
			assert.Equal(t, 10, *records[1].Participants)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"empty":        "  ",
		"not json":     "races",
		"bad array":    `[{"id": 1}]`,
		"missing id":   `[{"name":"A"}]`,
		"duplicate id": `[{"id":"a"},{"id":"a"}]`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "races.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"races":[{"id":"x","name":"X"}]}`), 0o600))

	records, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
