package races

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padraicbc/racefinder/models"
)

func TestSortRacesByDistance(t *testing.T) {
	records := []models.Race{
		sampleRace("ultra", "U", withDistance("Ultra")),
		sampleRace("5k", "F", withDistance("5K")),
		sampleRace("relay", "R", withDistance("Relay")),
		sampleRace("marathon", "M", withDistance("Marathon")),
		sampleRace("10k", "T", withDistance("10K")),
		sampleRace("mile", "Mi", withDistance("1 mile")),
	}

	got := SortRaces(records, SortDistance)
	assert.Equal(t, []string{"mile", "5k", "10k", "marathon", "ultra", "relay"}, ids(got))
	assert.Equal(t, "ultra", records[0].ID, "input is not reordered")
}

func TestSortRacesByDate(t *testing.T) {
	records := []models.Race{
		sampleRace("may", "A", withDate("2025-05-01")),
		sampleRace("tbd", "B", withDate("TBD")),
		sampleRace("april-us", "C", withDate("04/02/2025")),
		sampleRace("april", "D", withDate("2025-04-02")),
	}

	assert.Equal(t, []string{"april-us", "april", "may", "tbd"}, ids(SortRaces(records, SortDate)))
}

func TestSortRacesByParticipants(t *testing.T) {
	records := []models.Race{
		sampleRace("missing", "A"),
		sampleRace("zero", "B", withParticipants(0)),
		sampleRace("small", "C", withParticipants(50)),
		sampleRace("big", "D", withParticipants(5000)),
	}

	assert.Equal(t, []string{"big", "small", "missing", "zero"}, ids(SortRaces(records, SortParticipants)))
}

func TestSortRacesByNameAndLocation(t *testing.T) {
	records := []models.Race{
		sampleRace("z", "zephyr Run", withCity("Eugene")),
		sampleRace("a", "Alder Loop", withCity("Seattle"), withState("WA")),
		sampleRace("m", "Mountain Dash", withCity("Bend")),
	}

	assert.Equal(t, []string{"a", "m", "z"}, ids(SortRaces(records, SortName)))
	assert.Equal(t, []string{"m", "z", "a"}, ids(SortRaces(records, SortLocation)))
	assert.Equal(t, []string{"a", "m", "z"}, ids(SortRaces(records, SortKey("bogus"))))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortDate, ParseSortKey("date"))
	assert.Equal(t, SortParticipants, ParseSortKey(" Participants "))
	assert.Equal(t, SortName, ParseSortKey(""))
	assert.Equal(t, SortName, ParseSortKey("elevation"))
}
