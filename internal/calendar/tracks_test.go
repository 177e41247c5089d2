package calendar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := calendar.DefaultCatalog()

	tracks := catalog.Tracks()
	require.Len(t, tracks, 3)
	assert.Equal(t, profile.TrackNovato, tracks[0].ID)
	assert.Equal(t, profile.TrackIntermedio, tracks[1].ID)
	assert.Equal(t, profile.TrackAvanzado, tracks[2].ID)

	assert.Len(t, tracks[0].Days, 3)
	assert.Len(t, tracks[1].Days, 4)
	assert.Len(t, tracks[2].Days, 5)

	novato, err := catalog.Track(profile.TrackNovato)
	require.NoError(t, err)
	day1, err := novato.Day("day1")
	require.NoError(t, err)
	require.Len(t, day1.Exercises, 5)
	assert.Equal(t, "squat", day1.Exercises[0].ID)
	assert.Equal(t, 3, day1.Exercises[0].Sets)
	assert.Equal(t, "30-60 segundos", day1.Exercises[4].Reps)

	avanzado, err := catalog.Track(profile.TrackAvanzado)
	require.NoError(t, err)
	day1, err = avanzado.Day("day1")
	require.NoError(t, err)
	bench, ok := day1.Exercise("benchHeavy")
	require.True(t, ok)
	assert.Equal(t, 5, bench.Sets)

	_, err = catalog.Track("experto")
	assert.True(t, apperr.IsNotFound(err))
	_, err = novato.Day("day9")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCatalog_TracksIsACopy(t *testing.T) {
	catalog := calendar.DefaultCatalog()
	tracks := catalog.Tracks()
	tracks[0] = calendar.TrackDef{}

	first, err := catalog.Track(profile.TrackNovato)
	require.NoError(t, err)
	assert.Equal(t, "Novato", first.Title)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown track",
			yaml: "- id: experto\n  days: [{id: d1, exercises: [{id: a, sets: 1}]}]\n",
			want: "unknown track",
		},
		{
			name: "no days",
			yaml: "- id: novato\n  days: []\n",
			want: "has no days",
		},
		{
			name: "repeated day",
			yaml: "- id: novato\n  days: [{id: d1}, {id: d1}]\n",
			want: "repeated day id",
		},
		{
			name: "repeated exercise",
			yaml: "- id: novato\n  days: [{id: d1, exercises: [{id: a, sets: 1}, {id: a, sets: 2}]}]\n",
			want: "repeated exercise id",
		},
		{
			name: "zero sets",
			yaml: "- id: novato\n  days: [{id: d1, exercises: [{id: a, sets: 0}]}]\n",
			want: "sets must be positive",
		},
		{
			name: "twice",
			yaml: "- id: novato\n  days: [{id: d1}]\n- id: novato\n  days: [{id: d1}]\n",
			want: "defined twice",
		},
		{
			name: "not yaml",
			yaml: "{{{",
			want: "unmarshal tracks",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.LoadCatalog(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	catalog, err := calendar.LoadCatalog(strings.NewReader("- id: novato\n  title: Corta\n  days: [{id: d1, exercises: [{id: a, sets: 2}]}]\n"))
	require.NoError(t, err)
	assert.Len(t, catalog.Tracks(), 1)
}
