//go:build integration_test

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/routines"
)

func (s *IntegrationTestSuite) TestRoutines_Lifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := s.newAccount(ctx)

	var created routines.CreateResponse
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/routines", token,
		routines.RoutineInput{Name: "Pierna", Color: routines.Palette[0]}, &created))

	var routine routines.Routine
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/routines/"+created.ID+"/exercises", token,
		routines.ExerciseInput{Name: "Sentadilla", Category: routines.CategoryFreeWeight}, &routine))
	require.Len(t, routine.Exercises, 1)
	exerciseID := routine.Exercises[0].ID

	base := fmt.Sprintf("/routines/%s/exercises/%s", created.ID, exerciseID)
	for _, weight := range []string{"60", "70,5", "80"} {
		require.Equal(t, http.StatusCreated, s.do(ctx, "POST", base+"/sets", token,
			routines.SetInput{Reps: "5", Weight: routines.NumericText(weight)}, &routine))
	}
	sets := routine.Exercises[0].Sets
	require.Len(t, sets, 3)
	assert.Equal(t, 70.5, sets[1].Weight)
	for i, set := range sets {
		assert.Equal(t, i+1, set.SetNumber)
	}

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", base+"/sets/"+sets[0].ID, token, nil, &routine))
	require.Len(t, routine.Exercises[0].Sets, 2)
	assert.Equal(t, 1, routine.Exercises[0].Sets[0].SetNumber)

	var volume routines.VolumeResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", base+"/volume", token, nil, &volume))
	assert.Equal(t, 5*70.5+5*80, volume.Volume)

	// the stored document reads back the same
	var stored routines.Routine
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/routines/"+created.ID, token, nil, &stored))
	assert.Equal(t, routine.Exercises, stored.Exercises)

	// exercises cannot be replaced through the routine update
	var renamed routines.Routine
	require.Equal(t, http.StatusOK, s.do(ctx, "PUT", "/routines/"+created.ID, token, map[string]any{
		"name": "Pierna y glúteo",
		"exercises": []map[string]any{{
			"id": "x", "name": "", "category": "bogus",
			"sets": []map[string]any{{"id": "s", "setNumber": 7, "reps": -3, "weight": -10}},
		}},
	}, &renamed))
	assert.Equal(t, "Pierna y glúteo", renamed.Name)
	assert.Equal(t, stored.Exercises, renamed.Exercises)

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/routines/"+created.ID, token, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(ctx, "GET", "/routines/"+created.ID, token, nil, nil))
}

func (s *IntegrationTestSuite) TestRoutines_Cap() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := s.newAccount(ctx)
	otherToken, _ := s.newAccount(ctx)

	for i := 0; i < routines.MaxRoutines; i++ {
		require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/routines", token,
			routines.RoutineInput{Name: fmt.Sprintf("Rutina %d", i), Color: routines.Palette[i]}, nil))
	}
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, "POST", "/routines", token,
		routines.RoutineInput{Name: "Una más", Color: routines.Palette[0]}, nil))

	var list routines.ListResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/routines", token, nil, &list))
	assert.Equal(t, routines.MaxRoutines, list.Total)

	// other users are not affected
	assert.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/routines", otherToken,
		routines.RoutineInput{Name: "Pecho", Color: routines.Palette[0]}, nil))
}
