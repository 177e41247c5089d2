//go:build integration_test

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/calendar"
)

func (s *IntegrationTestSuite) TestCalendar_FinishWorkout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := s.newAccount(ctx)

	var state calendar.DayState
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/tracks/novato/days/day2", token, nil, &state))
	assert.False(t, state.Complete)

	// finishing an incomplete workout is refused
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, "POST", "/tracks/novato/days/day2/finish", token, nil, nil))

	for _, ex := range state.Day.Exercises {
		for i := 0; i < ex.Sets; i++ {
			require.Equal(t, http.StatusOK, s.do(ctx, "POST", "/tracks/novato/days/day2/toggle", token,
				calendar.ToggleRequest{ExerciseID: ex.ID, SetIndex: i}, &state))
		}
	}
	assert.True(t, state.Complete)

	var finished calendar.FinishResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "POST", "/tracks/novato/days/day2/finish", token, nil, &finished))
	today := time.Now().UTC().Format(calendar.DateLayout)
	assert.Equal(t, []string{today}, finished.CompletedDates)

	// the finished day starts over
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/tracks/novato/days/day2", token, nil, &state))
	assert.False(t, state.Complete)

	var cal calendar.CalendarResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/tracks/novato/calendar", token, nil, &cal))
	assert.Equal(t, []string{today}, cal.CompletedDates)

	// other tracks are untouched
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/tracks/avanzado/calendar", token, nil, &cal))
	assert.Empty(t, cal.CompletedDates)

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/tracks/novato/calendar", token, nil, &cal))
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/tracks/novato/calendar", token, nil, &cal))
	assert.Empty(t, cal.CompletedDates)

	assert.Equal(t, http.StatusNotFound, s.do(ctx, "GET", "/tracks/experto/calendar", token, nil, nil))
}
