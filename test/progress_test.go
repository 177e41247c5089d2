//go:build integration_test

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/bodyprogress"
)

func (s *IntegrationTestSuite) TestBodyProgress() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := s.newAccount(ctx)
	weight := func(w float64) *float64 { return &w }

	// photo is required
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, "POST", "/progress", token,
		bodyprogress.EntryInput{Weight: weight(80)}, nil))

	var first, second bodyprogress.Entry
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/progress", token,
		bodyprogress.EntryInput{Date: "2026-09-01", Weight: weight(82.4), PhotoURI: "file:///p/1.jpg"}, &first))
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/progress", token,
		bodyprogress.EntryInput{Date: "2026-10-01", Weight: weight(80), PhotoURI: "file:///p/2.jpg"}, &second))

	var list bodyprogress.ListResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/progress", token, nil, &list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, second.ID, list.Entries[0].ID)

	var stats bodyprogress.Stats
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/progress/stats", token, nil, &stats))
	assert.Equal(t, -2.4, stats.WeightChange)
	assert.Equal(t, 30, stats.TotalDays)
	assert.Equal(t, 2, stats.TotalEntries)

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/progress/"+first.ID, token, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(ctx, "DELETE", "/progress/"+first.ID, token, nil, nil))
}
