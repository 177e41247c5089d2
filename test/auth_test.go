//go:build integration_test

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/profile"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, user := s.newAccount(ctx)

	var profileResp profile.Response
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/profile", token, nil, &profileResp))
	assert.Equal(t, user.UID, profileResp.User.UID)
	require.NotNil(t, profileResp.Profile)
	assert.Empty(t, profileResp.Profile.CompletedDates(profile.TrackNovato))

	// same email again
	status := s.do(ctx, "POST", "/a/register", "", auth.RegisterRequest{
		Credentials: auth.Credentials{Email: user.Email, Password: testPassword},
		Profile:     profile.ProfileInput{Name: "Again"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = s.do(ctx, "POST", "/a/login", "", auth.Credentials{Email: user.Email, Password: "bad-password"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	assert.Equal(t, http.StatusOK, s.do(ctx, "GET", "/a/logout", token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, "GET", "/profile", token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, "GET", "/a/logout", token, nil, nil))
}

func (s *IntegrationTestSuite) TestPublicEndpoints() {
	t := s.T()
	ctx := context.Background()

	assert.Equal(t, http.StatusOK, s.do(ctx, "GET", "/", "", nil, nil))
	assert.Equal(t, http.StatusOK, s.do(ctx, "GET", "/tools/1rm?weight=100&reps=5", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, "GET", "/routines", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, "GET", "/routines", "made-up-token", nil, nil))
}
