//go:build integration_test

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/middleware"
	"github.com/2beens/fitjournal/internal/profile"
)

const testPassword = "testpass"

// do sends a JSON request and decodes a JSON response into out, when given.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body, out any) int {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

// newAccount registers a fresh account and logs it in.
func (s *IntegrationTestSuite) newAccount(ctx context.Context) (string, profile.User) {
	t := s.T()
	email := fmt.Sprintf("%d.%s", gofakeit.Uint32(), gofakeit.Email())

	status := s.do(ctx, "POST", "/a/register", "", auth.RegisterRequest{
		Credentials: auth.Credentials{Email: email, Password: testPassword},
		Profile:     profile.ProfileInput{Name: gofakeit.FirstName()},
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var loginResp auth.LoginResponse
	status = s.do(ctx, "POST", "/a/login", "", auth.Credentials{Email: email, Password: testPassword}, &loginResp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token, loginResp.User
}
