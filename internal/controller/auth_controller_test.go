package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/digimenu/catalog-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_InvalidCredentials(t *testing.T) {
	conf := setupTestConfig(t)
	e, _ := setupServer(t, conf)

	testCases := []struct {
		name    string
		payload dto.LoginRequest
	}{
		{
			name:    "wrong password",
			payload: dto.LoginRequest{Username: "admin", Password: "wrong"},
		},
		{
			name:    "unknown username",
			payload: dto.LoginRequest{Username: "root", Password: "admin123"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			rec := doRequest(e, http.MethodPost, "/api/v1/auth/login", "", body)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			// Same message regardless of which credential was wrong
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, "Username or password is incorrect", env.Message)
		})
	}
}

func TestGetSession(t *testing.T) {
	conf := setupTestConfig(t)
	e, _ := setupServer(t, conf)

	rec := doRequest(e, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/v1/auth/session", adminToken(t, conf), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session dto.SessionResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, "admin", session.Role)
}
