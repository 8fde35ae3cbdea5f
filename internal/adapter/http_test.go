package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientAgainst(t *testing.T, srv *httptest.Server) ProfileClient {
	t.Helper()

	client, err := NewHTTPProfileClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host:port gets a scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full URL preserved", raw: "https://api.arenacast.gg", want: "https://api.arenacast.gg"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "empty address", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetProfile_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"name":"Hawk","gamerTag":"night_hawk","games":[{"game":"valorant","ign":"hawk"}]}}`))
	}))
	defer srv.Close()

	client := newClientAgainst(t, srv)
	client.SetToken("token-123")

	profile, err := client.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Hawk", profile.Name)
	assert.Equal(t, "night_hawk", profile.GamerTag)
	require.Len(t, profile.Games, 1)
	assert.Equal(t, "valorant", profile.Games[0].Game)
}

func TestUpdateProfile_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "success", status: http.StatusOK, body: `{"success":true}`},
		{name: "validation failure", status: http.StatusBadRequest, body: `{"error":"validation failed"}`, wantErr: ErrValidation},
		{name: "missing identity", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "gamer tag conflict", status: http.StatusConflict, body: `{"error":"gamer tag is already taken"}`, wantErr: ErrConflict},
		{name: "server failure", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/api/profile", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newClientAgainst(t, srv)
			client.SetToken("token-123")

			err := client.UpdateProfile(context.Background(), models.UpdateProfileRequest{Name: "Hawk"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "version endpoint needs no credential")

		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	client := newClientAgainst(t, srv)
	client.SetToken("token-123")

	version, err := client.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestSetToken_Trimmed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	client := newClientAgainst(t, srv)
	client.SetToken("  token-123  ")

	assert.Equal(t, "token-123", client.Token())
}
