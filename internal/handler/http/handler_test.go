package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/mock"
	"github.com/arenacast/backend/internal/service"
	"github.com/arenacast/backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler backed by a mocked profile service and a
// nop logger.
func newTestHandler(t *testing.T) (*Handler, *mock.MockProfileService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	profileService := mock.NewMockProfileService(ctrl)

	h := &Handler{
		services:       &service.Services{ProfileService: profileService},
		appVersion:     "1.2.3",
		requestTimeout: 30 * time.Second,
		logger:         logger.Nop(),
	}
	return h, profileService
}

// withSubject attaches a caller subject to the request context the way the
// auth middleware would.
func withSubject(r *http.Request, subject string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, subject)
	return r.WithContext(ctx)
}

// signedToken produces a compact JWT whose signature is irrelevant to the
// server; only the payload segment is decoded.
func signedToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	tokenString, err := token.SignedString([]byte("any-key-at-all"))
	require.NoError(t, err)
	return tokenString
}
