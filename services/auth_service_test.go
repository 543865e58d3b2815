package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := &AuthService{}
	token, err := s.mintToken("uid-123", "owner@bistro.hr")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", uid)
}

func TestVerifySessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifySessionToken("not-a-token")
	assert.Error(t, err)
}

func signInServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := signInServer(t, http.StatusBadRequest, `{"error":{"message":"INVALID_PASSWORD"}}`)
	s := &AuthService{HTTPClient: srv.Client(), signInURL: srv.URL}

	_, err := s.Login(context.Background(), "owner@bistro.hr", "wrong")

	var customErr *utils.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, "Invalid email or password", customErr.Message)
}

func TestLoginMissingProfileAnswersLikeBadPassword(t *testing.T) {
	srv := signInServer(t, http.StatusOK, `{"localId":"u1","email":"owner@bistro.hr"}`)
	s := &AuthService{
		HTTPClient: srv.Client(),
		signInURL:  srv.URL,
		loadProfile: func(ctx context.Context, uid string) (*models.UserProfile, error) {
			return nil, errors.New("document not found")
		},
	}

	_, err := s.Login(context.Background(), "owner@bistro.hr", "pw")

	var customErr *utils.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, "Invalid email or password", customErr.Message)
}

func TestVerifySessionTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := &AuthService{}
	token, err := s.mintToken("uid-123", "owner@bistro.hr")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = VerifySessionToken(token)
	assert.Error(t, err)
}
