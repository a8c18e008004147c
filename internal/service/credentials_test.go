package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "cargodeploy-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	server    *httptest.Server
	key       *rsa.PrivateKey
	calls     atomic.Int32
	expiresIn time.Duration
	status    int
	delay     time.Duration
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &fakeGitHub{key: key, expiresIn: time.Hour, status: http.StatusCreated}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/installation/repositories" {
			f.serveRepositories(w, r)
			return
		}
		n := f.calls.Add(1)
		if !strings.HasPrefix(r.URL.Path, "/app/installations/") || !strings.HasSuffix(r.URL.Path, "/access_tokens") || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(bearer, claims, func(*jwt.Token) (interface{}, error) {
			return &f.key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}))
		if err != nil || claims.Issuer != "12345" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		if f.status != http.StatusCreated {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":      fmt.Sprintf("ghs_token_%d", n),
			"expires_at": time.Now().Add(f.expiresIn).UTC().Format(time.RFC3339),
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

// serveRepositories answers installation-token requests with two pages of repositories
func (f *fakeGitHub) serveRepositories(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ghs_token_") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("page") == "2" {
		_, _ = w.Write([]byte(`{"total_count":2,"repositories":[{"full_name":"acme/api","html_url":"https://github.com/acme/api","default_branch":"develop","private":true}]}`))
		return
	}
	w.Header().Set("Link", fmt.Sprintf(`<%s/installation/repositories?per_page=100&page=2>; rel="next"`, f.server.URL))
	_, _ = w.Write([]byte(`{"total_count":2,"repositories":[{"full_name":"acme/site","html_url":"https://github.com/acme/site","default_branch":"main","private":false}]}`))
}

func (f *fakeGitHub) pem() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(f.key)})
}

func TestNewGitHubAppCredentials_NotConfigured(t *testing.T) {
	_, err := NewGitHubAppCredentials(0, []byte("x"), "")
	assert.ErrorIs(t, err, apperrors.ErrGitHubAppNotConfigured)

	_, err = NewGitHubAppCredentials(12345, nil, "")
	assert.ErrorIs(t, err, apperrors.ErrGitHubAppNotConfigured)
}

func TestNewGitHubAppCredentials_BadKey(t *testing.T) {
	_, err := NewGitHubAppCredentials(12345, []byte("not a pem"), "")
	assert.Error(t, err)
	assert.False(t, apperrors.IsConfiguration(err))
}

func TestGetCloneToken_MintsAndCaches(t *testing.T) {
	gh := newFakeGitHub(t)
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), gh.server.URL)
	require.NoError(t, err)

	token, expiresAt, err := creds.GetCloneToken(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, "ghs_token_1", token)
	assert.True(t, expiresAt.After(time.Now().Add(50*time.Minute)))

	again, _, err := creds.GetCloneToken(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, "ghs_token_1", again)
	assert.Equal(t, int32(1), gh.calls.Load())

	// Installations are cached independently
	other, _, err := creds.GetCloneToken(context.Background(), 78)
	require.NoError(t, err)
	assert.Equal(t, "ghs_token_2", other)
}

func TestGetCloneToken_RefreshesInsideGracePeriod(t *testing.T) {
	gh := newFakeGitHub(t)
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), gh.server.URL)
	require.NoError(t, err)

	_, _, err = creds.GetCloneToken(context.Background(), 77)
	require.NoError(t, err)

	// Pretend the clock moved to 30s before expiry
	base := time.Now()
	creds.now = func() time.Time { return base.Add(time.Hour - 30*time.Second) }

	token, _, err := creds.GetCloneToken(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, "ghs_token_2", token)
	assert.Equal(t, int32(2), gh.calls.Load())
}

func TestGetCloneToken_ConcurrentCallersShareRefresh(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.delay = 50 * time.Millisecond
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), gh.server.URL)
	require.NoError(t, err)

	var wg sync.WaitGroup
	tokens := make([]string, 10)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, _, err := creds.GetCloneToken(context.Background(), 77)
			assert.NoError(t, err)
			tokens[i] = tok
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), gh.calls.Load())
	for _, tok := range tokens {
		assert.Equal(t, "ghs_token_1", tok)
	}
}

func TestGetCloneToken_GitHubError(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.status = http.StatusNotFound
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), gh.server.URL)
	require.NoError(t, err)

	token, _, err := creds.GetCloneToken(context.Background(), 77)

	assert.Error(t, err)
	assert.Empty(t, token)

	// Failures are not cached
	gh.status = http.StatusCreated
	token, _, err = creds.GetCloneToken(context.Background(), 77)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAppJWT_Claims(t *testing.T) {
	gh := newFakeGitHub(t)
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), "")
	require.NoError(t, err)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	creds.now = func() time.Time { return fixed }

	signed, err := creds.appJWT()
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return &gh.key.PublicKey, nil
	}, jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	assert.Equal(t, "12345", claims.Issuer)
	assert.Equal(t, fixed.Add(-time.Minute), claims.IssuedAt.Time.UTC())
	assert.Equal(t, fixed.Add(10*time.Minute), claims.ExpiresAt.Time.UTC())
}

func TestListRepositories_FollowsPagination(t *testing.T) {
	gh := newFakeGitHub(t)
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), gh.server.URL)
	require.NoError(t, err)

	repos, err := creds.ListRepositories(context.Background(), 77)

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, InstallationRepository{FullName: "acme/site", HTMLURL: "https://github.com/acme/site", DefaultBranch: "main"}, repos[0])
	assert.Equal(t, "acme/api", repos[1].FullName)
	assert.True(t, repos[1].Private)
	// One token mint serves every page
	assert.Equal(t, int32(1), gh.calls.Load())
}

func TestListRepositories_TokenFailure(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.status = http.StatusNotFound
	creds, err := NewGitHubAppCredentials(12345, gh.pem(), gh.server.URL)
	require.NoError(t, err)

	repos, err := creds.ListRepositories(context.Background(), 77)

	assert.Error(t, err)
	assert.Nil(t, repos)
}
