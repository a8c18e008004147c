package service

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	// A cached token is refreshed once it is this close to expiring
	tokenGracePeriod = 60 * time.Second
	appJWTLifetime   = 10 * time.Minute
	// GitHub rejects app JWTs issued in the future; backdate for clock drift
	appJWTBackdate = 60 * time.Second
)

type cachedToken struct {
	token     string
	expiresAt time.Time
}

// GitHubAppCredentials issues installation access tokens for a GitHub App
type GitHubAppCredentials struct {
	appID   int64
	key     *rsa.PrivateKey
	baseURL string

	mu    sync.Mutex
	cache map[int64]cachedToken
	group singleflight.Group
	now   func() time.Time
}

// NewGitHubAppCredentials parses the app's PEM key. apiBaseURL may be empty for github.com.
func NewGitHubAppCredentials(appID int64, privateKeyPEM []byte, apiBaseURL string) (*GitHubAppCredentials, error) {
	if appID == 0 || len(privateKeyPEM) == 0 {
		return nil, apperrors.ErrGitHubAppNotConfigured
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse GitHub App private key: %w", err)
	}
	return &GitHubAppCredentials{
		appID:   appID,
		key:     key,
		baseURL: apiBaseURL,
		cache:   make(map[int64]cachedToken),
		now:     time.Now,
	}, nil
}

// GetCloneToken returns a cached installation token, minting a new one when the
// cached one is missing or inside the grace window. Concurrent refreshes for the
// same installation share one request.
func (p *GitHubAppCredentials) GetCloneToken(ctx context.Context, installationID int64) (string, time.Time, error) {
	if tok, ok := p.cached(installationID); ok {
		return tok.token, tok.expiresAt, nil
	}

	v, err, _ := p.group.Do(strconv.FormatInt(installationID, 10), func() (interface{}, error) {
		if tok, ok := p.cached(installationID); ok {
			return tok, nil
		}
		tok, err := p.refresh(ctx, installationID)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.cache[installationID] = tok
		p.mu.Unlock()
		return tok, nil
	})
	if err != nil {
		return "", time.Time{}, err
	}
	tok := v.(cachedToken)
	return tok.token, tok.expiresAt, nil
}

func (p *GitHubAppCredentials) cached(installationID int64) (cachedToken, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	tok, ok := p.cache[installationID]
	if !ok || tok.expiresAt.Sub(p.now()) <= tokenGracePeriod {
		return cachedToken{}, false
	}
	return tok, true
}

// appJWT signs the short-lived JWT that authenticates as the app itself
func (p *GitHubAppCredentials) appJWT() (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(p.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-appJWTBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(p.key)
}

func (p *GitHubAppCredentials) client(ctx context.Context, bearer string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: bearer, TokenType: "Bearer"},
	)
	client := github.NewClient(oauth2.NewClient(ctx, ts))
	if p.baseURL != "" {
		base, err := url.Parse(strings.TrimRight(p.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse GitHub API URL: %w", err)
		}
		client.BaseURL = base
	}
	return client, nil
}

func (p *GitHubAppCredentials) refresh(ctx context.Context, installationID int64) (cachedToken, error) {
	log := logger.WithContext(ctx).WithField("installation_id", installationID)

	signed, err := p.appJWT()
	if err != nil {
		return cachedToken{}, fmt.Errorf("sign app JWT: %w", err)
	}
	client, err := p.client(ctx, signed)
	if err != nil {
		return cachedToken{}, err
	}

	token, _, err := client.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		log.Errorf("Failed to create installation token: %v", err)
		return cachedToken{}, fmt.Errorf("create installation token: %w", err)
	}
	if token.GetToken() == "" {
		return cachedToken{}, fmt.Errorf("create installation token: empty token")
	}

	log.Debugf("Installation token refreshed, expires at %s", token.GetExpiresAt().Format(time.RFC3339))
	return cachedToken{token: token.GetToken(), expiresAt: token.GetExpiresAt().Time}, nil
}

// InstallationRepository is a repository a GitHub App installation can clone
type InstallationRepository struct {
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

// ListRepositories lists every repository granted to the installation, authenticating
// with the installation's own token.
func (p *GitHubAppCredentials) ListRepositories(ctx context.Context, installationID int64) ([]InstallationRepository, error) {
	token, _, err := p.GetCloneToken(ctx, installationID)
	if err != nil {
		return nil, err
	}
	client, err := p.client(ctx, token)
	if err != nil {
		return nil, err
	}

	var repos []InstallationRepository
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list installation repositories: %w", err)
		}
		for _, r := range page.Repositories {
			repos = append(repos, InstallationRepository{
				FullName:      r.GetFullName(),
				HTMLURL:       r.GetHTMLURL(),
				DefaultBranch: r.GetDefaultBranch(),
				Private:       r.GetPrivate(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return repos, nil
}
