package fedex

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"titledesk/internal/infrastructure/cache"
	"titledesk/internal/shared/errors"
)

// tokenExpiryMargin is shaved off every token lifetime so a token is never
// presented to the carrier moments before it expires server-side.
const tokenExpiryMargin = 5 * time.Second

// tokenScope distinguishes the two independently credentialed token types.
type tokenScope string

const (
	scopeShip  tokenScope = "ship"
	scopeTrack tokenScope = "track"
)

// tokenSource fetches client-credentials tokens and caches them until
// shortly before expiry.
type tokenSource struct {
	conf  *clientcredentials.Config
	scope tokenScope
	cache cache.Cache[tokenScope, string]
	now   func() time.Time
}

func newTokenSource(host, clientID, clientSecret string, scope tokenScope, c cache.Cache[tokenScope, string]) *tokenSource {
	return &tokenSource{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     host + "/oauth/token",
			// the carrier wants credentials form-encoded in the body
			AuthStyle: oauth2.AuthStyleInParams,
		},
		scope: scope,
		cache: c,
		now:   time.Now,
	}
}

// Token returns a cached bearer token, fetching a fresh one when the cache
// is empty or within the expiry margin.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	if token, ok := s.cache.Get(s.scope); ok {
		return token, nil
	}

	tok, err := s.conf.Token(ctx)
	if err != nil {
		return "", errors.NewConflictError("failed to obtain carrier access token", err.Error())
	}
	if tok.AccessToken == "" {
		return "", errors.NewConflictError("carrier returned an empty access token")
	}

	ttl := tok.Expiry.Sub(s.now()) - tokenExpiryMargin
	if ttl > 0 {
		s.cache.Set(s.scope, tok.AccessToken, ttl)
	}

	return tok.AccessToken, nil
}
