package oauth

import (
	"context"
	"net/http"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// AmadeusOAuth handles the client-credentials exchange with the Amadeus
// authentication endpoint. Tokens are short-lived and never cached: every
// AccessToken call performs a fresh exchange.
type AmadeusOAuth struct {
	config     *clientcredentials.Config
	httpClient *http.Client
	logger     logger.Logger
}

// NewAmadeusOAuth creates a new Amadeus OAuth handler. Credentials are
// injected here and never read from the environment inside the pipeline.
func NewAmadeusOAuth(clientID, clientSecret, tokenURL string, timeout time.Duration, logger logger.Logger) *AmadeusOAuth {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		// Amadeus expects the credentials in the form body
		AuthStyle: oauth2.AuthStyleInParams,
	}

	return &AmadeusOAuth{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// AccessToken exchanges the stored credentials for a bearer token. A
// non-success response or a response without an access token fails with
// an AuthError; there are no retries.
func (o *AmadeusOAuth) AccessToken(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)

	// Token builds a fresh source per call, so nothing is reused
	token, err := o.config.Token(ctx)
	if err != nil {
		o.logger.Error("Credential exchange failed", "error", err)
		return "", entity.NewAuthError("credential exchange failed", err)
	}

	if token.AccessToken == "" {
		return "", entity.NewAuthError("token response missing access token", nil)
	}

	return token.AccessToken, nil
}
