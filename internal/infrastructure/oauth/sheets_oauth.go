package oauth

import (
	"context"
	"time"

	"gearcast-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetsOAuth handles OAuth authentication with the Google Sheets API
type SheetsOAuth struct {
	config       *oauth2.Config
	refreshToken string
	logger       logger.Logger
}

// NewSheetsOAuth creates a new Sheets OAuth handler
func NewSheetsOAuth(clientID, clientSecret, refreshToken string, logger logger.Logger) *SheetsOAuth {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
	}

	return &SheetsOAuth{
		config:       config,
		refreshToken: refreshToken,
		logger:       logger,
	}
}

// GetTokenSource returns a token source that can be used with the Sheets API
func (o *SheetsOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	token := &oauth2.Token{
		RefreshToken: o.refreshToken,
		Expiry:       time.Now(), // Force refresh
	}

	return o.config.TokenSource(ctx, token)
}

// GenerateAuthURL generates a URL for the user to authorize the application
func (o *SheetsOAuth) GenerateAuthURL() string {
	return o.config.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}
