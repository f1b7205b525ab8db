package googleauth

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type tokenProvider struct {
	TokenURL string
	Signer   contracts.AssertionSigner
	Client   HTTPClient
	Log      *zap.Logger
	now      func() time.Time
}

func NewTokenProvider(internalConfig *config.InternalConfig, signer contracts.AssertionSigner, client HTTPClient, logger *zap.Logger) contracts.TokenProvider {
	if client == nil {
		client = &http.Client{}
	}
	return &tokenProvider{
		TokenURL: internalConfig.Sheets.TokenURL,
		Signer:   signer,
		Client:   client,
		Log:      logger,
		now:      time.Now,
	}
}

// FetchToken exchanges a freshly signed assertion for an access token. Tokens
// are never cached.
func (p *tokenProvider) FetchToken(ctx context.Context) (*models.CredentialToken, error) {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("tokenProvider.FetchToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenURLKey, p.TokenURL),
	)

	now := p.now()
	assertion, err := p.Signer.SignAssertion(now)
	if err != nil {
		p.Log.Error("tokenProvider.FetchToken error signing assertion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", constvars.GoogleJWTBearerGrantType)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := p.Client.Do(req)
	if err != nil {
		p.Log.Error("tokenProvider.FetchToken error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAuthentication(err, p.TokenURL)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrAuthentication(err, p.TokenURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
		p.Log.Error("tokenProvider.FetchToken token endpoint rejected assertion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(upstreamErr),
		)
		return nil, exceptions.ErrAuthentication(upstreamErr, p.TokenURL)
	}

	var body tokenResponse
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return nil, exceptions.ErrAuthentication(err, p.TokenURL)
	}
	if body.AccessToken == "" {
		return nil, exceptions.ErrTokenMissing()
	}

	token := &models.CredentialToken{
		AccessToken: body.AccessToken,
		TokenType:   body.TokenType,
		ExpiresIn:   body.ExpiresIn,
	}
	if body.ExpiresIn > 0 {
		token.Expiry = now.Add(time.Duration(body.ExpiresIn) * time.Second)
	}

	p.Log.Info("tokenProvider.FetchToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("expires_in", body.ExpiresIn),
	)
	return token, nil
}
