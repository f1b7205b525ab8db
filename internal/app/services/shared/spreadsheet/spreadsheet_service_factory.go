package spreadsheet

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type serviceFactory struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewSpreadsheetServiceFactory shares one limiter across every service it
// builds so the per-minute budget holds process-wide.
func NewSpreadsheetServiceFactory(internalConfig *config.InternalConfig, httpClient *http.Client, logger *zap.Logger) contracts.SpreadsheetServiceFactory {
	if httpClient == nil && internalConfig.Sheets.HTTPTimeoutInSeconds > 0 {
		httpClient = &http.Client{Timeout: time.Duration(internalConfig.Sheets.HTTPTimeoutInSeconds) * time.Second}
	}
	return &serviceFactory{
		BaseURL:    internalConfig.Sheets.BaseURL,
		HTTPClient: httpClient,
		Limiter:    newLimiter(internalConfig.Sheets.MaxRequestsPerMinute),
		Log:        logger,
	}
}

func newLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)
}

func (f *serviceFactory) NewSpreadsheetService(ctx context.Context, token *models.CredentialToken) (contracts.SpreadsheetService, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Expiry:      token.Expiry,
	})

	opts := []option.ClientOption{}
	if f.HTTPClient != nil {
		// An explicit client bypasses option.WithTokenSource, so the bearer
		// transport is layered on top of it here.
		authCtx := context.WithValue(ctx, oauth2.HTTPClient, f.HTTPClient)
		opts = append(opts, option.WithHTTPClient(oauth2.NewClient(authCtx, tokenSource)))
	} else {
		opts = append(opts, option.WithTokenSource(tokenSource))
	}
	if f.BaseURL != "" {
		endpoint := f.BaseURL
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		f.Log.Error("serviceFactory.NewSpreadsheetService error building sheets client", zap.Error(err))
		return nil, exceptions.ErrSpreadsheetService(err)
	}

	return &sheetsService{
		svc:     svc,
		limiter: f.Limiter,
		log:     f.Log,
	}, nil
}
