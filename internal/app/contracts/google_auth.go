package contracts

import (
	"agenda-sync-service/internal/app/models"
	"context"
	"time"
)

// AssertionSigner produces the signed service account assertion exchanged for
// an access token.
type AssertionSigner interface {
	SignAssertion(now time.Time) (string, error)
}

type TokenProvider interface {
	FetchToken(ctx context.Context) (*models.CredentialToken, error)
}
