package googleauth

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/exceptions"
	"crypto/rsa"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type rs256AssertionSigner struct {
	issuer   string
	scope    string
	audience string
	ttl      time.Duration
	key      *rsa.PrivateKey
}

// NewAssertionSigner parses the service account key once. The key may be PKCS#1
// or PKCS#8 PEM.
func NewAssertionSigner(internalConfig *config.InternalConfig) (contracts.AssertionSigner, error) {
	account := internalConfig.ServiceAccount
	if !account.HasCredentials() {
		return nil, exceptions.ErrConfiguration("GOOGLE_SERVICE_ACCOUNT_EMAIL", "GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY")
	}

	pemKey := strings.TrimSpace(strings.ReplaceAll(account.PrivateKey, `\n`, "\n"))
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, exceptions.ErrInvalidPrivateKey(err)
	}

	return &rs256AssertionSigner{
		issuer:   account.ClientEmail,
		scope:    internalConfig.Sheets.Scope,
		audience: internalConfig.Sheets.TokenURL,
		ttl:      constvars.ServiceAccountTokenTTL,
		key:      key,
	}, nil
}

func (s *rs256AssertionSigner) SignAssertion(now time.Time) (string, error) {
	issuedAt := now.UTC().Truncate(time.Second)
	claims := jwt.MapClaims{
		"iss":   s.issuer,
		"scope": s.scope,
		"aud":   s.audience,
		"iat":   issuedAt.Unix(),
		"exp":   issuedAt.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", exceptions.ErrSignAssertion(err)
	}
	return signed, nil
}
