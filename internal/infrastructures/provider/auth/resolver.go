// Package auth selects how the gateway authenticates against the provider and
// builds the header set attached to every upstream call.
//
// The provider's expected header names are not contractually fixed and
// several variants have been seen in the field. Keypair credentials are
// therefore sent under every known alias at once; the provider ignores
// headers it does not recognise. Do not narrow the alias tables without
// confirming against the provider's live documentation.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	derr "github.com/ozzus/tours-gateway/internal/domain/errors"
)

type Mode string

const (
	ModeToken   Mode = "token"
	ModeKeypair Mode = "keypair"
)

// AccessKeyHeaders carry the access key in keypair mode. http.Header
// canonicalises names, so casing variants of one name are the same wire header.
var AccessKeyHeaders = []string{
	"X-Api-Key",
	"Api-Key",
	"Apikey",
	"X-Access-Key",
	"X-Bokun-AccessKey",
}

// SecretKeyHeaders carry the secret key in keypair mode.
var SecretKeyHeaders = []string{
	"X-Api-Secret",
	"Api-Secret",
	"X-Secret-Key",
	"X-Bokun-SecretKey",
}

type Credentials struct {
	AccessKey string
	SecretKey string
	Token     string
}

// Scheme is the resolved authentication. It is immutable and safe to share.
type Scheme struct {
	mode    Mode
	headers http.Header
}

// Resolve picks exactly one mode: a token wins over a keypair. Without either,
// it returns a ConfigurationError wrapping ErrMissingCredentials.
func Resolve(creds Credentials) (*Scheme, error) {
	token := strings.TrimSpace(creds.Token)
	accessKey := strings.TrimSpace(creds.AccessKey)
	secretKey := strings.TrimSpace(creds.SecretKey)

	if token != "" {
		headers := make(http.Header, 1)
		headers.Set("Authorization", "Bearer "+token)
		return &Scheme{mode: ModeToken, headers: headers}, nil
	}

	switch {
	case accessKey != "" && secretKey != "":
		headers := make(http.Header, len(AccessKeyHeaders)+len(SecretKeyHeaders))
		for _, name := range AccessKeyHeaders {
			headers.Set(name, accessKey)
		}
		for _, name := range SecretKeyHeaders {
			headers.Set(name, secretKey)
		}
		return &Scheme{mode: ModeKeypair, headers: headers}, nil
	case accessKey != "":
		return nil, &derr.ConfigurationError{
			Field: "provider.secret_key",
			Err:   fmt.Errorf("access key is set without a secret key: %w", derr.ErrMissingCredentials),
		}
	case secretKey != "":
		return nil, &derr.ConfigurationError{
			Field: "provider.access_key",
			Err:   fmt.Errorf("secret key is set without an access key: %w", derr.ErrMissingCredentials),
		}
	default:
		return nil, &derr.ConfigurationError{
			Field: "provider",
			Err:   fmt.Errorf("set a token or an access/secret key pair: %w", derr.ErrMissingCredentials),
		}
	}
}

func (s *Scheme) Mode() Mode {
	return s.mode
}

// Headers returns a copy of the header set.
func (s *Scheme) Headers() http.Header {
	return s.headers.Clone()
}

// Apply sets the credential headers on req, replacing any existing values.
func (s *Scheme) Apply(req *http.Request) {
	for name, values := range s.headers {
		req.Header[name] = append([]string(nil), values...)
	}
}
