// Package token decodes the compact three-segment credential issued by the
// badge API and checks that it has the shape the client relies on.
//
// Nothing here verifies the signature: the server that issued the token is
// trusted, and Decode only establishes that the payload is readable and
// carries a subject id.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	segmentSeparator = "."
	segmentCount     = 3
	payloadSegment   = 1

	idClaim = "id"
)

var (
	// ErrDecode reports a credential that is not structurally parseable.
	ErrDecode = errors.New("malformed credential")
	// ErrValidation reports a credential that parses but lacks a subject id.
	ErrValidation = errors.New("credential has no subject id")
)

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Payload is the decoded middle segment of a credential.
type Payload struct {
	// ID is the "id" claim when it is a JSON string, empty otherwise.
	ID string
	// Claims holds every claim, including ones the client ignores.
	Claims jwt.MapClaims
}

// IssuedAt returns the "iat" claim, if present and numeric.
func (p *Payload) IssuedAt() (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return numericClaim(p.Claims.GetIssuedAt)
}

// ExpiresAt returns the "exp" claim, if present and numeric. The client does
// not enforce it.
func (p *Payload) ExpiresAt() (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return numericClaim(p.Claims.GetExpirationTime)
}

func numericClaim(get func() (*jwt.NumericDate, error)) (time.Time, bool) {
	d, err := get()
	if err != nil || d == nil {
		return time.Time{}, false
	}
	return d.Time, true
}

// Decode splits the credential into its segments, base64url-decodes the
// payload segment and parses it as a JSON object. Every failure wraps
// ErrDecode.
func Decode(token string) (*Payload, error) {
	segments := strings.Split(token, segmentSeparator)
	if len(segments) != segmentCount {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrDecode, segmentCount, len(segments))
	}

	raw, err := parser.DecodeSegment(segments[payloadSegment])
	if err != nil {
		return nil, fmt.Errorf("%w: payload encoding: %v", ErrDecode, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload json: %v", ErrDecode, err)
	}

	p := &Payload{Claims: claims}
	if id, ok := claims[idClaim].(string); ok {
		p.ID = id
	}
	return p, nil
}

// IsValid reports whether p carries a non-empty subject id.
func IsValid(p *Payload) bool {
	return p != nil && p.ID != ""
}

// Parse decodes token and validates the result. It returns ErrDecode or
// ErrValidation (both matchable with errors.Is) for unusable credentials.
func Parse(token string) (*Payload, error) {
	p, err := Decode(token)
	if err != nil {
		return nil, err
	}
	if !IsValid(p) {
		return nil, ErrValidation
	}
	return p, nil
}
