package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"flagit/internal/models"

	"gorm.io/gorm"
)

// ErrInvalidToken covers every verification failure: unknown, malformed and
// expired tokens all look the same to the caller.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is a verified caller: the subject id and, when known, the email
// the credential was minted for.
type Identity struct {
	UID   string
	Email string
}

// Username derives the display name attached to comments: the email
// local-part, or "user" when the identity has no usable email.
func (id Identity) Username() string {
	if strings.Contains(id.Email, "@") {
		return strings.SplitN(id.Email, "@", 2)[0]
	}
	return "user"
}

// Verifier turns an opaque bearer token into a verified identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// CredentialVerifier validates tokens against the credentials table. Tokens
// are opaque; only their sha256 digest is stored.
type CredentialVerifier struct {
	db *gorm.DB
}

func NewCredentialVerifier(db *gorm.DB) *CredentialVerifier {
	return &CredentialVerifier{db: db}
}

func (v *CredentialVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var cred models.Credential
	err := v.db.WithContext(ctx).
		Where("token_hash = ?", HashToken(token)).
		First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("look up credential: %w", err)
	}
	if !cred.ExpiresAt.IsZero() && time.Now().After(cred.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	return &Identity{UID: cred.UID, Email: cred.Email}, nil
}

// HashToken returns the hex sha256 digest under which a token is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
