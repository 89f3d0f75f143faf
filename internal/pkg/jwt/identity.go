package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
)

// Identity is a read-only authenticated principal derived entirely from a
// verified token's claims. It never touches durable storage: authorization
// checks beyond the coarse staff/superuser flags always deny, and mutating
// operations fail with apperrors.ErrUnsupportedOperation.
type Identity struct {
	claims jwt.MapClaims
}

// ResolveIdentity constructs an Identity from decoded, signature-verified
// claims. Construction is pure and total; absent claims resolve to zero
// values.
func ResolveIdentity(claims jwt.MapClaims) *Identity {
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	return &Identity{claims: claims}
}

// ID returns the subject identifier from the user_id claim
func (i *Identity) ID() string {
	return i.stringClaim("user_id")
}

// Phone returns the phone claim, or "" when absent
func (i *Identity) Phone() string {
	return i.stringClaim("phone")
}

// FullName returns the full_name claim, or "" when absent
func (i *Identity) FullName() string {
	return i.stringClaim("full_name")
}

// IsStaff reports the is_staff claim, defaulting to false
func (i *Identity) IsStaff() bool {
	return i.boolClaim("is_staff")
}

// IsSuperuser reports the is_superuser claim, defaulting to false
func (i *Identity) IsSuperuser() bool {
	return i.boolClaim("is_superuser")
}

// IsAuthenticated always reports true for a resolved identity
func (i *Identity) IsAuthenticated() bool { return true }

// IsAnonymous always reports false for a resolved identity
func (i *Identity) IsAnonymous() bool { return false }

// IsActive always reports true: an identity only exists while its token is
// valid
func (i *Identity) IsActive() bool { return true }

// HasPerm denies every fine-grained permission: token-derived identities
// carry only the coarse staff/superuser flags.
func (i *Identity) HasPerm(perm string) bool { return false }

// HasPerms denies every permission list
func (i *Identity) HasPerms(perms []string) bool { return false }

// HasModulePerms denies every module permission
func (i *Identity) HasModulePerms(module string) bool { return false }

// Permissions returns the empty permission set
func (i *Identity) Permissions() []string { return []string{} }

// Claim returns the raw claim value by name and whether it was present.
// This is the extension point for additional claim types.
func (i *Identity) Claim(name string) (interface{}, bool) {
	v, ok := i.claims[name]
	return v, ok
}

// Save fails: token-derived identities are never persisted
func (i *Identity) Save() error { return apperrors.ErrUnsupportedOperation }

// Delete fails: token-derived identities are never persisted
func (i *Identity) Delete() error { return apperrors.ErrUnsupportedOperation }

// SetPassword fails: token-derived identities carry no credential
func (i *Identity) SetPassword(raw string) error { return apperrors.ErrUnsupportedOperation }

// CheckPassword fails: token-derived identities carry no credential
func (i *Identity) CheckPassword(raw string) error { return apperrors.ErrUnsupportedOperation }

// Equal reports whether two identities resolve the same subject identifier
func (i *Identity) Equal(other *Identity) bool {
	if other == nil {
		return false
	}
	return i.ID() == other.ID()
}

// HashKey returns the value identity maps should key this principal by
func (i *Identity) HashKey() string {
	return i.ID()
}

func (i *Identity) String() string {
	return fmt.Sprintf("TokenIdentity %s", i.ID())
}

func (i *Identity) stringClaim(name string) string {
	v, ok := i.claims[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// Numeric subjects survive JSON decoding as float64.
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}

func (i *Identity) boolClaim(name string) bool {
	v, ok := i.claims[name]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
