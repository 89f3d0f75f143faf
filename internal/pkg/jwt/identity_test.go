package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
)

func TestResolveIdentity_FullClaims(t *testing.T) {
	identity := ResolveIdentity(jwtlib.MapClaims{
		"user_id":  "42",
		"phone":    "998900404001",
		"is_staff": true,
	})

	assert.Equal(t, "42", identity.ID())
	assert.Equal(t, "998900404001", identity.Phone())
	assert.True(t, identity.IsStaff())
	assert.False(t, identity.IsSuperuser())
	assert.True(t, identity.IsAuthenticated())
	assert.False(t, identity.IsAnonymous())

	for _, perm := range []string{"", "users.add", "academy.delete_group", "anything"} {
		assert.False(t, identity.HasPerm(perm))
	}
	assert.False(t, identity.HasPerms([]string{"users.add"}))
	assert.False(t, identity.HasPerms(nil))
	assert.False(t, identity.HasModulePerms("academy"))
	assert.Empty(t, identity.Permissions())
}

func TestResolveIdentity_EmptyClaims(t *testing.T) {
	identity := ResolveIdentity(jwtlib.MapClaims{})

	assert.Equal(t, "", identity.ID())
	assert.Equal(t, "", identity.Phone())
	assert.Equal(t, "", identity.FullName())
	assert.False(t, identity.IsStaff())
	assert.False(t, identity.IsSuperuser())
	assert.True(t, identity.IsAuthenticated())
}

func TestResolveIdentity_NilClaims(t *testing.T) {
	identity := ResolveIdentity(nil)
	assert.Equal(t, "", identity.ID())
	assert.True(t, identity.IsAuthenticated())
}

func TestResolveIdentity_NumericSubject(t *testing.T) {
	// JSON decoding turns numeric claims into float64
	identity := ResolveIdentity(jwtlib.MapClaims{"user_id": float64(42)})
	assert.Equal(t, "42", identity.ID())
}

func TestResolveIdentity_NonBoolFlag(t *testing.T) {
	identity := ResolveIdentity(jwtlib.MapClaims{"is_staff": "yes"})
	assert.False(t, identity.IsStaff())
}

func TestIdentity_MutatorsUnsupported(t *testing.T) {
	identity := ResolveIdentity(jwtlib.MapClaims{"user_id": "42"})

	assert.ErrorIs(t, identity.Save(), apperrors.ErrUnsupportedOperation)
	assert.ErrorIs(t, identity.Delete(), apperrors.ErrUnsupportedOperation)
	assert.ErrorIs(t, identity.SetPassword("x"), apperrors.ErrUnsupportedOperation)
	assert.ErrorIs(t, identity.CheckPassword("x"), apperrors.ErrUnsupportedOperation)
}

func TestIdentity_Equality(t *testing.T) {
	a := ResolveIdentity(jwtlib.MapClaims{"user_id": "42", "phone": "111111111"})
	b := ResolveIdentity(jwtlib.MapClaims{"user_id": "42", "phone": "222222222"})
	c := ResolveIdentity(jwtlib.MapClaims{"user_id": "43"})

	// Equality is defined over the subject identifier only
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, a.HashKey(), b.HashKey())
	assert.NotEqual(t, a.HashKey(), c.HashKey())
}

func TestIdentity_ClaimFallback(t *testing.T) {
	identity := ResolveIdentity(jwtlib.MapClaims{
		"user_id": "42",
		"tenant":  "branch-7",
	})

	v, ok := identity.Claim("tenant")
	assert.True(t, ok)
	assert.Equal(t, "branch-7", v)

	v, ok = identity.Claim("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestIdentity_String(t *testing.T) {
	identity := ResolveIdentity(jwtlib.MapClaims{"user_id": "42"})
	assert.Equal(t, "TokenIdentity 42", identity.String())
}
