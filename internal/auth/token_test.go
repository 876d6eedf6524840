package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newIssuer(t *testing.T, secret string) *TokenIssuer {
	t.Helper()

	issuer, err := NewTokenIssuer(secret, time.Hour)
	require.NoError(t, err)

	return issuer
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "super-secret")
	userID := uuid.Must(uuid.NewV4())

	tok, err := issuer.Issue(userID, "a@b.com")
	require.NoError(t, err)

	id, err := issuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "a@b.com", id.Email)
}

func TestIssue_ClaimsShape(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "k")
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }
	userID := uuid.Must(uuid.NewV4())

	tok, err := issuer.Issue(userID, "x@y.z")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "x@y.z", claims.Email)
	assert.Equal(t, fixed.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("", time.Hour)
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestNewTokenIssuer_BadTTL(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("k", 0)
	require.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "secret")
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := issuer.Issue(uuid.Must(uuid.NewV4()), "a@b.com")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newIssuer(t, "right-secret").Issue(uuid.Must(uuid.NewV4()), "a@b.com")
	require.NoError(t, err)

	_, err = newIssuer(t, "wrong-secret").Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := newIssuer(t, "k").Parse("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.Must(uuid.NewV4()).String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = newIssuer(t, "k").Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_BadSubject(t *testing.T) {
	t.Parallel()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = newIssuer(t, "k").Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_MissingExpiry(t *testing.T) {
	t.Parallel()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.Must(uuid.NewV4()).String()},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = newIssuer(t, "k").Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHash(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckPasswordHash(hash, "1234"))
	assert.False(t, CheckPasswordHash(hash, "12345"))
	assert.False(t, CheckPasswordHash("not-a-hash", "1234"))
}

func TestPasswordHash_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestCompareDummy(t *testing.T) {
	t.Parallel()

	cost, err := bcrypt.Cost([]byte(dummyHash()))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	assert.False(t, CompareDummy("no such user"))
	assert.False(t, CompareDummy(""))
}
