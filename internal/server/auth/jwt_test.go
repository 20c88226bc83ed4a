package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("super-secret"), 0)
	tok, err := iss.Issue("user-123", "a@b.com")
	require.NoError(t, err)

	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestIssue_ExpiresAfterSevenDays(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	iss := NewIssuer([]byte("s"), DefaultTokenValidity).WithClock(fixedClock(t0))

	tok, err := iss.Issue("u1", "a@b.com")
	require.NoError(t, err)

	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, t0.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, t0.Unix(), claims.IssuedAt.Unix())
}

func TestVerify_ValidityWindow(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	iss := NewIssuer([]byte("s"), DefaultTokenValidity).WithClock(fixedClock(t0))
	tok, err := iss.Issue("u1", "a@b.com")
	require.NoError(t, err)

	iss.WithClock(fixedClock(t0.Add(6*24*time.Hour + 23*time.Hour)))
	_, err = iss.Verify(tok)
	require.NoError(t, err, "valid at 6d23h")

	iss.WithClock(fixedClock(t0.Add(7*24*time.Hour + time.Second)))
	_, err = iss.Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer([]byte("right-secret"), time.Hour).Issue("u2", "x@y.z")
	require.NoError(t, err)

	_, err = NewIssuer([]byte("wrong-secret"), time.Hour).Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	assert.NotErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("s"), time.Hour)
	for _, tok := range []string{"", "abc", "a.b.c", strings.Repeat("x", 200)} {
		_, err := iss.Verify(tok)
		require.ErrorIs(t, err, common.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("s"), time.Hour)
	tok, err := iss.Issue("u1", "a@b.com")
	require.NoError(t, err)

	other, err := iss.Issue("u2", "c@d.com")
	require.NoError(t, err)

	a := strings.Split(tok, ".")
	b := strings.Split(other, ".")
	forged := a[0] + "." + b[1] + "." + a[2]

	_, err = iss.Verify(forged)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "u1",
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)
	_, err = NewIssuer(secret, time.Hour).Verify(hs512)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewIssuer(secret, time.Hour).Verify(none)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MissingUserIDOrExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	iss := NewIssuer(secret, time.Hour)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)
	_, err = iss.Verify(noUser)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u1"}).SignedString(secret)
	require.NoError(t, err)
	_, err = iss.Verify(noExp)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
