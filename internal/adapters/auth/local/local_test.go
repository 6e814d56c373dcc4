package local

import (
	"context"
	"testing"

	"stray-pets/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider() *Provider {
	p := NewProvider()
	p.cost = bcrypt.MinCost
	return p
}

func TestProvider_SignUpSignInVerify(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	uid, err := p.SignUp(ctx, auth.SignUpInput{Email: "Mina@Example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	sess, err := p.SignIn(ctx, "mina@example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uid, sess.UserID)
	assert.Equal(t, "mina@example.com", sess.Email)

	claims, err := p.Verify(ctx, sess.IDToken)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: uid, Email: "mina@example.com"}, claims)
}

func TestProvider_Rejections(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	_, err := p.SignUp(ctx, auth.SignUpInput{Email: "a@b.c", Password: "secret1"})
	require.NoError(t, err)

	_, err = p.SignUp(ctx, auth.SignUpInput{Email: "A@B.C", Password: "other"})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	_, err = p.SignIn(ctx, "a@b.c", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nobody@b.c", "secret1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = p.Verify(ctx, "made-up")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = p.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
