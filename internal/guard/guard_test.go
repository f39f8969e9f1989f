package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession bool

func (f fakeSession) IsAuthenticated() bool { return bool(f) }

func TestResolve_PublicOnly(t *testing.T) {
	signedOut := New(fakeSession(false)).Resolve(PublicOnly)
	assert.True(t, signedOut.Allow)

	signedIn := New(fakeSession(true)).Resolve(PublicOnly)
	assert.False(t, signedIn.Allow)
	assert.Equal(t, ScreenDashboard, signedIn.RedirectTo)
}

func TestResolve_Protected(t *testing.T) {
	signedIn := New(fakeSession(true)).Resolve(Protected)
	assert.True(t, signedIn.Allow)

	signedOut := New(fakeSession(false)).Resolve(Protected)
	assert.False(t, signedOut.Allow)
	assert.Equal(t, ScreenLogin, signedOut.RedirectTo)
}
