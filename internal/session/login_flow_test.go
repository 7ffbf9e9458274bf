package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/shop-console/internal/apiclient"
	"github.com/example/shop-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// These tests run the full login exchange against a scripted API server:
// token extraction, slot persistence, bearer-authenticated profile fetch,
// and session enrichment.

func newLoginServer(t *testing.T, loginBody string) (*Store, *apiclient.Client, *memoryTokenStore) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(loginBody))
		case "/user/profile":
			if r.Header.Get("Authorization") != "Bearer abc" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"unauthorized"}`))
				return
			}
			w.Write([]byte(`{"data":{"id":9,"email":"a@b.com","roles":[{"id":3,"role":"Admin"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	slot := &memoryTokenStore{}
	store := NewStore(slot)
	client := apiclient.New(server.URL, store, zap.NewNop())
	return store, client, slot
}

func TestLoginFlow_TokenThenProfile_AdminSession(t *testing.T) {
	store, client, slot := newLoginServer(t, `{"data":{"accessToken":"abc"}}`)

	require.NoError(t, store.LogIn(context.Background(), client, "a@b.com", "pw"))

	sess := store.Current()
	assert.True(t, sess.Authenticated())
	require.NotNil(t, sess.User)
	assert.Equal(t, int64(9), sess.User.ID)
	assert.True(t, sess.HasAnyRole(model.RoleAdmin))
	assert.Equal(t, "abc", slot.token)
}

func TestLoginFlow_NoExtractableToken_ClearsSlot(t *testing.T) {
	store, client, slot := newLoginServer(t, `{"data":{"message":"welcome"}}`)
	slot.token = "stale"

	err := store.LogIn(context.Background(), client, "a@b.com", "pw")

	assert.ErrorIs(t, err, apiclient.ErrNoToken)
	assert.Empty(t, slot.token)
	assert.False(t, store.Current().Authenticated())
}
