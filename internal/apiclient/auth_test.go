package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/example/shop-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_TokenFieldVariants(t *testing.T) {
	bodies := map[string]string{
		"nested accessToken": `{"data":{"accessToken":"abc"}}`,
		"flat accessToken":   `{"accessToken":"abc"}`,
		"flat token":         `{"token":"abc"}`,
		"flat access_token":  `{"access_token":"abc"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/login", r.URL.Path)
				w.Write([]byte(body))
			})

			token, err := client.Login(context.Background(), "a@b.com", "pw")

			require.NoError(t, err)
			assert.Equal(t, "abc", token)
		})
	}
}

func TestLogin_NoToken_ContractViolation(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"message":"welcome"}}`))
	})

	_, err := client.Login(context.Background(), "a@b.com", "pw")

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestLogin_RemoteRejection(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "a@b.com", "pw")

	assert.Equal(t, "Invalid credentials", ErrorMessage(err, "Login failed."))
}

func TestProfile_UnwrapsUser(t *testing.T) {
	client := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/profile", r.URL.Path)
		w.Write([]byte(`{"data":{"id":9,"email":"a@b.com","roles":[{"id":3,"role":"Admin"}]}}`))
	})

	user, err := client.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.True(t, user.HasAnyRole(model.RoleAdmin))
}

func TestProfile_FlatBody(t *testing.T) {
	client := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":9,"email":"a@b.com","roleId":2}`))
	})

	user, err := client.Profile(context.Background())

	require.NoError(t, err)
	assert.True(t, user.HasAnyRole(model.RoleMerchant))
}

func TestRegister_OpaqueSuccess(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok"}`))
	})

	assert.NoError(t, client.Register(context.Background(), "a@b.com", "pw"))
}
