package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-contact-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailJSClient_RequiresPublicKey(t *testing.T) {
	client, err := email.NewEmailJSClient("", "", "", nil)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestEmailJSClient_Send(t *testing.T) {
	dispatch := email.Dispatch{
		TemplateRef: email.TemplateRef{ServiceID: "Wasky_Links", TemplateID: "Wasky_Links_Contact"},
		Params: map[string]string{
			"name":    "Jo",
			"email":   "jo@x.com",
			"subject": "Hi",
			"message": "This is long enough.",
			"time":    "Wednesday, October 14, 2026 at 03 PM",
		},
	}

	t.Run("posts the template payload", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		client, err := email.NewEmailJSClient(srv.URL+"/", "public-key", "private-key", srv.Client())
		require.NoError(t, err)

		require.NoError(t, client.Send(context.Background(), dispatch))
		assert.Equal(t, "Wasky_Links", got["service_id"])
		assert.Equal(t, "Wasky_Links_Contact", got["template_id"])
		assert.Equal(t, "public-key", got["user_id"])
		assert.Equal(t, "private-key", got["accessToken"])
		params, ok := got["template_params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "jo@x.com", params["email"])
		assert.Equal(t, "Wednesday, October 14, 2026 at 03 PM", params["time"])
	})

	t.Run("omits access token when not configured", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		client, err := email.NewEmailJSClient(srv.URL, "public-key", "", srv.Client())
		require.NoError(t, err)
		require.NoError(t, client.Send(context.Background(), dispatch))
		assert.NotContains(t, got, "accessToken")
	})

	t.Run("provider rejection is a send failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("The template ID is invalid"))
		}))
		defer srv.Close()

		client, err := email.NewEmailJSClient(srv.URL, "public-key", "", srv.Client())
		require.NoError(t, err)

		err = client.Send(context.Background(), dispatch)
		require.Error(t, err)
		assert.ErrorIs(t, err, email.ErrSendFailed)
		assert.Contains(t, err.Error(), "The template ID is invalid")
	})

	t.Run("network failure is a send failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		client, err := email.NewEmailJSClient(url, "public-key", "", nil)
		require.NoError(t, err)

		err = client.Send(context.Background(), dispatch)
		assert.ErrorIs(t, err, email.ErrSendFailed)
	})

	t.Run("missing template id never reaches the provider", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		client, err := email.NewEmailJSClient(srv.URL, "public-key", "", srv.Client())
		require.NoError(t, err)

		bad := dispatch
		bad.TemplateID = ""
		err = client.Send(context.Background(), bad)
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		assert.False(t, called)
	})
}
