package imgbb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotForm map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = map[string]string{
				"key":   r.PostForm.Get("key"),
				"image": r.PostForm.Get("image"),
				"name":  r.PostForm.Get("name"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"success": true,
				"data": {
					"url": "https://i.ibb.co/abc/photo.png",
					"display_url": "https://i.ibb.co/display/photo.png",
					"delete_url": "https://ibb.co/delete/abc/hash",
					"thumb": {"url": "https://i.ibb.co/thumb/photo.png"}
				}
			}`))
		}))
		defer server.Close()

		client := NewClient("test-key")
		client.UploadURL = server.URL

		result, err := client.Upload(context.Background(), "aGVsbG8=", "profile.png")
		require.NoError(t, err)

		assert.Equal(t, "test-key", gotForm["key"])
		assert.Equal(t, "aGVsbG8=", gotForm["image"])
		assert.Equal(t, "profile.png", gotForm["name"])
		assert.Equal(t, "https://i.ibb.co/abc/photo.png", result.Url)
		assert.Equal(t, "https://i.ibb.co/display/photo.png", result.DisplayUrl)
		assert.Equal(t, "https://ibb.co/delete/abc/hash", result.DeleteUrl)
		assert.Equal(t, "https://i.ibb.co/thumb/photo.png", result.ThumbUrl)
	})

	t.Run("Defaults File Name", func(t *testing.T) {
		var gotName string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotName = r.PostForm.Get("name")
			w.Write([]byte(`{"success": true, "data": {"url": "https://i.ibb.co/x/y.png"}}`))
		}))
		defer server.Close()

		client := NewClient("test-key")
		client.UploadURL = server.URL

		_, err := client.Upload(context.Background(), "aGVsbG8=", "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(gotName, "sewalink-"), "got name %q", gotName)
	})

	t.Run("API Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success": false, "error": {"message": "Invalid API key"}}`))
		}))
		defer server.Close()

		client := NewClient("bad-key")
		client.UploadURL = server.URL

		_, err := client.Upload(context.Background(), "aGVsbG8=", "x.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("Unreachable Host", func(t *testing.T) {
		client := NewClient("test-key")
		client.UploadURL = "http://127.0.0.1:1/upload"

		_, err := client.Upload(context.Background(), "aGVsbG8=", "x.png")
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		hit := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = true
			assert.Equal(t, http.MethodGet, r.Method)
		}))
		defer server.Close()

		client := NewClient("test-key")
		err := client.Delete(context.Background(), server.URL+"/delete/abc/hash")

		assert.NoError(t, err)
		assert.True(t, hit)
	})

	t.Run("Failure Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient("test-key")
		err := client.Delete(context.Background(), server.URL+"/delete/missing")

		assert.Error(t, err)
	})
}
