package studiosync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lenshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchCategoriesDecodesEnvelope(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"categories":[{"id":"c1","name":"Wedding","slug":"wedding","active":true}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", zap.NewNop())
	cats, err := c.FetchCategories(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Wedding", cats[0].Name)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "/categories?includeInactive=true", gotPath)
}

func TestEnvelopeFailureCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"message":"categories are locked"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", zap.NewNop())
	_, err := c.FetchCategories(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categories are locked")
}

func TestNon2xxStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", zap.NewNop())
	_, err := c.FetchCoupons(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestUnauthorizedInvokesHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var hookCalled bool
	c := NewClient(srv.URL, "expired", zap.NewNop())
	c.OnUnauthorized = func() { hookCalled = true }

	_, err := c.FetchGifts(context.Background())
	require.Error(t, err)
	assert.True(t, hookCalled)
}

func TestCreateCategoryPostsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"category":{"id":"c9","name":"Newborn","slug":"newborn","active":true}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", zap.NewNop())
	created, err := c.CreateCategory(context.Background(), models.Category{Name: "Newborn", Slug: "newborn"})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
}

func TestSyncedCollectionOverClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"gifts":[{"id":"g1","name":"Frame","price":400,"stock":3,"active":true}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", zap.NewNop())
	gifts, err := GiftSource{Client: c}.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, "Frame", gifts[0].Name)
}
