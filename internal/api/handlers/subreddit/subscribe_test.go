package subreddit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Threddit/internal/api/middleware"
	"Threddit/internal/core/subreddits"
)

// MockSubredditService is a mock implementation of subreddits.Service for testing
type MockSubredditService struct {
	mock.Mock
}

func (m *MockSubredditService) GetByID(ctx context.Context, id string) (*subreddits.Subreddit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subreddits.Subreddit), args.Error(1)
}

func (m *MockSubredditService) GetAll(ctx context.Context) ([]*subreddits.Subreddit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subreddits.Subreddit), args.Error(1)
}

func (m *MockSubredditService) ListSubscribedIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSubredditService) ToggleSubscription(ctx context.Context, userID, subredditID string) (bool, error) {
	args := m.Called(ctx, userID, subredditID)
	return args.Bool(0), args.Error(1)
}

func TestHandleToggle(t *testing.T) {
	newRequest := func(userID string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/subreddits/subscribe/sub-1", nil)
		if userID != "" {
			req = req.WithContext(middleware.SetTestUserID(req.Context(), userID))
		}
		return req
	}

	t.Run("unauthenticated", func(t *testing.T) {
		service := new(MockSubredditService)
		handler := NewSubscribeHandler(service)

		r := chi.NewRouter()
		r.Post("/api/subreddits/subscribe/{id}", handler.HandleToggle)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		service.AssertNotCalled(t, "ToggleSubscription", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("subscribe reports new state", func(t *testing.T) {
		service := new(MockSubredditService)
		handler := NewSubscribeHandler(service)

		service.On("ToggleSubscription", mock.Anything, "user-1", "sub-1").Return(true, nil)

		r := chi.NewRouter()
		r.Post("/api/subreddits/subscribe/{id}", handler.HandleToggle)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest("user-1"))

		require.Equal(t, http.StatusOK, w.Code)

		var resp subscribeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Subscribed)
		assert.Equal(t, "sub-1", resp.SubredditID)
	})

	t.Run("unknown subreddit", func(t *testing.T) {
		service := new(MockSubredditService)
		handler := NewSubscribeHandler(service)

		service.On("ToggleSubscription", mock.Anything, "user-1", "sub-1").
			Return(false, subreddits.ErrNotFound)

		r := chi.NewRouter()
		r.Post("/api/subreddits/subscribe/{id}", handler.HandleToggle)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest("user-1"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "SubredditNotFound")
	})
}

func TestHandleGetAll(t *testing.T) {
	service := new(MockSubredditService)
	handler := NewListHandler(service)

	service.On("GetAll", mock.Anything).Return([]*subreddits.Subreddit{
		{ID: "sub-1", SubredditName: "golang"},
		{ID: "sub-2", SubredditName: "postgres"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/subreddits", nil)
	w := httptest.NewRecorder()
	handler.HandleGetAll(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var subs []*subreddits.Subreddit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	assert.Len(t, subs, 2)
}
