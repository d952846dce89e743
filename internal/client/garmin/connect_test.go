package garmin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"striderun.dev/backend/internal/app/appconfig"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
)

func testClient(t *testing.T, handler http.Handler) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conf := &appconfig.Config{}
	conf.ConnectAPIBaseURL = server.URL
	conf.ConnectCallTimeout = 2 * time.Second
	conf.ConnectCallRetries = 2

	return NewFactory(conf)(types.SourceCredentials{
		Email:    "runner@example.com",
		Password: "secret",
	})
}

func loginOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"access_token":"token-1"}`))
}

func TestConnectLoginRejected(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.Login(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrVendorAuth))
}

func TestConnectGetActivities(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth-service/token":
			loginOK(w)
		case "/activitylist-service/activities/search/activities":
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			assert.Equal(t, "0", r.URL.Query().Get("start"))
			assert.Equal(t, "100", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"activityId":111,"activityName":"Morning Run","startTimeLocal":"2026-03-01 08:00:00.0"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, client.Login(context.Background()))

	activities, err := client.GetActivities(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, int64(111), activities[0].ActivityID)
	assert.Equal(t, "Morning Run", activities[0].ActivityName)
}

func TestConnectGetActivitySplits(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth-service/token":
			loginOK(w)
		case "/activity-service/activity/111/splits":
			_, _ = w.Write([]byte(`{"activityId":111,"lapDTOs":[{"lapIndex":1,"startTimeGMT":"2026-03-01 07:00:00.0"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, client.Login(context.Background()))

	splits, err := client.GetActivitySplits(context.Background(), 111)
	require.NoError(t, err)
	assert.Equal(t, int64(111), splits.ActivityID)
	require.Len(t, splits.LapDTOs, 1)
	assert.Equal(t, 1, splits.LapDTOs[0].LapIndex)
}

func TestConnectFetchFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth-service/token" {
			loginOK(w)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))

	require.NoError(t, client.Login(context.Background()))

	_, err := client.GetActivities(context.Background(), 0, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrVendorFetch))
}

func TestConnectFetchWithoutLogin(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := client.GetActivities(context.Background(), 0, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrVendorAuth))
}

func TestConnectFetchRetriesTransientFailure(t *testing.T) {
	attempts := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth-service/token" {
			loginOK(w)
			return
		}
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	require.NoError(t, client.Login(context.Background()))

	activities, err := client.GetActivities(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Empty(t, activities)
	assert.Equal(t, 2, attempts)
}
