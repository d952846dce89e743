package garmin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"striderun.dev/backend/internal/app/appconfig"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
)

type connectClient struct {
	baseURL     string
	callTimeout time.Duration
	retries     uint

	creds types.SourceCredentials
	http  *http.Client

	sessionToken string
}

// NewFactory builds Connect API clients from the service configuration.
func NewFactory(conf *appconfig.Config) Factory {
	return func(creds types.SourceCredentials) Client {
		return &connectClient{
			baseURL:     conf.ConnectAPIBaseURL,
			callTimeout: conf.ConnectCallTimeout,
			retries:     conf.ConnectCallRetries,
			creds:       creds,
			http: &http.Client{
				Timeout: conf.ConnectCallTimeout,
			},
		}
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *connectClient) Login(ctx context.Context) error {
	body, err := json.Marshal(loginRequest{
		Email:    c.creds.Email,
		Password: c.creds.Password,
	})
	if err != nil {
		return errors.Wrap(err, "garmin: marshal login request")
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/oauth-service/token", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "garmin: build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.ErrVendorAuth.Msg("failed to reach the vendor login endpoint: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperr.ErrVendorAuth.Msg("vendor login rejected with status %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return apperr.ErrVendorAuth.Msg("vendor login response is unreadable: %s", err)
	}
	if lr.AccessToken == "" {
		return apperr.ErrVendorAuth
	}

	c.sessionToken = lr.AccessToken
	return nil
}

func (c *connectClient) GetActivities(ctx context.Context, start, limit int) ([]types.SourceActivity, error) {
	url := fmt.Sprintf("%s/activitylist-service/activities/search/activities?start=%d&limit=%d", c.baseURL, start, limit)

	var activities []types.SourceActivity
	if err := c.getJSON(ctx, url, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *connectClient) GetActivitySplits(ctx context.Context, activityID int64) (*types.SourceSplits, error) {
	url := fmt.Sprintf("%s/activity-service/activity/%d/splits", c.baseURL, activityID)

	var splits types.SourceSplits
	if err := c.getJSON(ctx, url, &splits); err != nil {
		return nil, err
	}
	return &splits, nil
}

// getJSON performs an authenticated GET with bounded retries on transient
// failures. Non-2xx terminal responses surface as ErrVendorFetch.
func (c *connectClient) getJSON(ctx context.Context, url string, dest any) error {
	if c.sessionToken == "" {
		return apperr.ErrVendorAuth.Msg("session is not authenticated")
	}

	err := retry.Do(
		func() error {
			callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
			defer cancel()

			req, err := http.NewRequestWithContext(callCtx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Authorization", "Bearer "+c.sessionToken)

			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusInternalServerError {
				return errors.Errorf("vendor responded with status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(errors.Errorf("vendor responded with status %d", resp.StatusCode))
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(body, dest); err != nil {
				return retry.Unrecoverable(errors.Wrap(err, "decode vendor response"))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retries),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Uint("attempt", n).
				Str("url", url).
				Msg("garmin: retrying vendor call")
		}),
	)
	if err != nil {
		return apperr.ErrVendorFetch.Msg("vendor fetch failed: %s", err)
	}
	return nil
}
