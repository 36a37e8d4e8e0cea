package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrInvalidToken = errors.New("facebook access token is invalid or expired")

// profileFields are requested from the Graph API /me endpoint.
const profileFields = "id,name,email,picture.type(large)"

type Profile struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Picture Picture `json:"picture"`
}

type Picture struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// defines the methods that any identity provider client must implement.
type Client interface {
	GetProfile(ctx context.Context, accessToken string) (*Profile, error)
}

type graphClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &graphClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetProfile exchanges a user access token for the profile of its owner.
func (c *graphClient) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {

	if accessToken == "" {
		return nil, ErrInvalidToken
	}

	query := url.Values{}
	query.Set("fields", profileFields)
	query.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call graph api: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read graph api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gErr graphError
		_ = json.Unmarshal(body, &gErr)

		// 190 is the Graph API code for an invalid OAuth token
		if resp.StatusCode == http.StatusUnauthorized || gErr.Error.Code == 190 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidToken, gErr.Error.Message)
		}

		return nil, fmt.Errorf("graph api returned status %d: %s", resp.StatusCode, gErr.Error.Message)
	}

	var profile Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode graph api profile: %w", err)
	}

	if profile.ID == "" {
		return nil, errors.New("graph api profile has no id")
	}

	return &profile, nil
}
