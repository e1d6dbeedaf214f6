package lingo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	literrors "lit.dev/lit/internal/errors"
)

// defaultEngineTimeout bounds the single outbound engine call. There is no
// retry loop; a failed call falls back to heuristic generation.
const defaultEngineTimeout = 30 * time.Second

// Client is the interface for the remote text-generation service. Localize
// sends the payload and returns the response as free text to be parsed.
type Client interface {
	Localize(ctx context.Context, data map[string]string) (string, error)
}

// EngineClient talks to the Lingo.dev engine over HTTP
type EngineClient struct {
	http *resty.Client
}

type localizeLocale struct {
	Source *string `json:"source"`
	Target string  `json:"target"`
}

type localizeParams struct {
	Fast bool `json:"fast"`
}

type localizeRequest struct {
	Params localizeParams    `json:"params"`
	Locale localizeLocale    `json:"locale"`
	Data   map[string]string `json:"data"`
}

type localizeResponse struct {
	Data json.RawMessage `json:"data"`
}

// NewEngineClient creates an EngineClient for the given API key and engine
// base URL. A missing key is a configuration error; no network call is ever
// attempted without one.
func NewEngineClient(apiKey, baseURL string) (*EngineClient, error) {
	if apiKey == "" {
		return nil, literrors.ErrMissingAPIKey
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultEngineTimeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &EngineClient{http: httpClient}, nil
}

// Localize sends the payload to the engine's localization endpoint targeting
// English and returns the localized data as free text. The instruction
// embedded in the payload asks the engine to emit the generated commit as a
// single JSON object, so the returned text is handed to ParseResponse as-is.
func (c *EngineClient) Localize(ctx context.Context, data map[string]string) (string, error) {
	var result localizeResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(localizeRequest{
			Params: localizeParams{Fast: false},
			Locale: localizeLocale{Source: nil, Target: "en"},
			Data:   data,
		}).
		SetResult(&result).
		Post("/i18n")
	if err != nil {
		return "", literrors.NewEngineRequestError(err)
	}
	if resp.IsError() {
		return "", literrors.NewEngineRequestError(
			fmt.Errorf("engine returned %s: %s", resp.Status(), resp.String()))
	}

	if len(result.Data) == 0 {
		return "", literrors.NewEngineRequestError(fmt.Errorf("engine returned an empty response"))
	}

	// The data payload may be a JSON object or a quoted string of free text;
	// either way the commit JSON inside it is recovered by ParseResponse.
	var asString string
	if err := json.Unmarshal(result.Data, &asString); err == nil {
		return asString, nil
	}
	return string(result.Data), nil
}
