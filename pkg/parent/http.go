package parent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const idPlaceholder = "{id}"

type HTTPConfig struct {
	// URL is the lookup endpoint; "{id}" is replaced with the escaped parent id.
	URL     string            `mapstructure:"url"`
	Headers map[string]string `mapstructure:"headers"`
}

// HTTPValidator asks the service owning the parent entity whether it exists:
// 2xx means yes, 404 means no, anything else is an error.
type HTTPValidator struct {
	config HTTPConfig
	client *http.Client
}

func NewHTTPValidator(cfg HTTPConfig, client *http.Client) (*HTTPValidator, error) {
	if !strings.Contains(cfg.URL, idPlaceholder) {
		return nil, fmt.Errorf("%w: url %q has no %s placeholder", ErrInvalidValidatorConfig, cfg.URL, idPlaceholder)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPValidator{config: cfg, client: client}, nil
}

func (v *HTTPValidator) Exists(ctx context.Context, parentID string) (bool, error) {
	target := strings.ReplaceAll(v.config.URL, idPlaceholder, url.PathEscape(parentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	for k, val := range v.config.Headers {
		req.Header.Set(k, val)
	}

	res, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("looking up parent: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body) //nolint:errcheck

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return true, nil
	case res.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected parent lookup response: %d", res.StatusCode)
	}
}
