package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goto/remark/domain"
)

const (
	defaultIDField   = "user_id"
	defaultNameField = "username"
)

type HTTPResolverConfig struct {
	// URL of the endpoint returning the current user for a bearer token.
	URL       string `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
	IDField   string `mapstructure:"id_field" yaml:"id_field" default:"user_id"`
	NameField string `mapstructure:"name_field" yaml:"name_field" default:"username"`
}

// HTTPResolver asks the user service who owns a bearer token.
type HTTPResolver struct {
	config HTTPResolverConfig
	client *http.Client
}

func NewHTTPResolver(cfg HTTPResolverConfig, client *http.Client) (*HTTPResolver, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: url can't be empty", ErrInvalidConfig)
	}
	if cfg.IDField == "" {
		cfg.IDField = defaultIDField
	}
	if cfg.NameField == "" {
		cfg.NameField = defaultNameField
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPResolver{config: cfg, client: client}, nil
}

func (r *HTTPResolver) ResolveCaller(ctx context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrEmptyToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.config.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting caller identity: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized, res.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: identity service responded %d", ErrInvalidToken, res.StatusCode)
	case res.StatusCode >= 300:
		return nil, fmt.Errorf("unexpected identity service response: %d", res.StatusCode)
	}

	var body map[string]interface{}
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding identity response: %w", err)
	}

	id := stringField(body, r.config.IDField)
	if id == "" {
		return nil, fmt.Errorf("%w: identity response has no %q", ErrInvalidToken, r.config.IDField)
	}
	return &domain.Caller{
		ID:          id,
		DisplayName: stringField(body, r.config.NameField),
	}, nil
}

func stringField(body map[string]interface{}, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
