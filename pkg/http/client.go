package http

import (
	"net/http"
	"time"

	"github.com/goto/remark/pkg/opentelemetry/otelhttpclient"
)

type ClientConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout" default:"5s"`
	RetryCount int           `mapstructure:"retry_count" yaml:"retry_count" default:"2"`
	RetryDelay time.Duration `mapstructure:"retry_delay" yaml:"retry_delay" default:"200ms"`
}

// NewClient returns a traced client for calls to collaborating services.
// name labels the outgoing spans and metrics.
func NewClient(name string, cfg ClientConfig) *http.Client {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &RetryableTransport{
			Transport:  http.DefaultTransport,
			RetryCount: cfg.RetryCount,
			BaseDelay:  cfg.RetryDelay,
		},
	}
	return otelhttpclient.New(name, client)
}
