package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"magento-commerce-actions/internal/actions"
	"magento-commerce-actions/internal/config"
	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
)

// ErrUnknownAction is returned by Invoke when no action has the given name
var ErrUnknownAction = errors.New("unknown action")

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Registry *prometheus.Registry
	Metrics  *magento.Metrics
	Actions  *actions.Actions

	// Internal dependencies
	httpClient *http.Client
}

// Option customizes the container
type Option func(*Container)

// WithHTTPClient replaces the backend HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) { c.httpClient = client }
}

// WithLogger replaces the logger built from configuration
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) { c.Logger = logger }
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &Container{
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(container)
	}

	if container.Logger == nil {
		logger, err := NewLogger(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		container.Logger = logger
	}

	if container.httpClient == nil {
		container.httpClient = &http.Client{Timeout: cfg.Magento.Timeout}
	}

	container.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	container.Metrics = magento.NewMetrics(container.Registry)

	container.Actions = actions.New(
		actions.WithHTTPClient(container.httpClient),
		actions.WithLogger(container.Logger),
		actions.WithObserver(container.Metrics),
	)

	return container, nil
}

// NewLogger builds the application logger from configuration
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(parsed)

	if cfg.LogFormat == "json" || cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// Args merges invocation parameters with the configured defaults. Server
// keys come from configuration only; callers cannot supply or override them.
func (c *Container) Args(params map[string]interface{}) map[string]interface{} {
	args := make(map[string]interface{}, len(params))
	for k, v := range params {
		if config.IsServerArg(k) {
			continue
		}
		args[k] = v
	}
	for k, v := range c.Config.DefaultArgs() {
		args[k] = v
	}
	return args
}

// Invoke runs the named action with params merged into the configured
// defaults. The only error is ErrUnknownAction; action failures are
// reported inside the envelope.
func (c *Container) Invoke(ctx context.Context, name string, params map[string]interface{}) (*envelope.Envelope, error) {
	action, ok := c.Actions.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	c.Logger.WithField("action", name).Debug("Invoking action")
	return action(ctx, c.Args(params)), nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}
