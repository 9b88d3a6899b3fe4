// Package cli holds the cobra command tree of the aleph binary. Each
// API operation is one subcommand; the client is built lazily so help
// and flag parsing never require credentials.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/client"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/config"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/infra/httpx"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/model"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/version"
)

// NewRootCmd assembles the full command tree, one subcommand per API
// operation.
func NewRootCmd(f *Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aleph",
		Short:         "Command line client for the Aleph Alpha API",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewVersionCmd(f),
		NewModelsCmd(f),
		NewCompleteCmd(f),
		NewTokenizeCmd(f),
		NewDetokenizeCmd(f),
		NewEmbedCmd(f),
		NewEvaluateCmd(f),
	)

	return rootCmd
}

// Factory builds API clients and model facades from the loaded
// configuration.
type Factory struct {
	cfg    *config.Config
	logger *logrus.Logger
}

func NewFactory(cfg *config.Config, logger *logrus.Logger) *Factory {
	return &Factory{cfg: cfg, logger: logger}
}

// Client validates the configuration and constructs the API client.
func (f *Factory) Client() (*client.Client, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []client.Option{
		client.WithLogger(f.logger),
		client.WithHTTPClient(httpx.NewHTTPClient(httpx.WithTimeout(f.cfg.Client.Timeout))),
		client.WithMaxRetries(f.cfg.Client.MaxRetries),
		client.WithRetryDelay(f.cfg.Client.RetryDelay),
	}
	if f.cfg.Client.Token != "" {
		opts = append(opts, client.WithToken(f.cfg.Client.Token))
	} else {
		opts = append(opts, client.WithCredentials(f.cfg.Client.Email, f.cfg.Client.Password))
	}
	if f.cfg.Breaker.Enabled {
		opts = append(opts, client.WithCircuitBreaker(
			httpx.NewCircuitBreaker("aleph-api", f.cfg.Breaker.Timeout, f.cfg.Breaker.MaxFailures),
		))
	}

	return client.New(f.cfg.Client.URL, opts...)
}

// Model binds a client to the model named on the command line, falling
// back to the configured default model.
func (f *Factory) Model(name string) (*model.Model, error) {
	if name == "" {
		name = f.cfg.Client.Model
	}
	if name == "" {
		return nil, fmt.Errorf("no model given, set --model or client.model in the config")
	}
	c, err := f.Client()
	if err != nil {
		return nil, err
	}
	return model.New(c, name, model.WithHosting(f.cfg.Client.Hosting))
}

func parseIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no ids given")
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
