// Command discoveryctl scores discovery progress payloads and queries the
// discovery backend from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
)

const (
	defaultAPIURL  = "http://localhost:4000"
	defaultTimeout = 30 * time.Second
	envAPIURL      = "DISCOVERY_API_URL"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.msg != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.msg)
			}
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by the backend commands.
type rootOptions struct {
	apiURL  string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "discoveryctl",
		Short: "Score and inspect discovery project progress",
		Long: `discoveryctl computes discovery completion scores from progress payloads
and lists projects from a running discovery backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	apiURL := os.Getenv(envAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", apiURL, "discovery backend base URL (env "+envAPIURL+")")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "per-request timeout for backend calls")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log backend calls to stderr")

	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newProjectsCmd(opts))
	cmd.AddCommand(newHealthCmd(opts))
	return cmd
}

// exitError ends the process with code after printing msg, if any.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := "error"
	if o.verbose {
		level = "debug"
	}
	return logging.New(level, "text", w)
}

// client builds a backend client with a short retry budget suited to
// interactive use.
func (o *rootOptions) client(logger *slog.Logger) *acl.DiscoveryClient {
	cfg := config.ClientConfig{
		BaseURL: strings.TrimRight(o.apiURL, "/"),
		Timeout: o.timeout,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return acl.NewDiscoveryClient(httpclient.New(&cfg, "discovery-api", nil, logger), logger)
}
