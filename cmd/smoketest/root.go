package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL      string
	secret       string
	projectID    string
	transcriptID string
	timeout      time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "smoketest",
		Short:         "Exercise a running bridge end to end",
		Long:          "Checks health, registers a meeting, sends a signed transcription webhook and reads the meeting back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.projectID == "" {
				opts.projectID = "smoke-" + uuid.NewString()[:8]
			}
			r := &runner{
				opts:   opts,
				client: &http.Client{Timeout: opts.timeout},
				out:    cmd.OutOrStdout(),
			}
			return r.run(cmd.Context())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.baseURL, "base-url", envOr("SMOKE_BASE_URL", "http://localhost:8000"), "Bridge base URL")
	flags.StringVar(&opts.secret, "secret", os.Getenv("FIREFLIES_WEBHOOK_SECRET"), "Webhook signing secret")
	flags.StringVar(&opts.projectID, "project", "", "Project ID to attach the meeting to (random when empty)")
	flags.StringVar(&opts.transcriptID, "transcript-id", "", "Fireflies transcript ID to announce; injects a transcript through /test-utils when empty")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-request timeout")

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func stepf(r *runner, format string, args ...interface{}) {
	fmt.Fprintf(r.out, "==> "+format+"\n", args...)
}
