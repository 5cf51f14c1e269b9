package commands

import (
	"context"
	"fmt"
	"os"

	"brightree-backend/lib/configutil"
	"brightree-backend/lib/restyutil"
	"brightree-backend/lib/scrapers/brightree"
	"brightree-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl string `json:"base_url"`
	// the raw Cookie header value of an authenticated portal session
	Cookie string `json:"cookie"`
}

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP(
		"verbose", "v", false,
		"Log every request and dump http transcripts to .dev/resty/brightree.",
	)
}

var rootCmd = &cobra.Command{
	Use:   "brightree-cli",
	Short: "brightree-cli exercises brightree portal automation against a live session.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
	os.Exit(1)
}

func createClient() *brightree.Client {
	telemetry.InitSlog(*verbose)
	if *verbose {
		brightree.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/brightree"))
	}

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		fatal("failed to read config", err)
	}
	client, err := brightree.NewClient(brightree.ClientOptions{
		BaseURL:       cfg.BaseUrl,
		SessionTokens: cfg.Cookie,
	})
	if err != nil {
		fatal("failed to initialize client", err)
	}
	return client
}
