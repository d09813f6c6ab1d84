// Command hubctl administers a womenhub deployment: it creates the schema,
// loads sample data and checks that configured services are reachable.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"womenhub/internal/config"
	"womenhub/internal/database"
	"womenhub/internal/logging"
)

var (
	cfg     *config.Config
	logger  *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "Administer the women empowerment hub backend",
	Long: `hubctl reads the same environment (and .env file) as the API server.

Commands:
  initdb  - create every table and print a per-table summary
  seed    - insert the sample jobs and mentor profiles
  check   - verify credentials, database and assistant provider
  models  - list Gemini models that support generateContent`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			cfg = config.LoadConfig()
		}
		if logger == nil {
			level := "warn"
			if verbose {
				level = "debug"
			}
			l, err := logging.New(config.Log{Level: level, Format: "console"})
			if err != nil {
				return err
			}
			logger = l
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	checkCmd.AddCommand(checkEnvCmd, checkDBCmd, checkAICmd, checkAllCmd)
	rootCmd.AddCommand(initdbCmd, seedCmd, checkCmd, modelsCmd)
}

// openDB connects with the configured DSN; hubctl has no offline mode.
func openDB(ctx context.Context) (*database.DB, error) {
	db, err := database.Open(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
