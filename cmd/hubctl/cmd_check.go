package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"womenhub/internal/assistant"
)

var errCheckFailed = errors.New("one or more checks failed")

const probeTimeout = 30 * time.Second

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and reachability of external services",
}

var checkEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Show which credentials are set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProbes(cmd.Context(), cmd.OutOrStdout(), probe{name: "env", run: probeEnv})
	},
}

var checkDBCmd = &cobra.Command{
	Use:   "db",
	Short: "Ping the database and list its tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProbes(cmd.Context(), cmd.OutOrStdout(), probe{name: "db", run: probeDB})
	},
}

var checkAICmd = &cobra.Command{
	Use:   "ai",
	Short: "Send a trivial prompt to the configured model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProbes(cmd.Context(), cmd.OutOrStdout(), probe{name: "ai", run: probeAI})
	},
}

var checkAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every check concurrently",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProbes(cmd.Context(), cmd.OutOrStdout(),
			probe{name: "env", run: probeEnv},
			probe{name: "db", run: probeDB},
			probe{name: "ai", run: probeAI},
		)
	},
}

type probe struct {
	name string
	run  func(ctx context.Context) (string, error)
}

type probeResult struct {
	detail string
	err    error
}

// runProbes runs every probe concurrently and prints one PASS or FAIL line per
// probe in the order given. A failing probe does not cancel the others.
func runProbes(ctx context.Context, w io.Writer, probes ...probe) error {
	results := make([]probeResult, len(probes))

	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()

			detail, err := p.run(pctx)
			results[i] = probeResult{detail: detail, err: err}
			return nil
		})
	}
	g.Wait()

	failed := false
	for i, p := range probes {
		r := results[i]
		if r.err != nil {
			failed = true
			fmt.Fprintf(w, "FAIL  %-4s %v\n", p.name, r.err)
		} else {
			fmt.Fprintf(w, "PASS  %-4s %s\n", p.name, r.detail)
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func probeEnv(ctx context.Context) (string, error) {
	var set, missing []string
	for _, c := range cfg.Credentials() {
		if c.Set {
			set = append(set, c.Name)
		} else {
			missing = append(missing, c.Name)
		}
	}

	detail := "set: " + joinOrNone(set) + "; missing: " + joinOrNone(missing)
	if cfg.AI.APIKey() != "" && strings.TrimSpace(cfg.AI.Model) == "" {
		return "", fmt.Errorf("%s (AI_MODEL is required when a provider key is set)", detail)
	}
	return detail, nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func probeDB(ctx context.Context) (string, error) {
	db, err := openDB(ctx)
	if err != nil {
		return "", err
	}
	defer db.CloseDB()

	tables, err := db.ListTables(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, %d tables", db.Dialect, len(tables)), nil
}

func probeAI(ctx context.Context) (string, error) {
	gen, err := assistant.NewGenerator(ctx, cfg.AI)
	if err != nil {
		return "", err
	}
	if gen == nil {
		return "", errors.New("no provider key configured, assistant runs in fallback mode")
	}

	text, err := gen.Generate(ctx, assistant.Prompt{User: "Reply with the single word: ready", MaxTokens: 10})
	if err != nil {
		return "", fmt.Errorf("%s: %w", gen.Model(), err)
	}
	if text == "" {
		return "", fmt.Errorf("%s: empty response", gen.Model())
	}
	return fmt.Sprintf("%s answered %q", gen.Model(), text), nil
}
