// Package cli implements the tripagent CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tripagent/tripagent/internal/ai"
	"github.com/tripagent/tripagent/internal/catalog"
	"github.com/tripagent/tripagent/internal/match"
)

var (
	dbPath      string
	formatFlag  string
	weightsPath string
	verbose     bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "tripagent",
	Short: "AI travel assistant for the terminal",
	Long:  "Plans trips from plain-language answers: extracts a traveler profile, scores a package catalog against it, and recommends the best fits. Works with or without an AI provider.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Local .env mirrors how the provider keys are usually stored.
		_ = godotenv.Load()
		log.SetLevel(log.WarnLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Catalog database path (default: $TRIPAGENT_DB or ~/.tripagent/catalog.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().StringVarP(&weightsPath, "weights", "w", "", "Scoring weights JSON (default: $TRIPAGENT_WEIGHTS or built-ins)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("TRIPAGENT_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tripagent", "catalog.db")
}

func openStore() (*catalog.Store, error) {
	return catalog.Open(getDBPath())
}

func loadWeights() match.Weights {
	path := weightsPath
	if path == "" {
		path = os.Getenv("TRIPAGENT_WEIGHTS")
	}
	if path == "" {
		return match.DefaultWeights()
	}
	w, err := match.LoadWeights(path)
	if err != nil {
		exitErr("load weights", err)
	}
	return w
}

// newAIClient builds the model client. Absent configuration is not an
// error: the assistant degrades to patterns and canned answers.
func newAIClient() ai.Client {
	client, err := ai.NewFromEnv()
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			log.Debug("no ai provider configured, using pattern extraction")
			return nil
		}
		exitErr("ai setup", err)
	}
	return client
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
