package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripagent/tripagent/internal/profile"
)

func init() {
	cmd := &cobra.Command{
		Use:   "extract <category> [text]",
		Short: "Extract one preference dimension from free text",
		Long: `Extract a single dimension (destination, budget, duration, style,
group, season) from free text. Text can be positional args or piped via
stdin. Output is the normalized answer as JSON.`,
		Args: cobra.MinimumNArgs(1),
		Run:  runExtract,
	}

	cmd.Flags().Bool("no-ai", false, "Keyword extraction only, even with a provider configured")

	RootCmd.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	noAI, _ := cmd.Flags().GetBool("no-ai")

	var cat profile.Category
	for _, c := range profile.Categories {
		if string(c) == strings.ToLower(args[0]) {
			cat = c
			break
		}
	}
	if cat == "" {
		exitErr("extract", fmt.Errorf("unknown category %q (want one of: destination, budget, duration, style, group, season)", args[0]))
	}

	// Get text: positional args first, then check stdin
	var text string
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = string(b)
		}
	}

	client := newAIClient()
	if noAI {
		client = nil
	}

	a, err := profile.NewNormalizer(client).Normalize(cmd.Context(), cat, text)
	if err != nil {
		exitErr("extract", err)
	}

	b, _ := json.MarshalIndent(a, "", "  ")
	fmt.Println(string(b))
}
