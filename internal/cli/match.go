package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripagent/tripagent/internal/catalog"
	"github.com/tripagent/tripagent/internal/match"
	"github.com/tripagent/tripagent/internal/profile"
)

func init() {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score the catalog against preferences given as flags",
		Long: `Score every package against a profile built from flags, without the
interview. Flag values go through the same keyword extraction as typed
answers, so --budget "under $2000" or --duration "2 weeks" work.`,
		Run: runMatch,
	}

	cmd.Flags().String("destination", "", "Where to go")
	cmd.Flags().String("budget", "", "Budget, e.g. \"1500-3000\" or \"under $2000\"")
	cmd.Flags().String("duration", "", "Trip length, e.g. \"10 days\" or \"2 weeks\"")
	cmd.Flags().String("style", "", "Travel style, e.g. \"romantic\"")
	cmd.Flags().String("group", "", "Who is going, e.g. \"2 people\" or \"family of 4\"")
	cmd.Flags().String("season", "", "When to go, e.g. \"summer\" or \"in December\"")
	cmd.Flags().IntP("threshold", "t", match.DefaultThreshold, "Minimum compatibility score to recommend")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 for all)")

	RootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) {
	threshold, _ := cmd.Flags().GetInt("threshold")
	limit, _ := cmd.Flags().GetInt("limit")

	inputs := []struct {
		flag string
		cat  profile.Category
	}{
		{"destination", profile.CategoryDestination},
		{"budget", profile.CategoryBudget},
		{"duration", profile.CategoryDuration},
		{"style", profile.CategoryStyle},
		{"group", profile.CategoryGroup},
		{"season", profile.CategorySeason},
	}

	ctx := cmd.Context()
	norm := profile.NewNormalizer(nil)
	p := profile.NewProfile()
	for _, in := range inputs {
		value, _ := cmd.Flags().GetString(in.flag)
		if value == "" {
			continue
		}
		a, err := norm.Normalize(ctx, in.cat, value)
		if err != nil {
			exitErr("parse --"+in.flag, err)
		}
		if !a.Source.Specified() {
			exitErr("parse --"+in.flag,
				fmt.Errorf("cannot read %q as a %s", value, strings.ToLower(in.cat.Label())))
		}
		p.Apply(a)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	if _, err := catalog.SeedIfEmpty(ctx, s); err != nil {
		exitErr("seed catalog", err)
	}
	pkgs, err := s.List(ctx)
	if err != nil {
		exitErr("list packages", err)
	}

	matches := match.NewScorer(loadWeights()).Recommend(p, pkgs, threshold)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(matches, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Println(renderProfile(p))
	fmt.Println(renderMatches(matches))
}
