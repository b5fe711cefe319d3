package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tripagent/tripagent/internal/advisor"
	"github.com/tripagent/tripagent/internal/catalog"
	"github.com/tripagent/tripagent/internal/match"
	"github.com/tripagent/tripagent/internal/profile"
)

// askAttempts is how many answers we accept per dimension before
// moving on with it unspecified.
const askAttempts = 3

func init() {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Interview, score the catalog, and chat about the results",
		Run:   runPlan,
	}

	cmd.Flags().IntP("threshold", "t", match.DefaultThreshold, "Minimum compatibility score to recommend")
	cmd.Flags().IntP("limit", "l", 5, "Max recommendations to show")
	cmd.Flags().Bool("no-chat", false, "Skip the follow-up conversation")

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	threshold, _ := cmd.Flags().GetInt("threshold")
	limit, _ := cmd.Flags().GetInt("limit")
	noChat, _ := cmd.Flags().GetBool("no-chat")

	s, err := openStore()
	if err != nil {
		exitErr("open catalog", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	if seeded, err := catalog.SeedIfEmpty(ctx, s); err != nil {
		exitErr("seed catalog", err)
	} else if seeded {
		log.Debug("seeded catalog with sample packages")
	}

	pkgs, err := s.List(ctx)
	if err != nil {
		exitErr("list packages", err)
	}

	client := newAIClient()
	sess := &planSession{
		in:      bufio.NewScanner(os.Stdin),
		norm:    profile.NewNormalizer(client),
		adv:     advisor.New(client),
		profile: profile.NewProfile(),
	}

	fmt.Println(titleStyle.Render("tripagent"))
	fmt.Println("Let's plan a trip. Press Ctrl-D at any point to stop.")
	if client == nil {
		fmt.Println(faintStyle.Render("(no AI provider configured; using keyword matching)"))
	}
	fmt.Println()

	sess.interview(ctx)

	matches := match.NewScorer(loadWeights()).Recommend(sess.profile, pkgs, threshold)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	if formatFlag == "json" {
		out := struct {
			Profile *profile.Profile    `json:"profile"`
			Matches []match.ScoredMatch `json:"matches"`
		}{sess.profile, matches}
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Println()
	fmt.Println(renderMatches(matches))
	fmt.Println(renderLodging(advisor.LodgingSuggestions(sess.profile)))

	if noChat || sess.eof {
		return
	}
	sess.chat(ctx, matches)
}

// planSession holds the interactive state for one plan run. eof flips
// once stdin closes and every loop checks it so Ctrl-D exits cleanly.
type planSession struct {
	in      *bufio.Scanner
	norm    *profile.Normalizer
	adv     *advisor.Advisor
	profile *profile.Profile
	eof     bool
}

func (s *planSession) readLine(prompt string) (string, bool) {
	if s.eof {
		return "", false
	}
	fmt.Print(prompt)
	if !s.in.Scan() {
		s.eof = true
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *planSession) say(msg string) {
	fmt.Printf("%s %s\n", agentStyle.Render("agent:"), msg)
}

func (s *planSession) interview(ctx context.Context) {
	s.say("Tell me about the trip you're planning, in your own words.")
	opener, ok := s.readLine("you: ")
	if !ok {
		return
	}

	if opener != "" {
		for _, c := range profile.Categories {
			a, err := s.norm.Normalize(ctx, c, opener)
			if err != nil || !a.Source.Specified() {
				continue
			}
			s.profile.Apply(a)
			fmt.Println(okLine(c.Label(), s.profile.Display(c)))
		}
	}

	for _, c := range s.profile.Unspecified() {
		s.askCategory(ctx, c, opener)
		if s.eof {
			return
		}
	}

	s.confirm(ctx)
}

// askCategory asks for one dimension, up to askAttempts times. The
// first attempt lets the model phrase a follow-up from the opener;
// retries fall back to the stock question. A blank answer uses up an
// attempt.
func (s *planSession) askCategory(ctx context.Context, c profile.Category, opener string) {
	for attempt := 1; attempt <= askAttempts; attempt++ {
		question := c.Question()
		if attempt == 1 && opener != "" {
			question = s.norm.FollowupQuestion(ctx, c, opener)
		}
		s.say(question)

		input, ok := s.readLine("you: ")
		if !ok {
			return
		}
		if input == "" {
			fmt.Println(faintStyle.Render("(nothing entered)"))
			continue
		}

		a, err := s.norm.Normalize(ctx, c, input)
		if err != nil {
			continue
		}
		if a.Source.Specified() {
			s.profile.Apply(a)
			fmt.Println(okLine(c.Label(), s.profile.Display(c)))
			return
		}
		if attempt < askAttempts {
			s.say(fmt.Sprintf("I couldn't pin down a %s from that.", strings.ToLower(c.Label())))
		}
	}
	s.say(fmt.Sprintf("No worries, we can plan without a %s.", strings.ToLower(c.Label())))
}

func (s *planSession) confirm(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println(renderProfile(s.profile))
		answer, ok := s.readLine("Does this look right? (yes/no): ")
		if !ok {
			return
		}
		if !strings.HasPrefix(strings.ToLower(answer), "n") {
			return
		}
		s.correct(ctx)
		if s.eof {
			return
		}
	}
}

// correct lets the user redo one dimension by number. The new answer
// replaces the old value outright, even when it parses as unspecified.
func (s *planSession) correct(ctx context.Context) {
	fmt.Println("Which one should we fix?")
	for i, c := range profile.Categories {
		fmt.Printf("  %d. %s: %s\n", i+1, c.Label(), s.profile.Display(c))
	}

	choice, ok := s.readLine("number: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(profile.Categories) {
		fmt.Println(faintStyle.Render("(that's not one of the numbers above)"))
		return
	}
	c := profile.Categories[n-1]

	s.say(c.Question())
	input, ok := s.readLine("you: ")
	if !ok || input == "" {
		return
	}

	a, err := s.norm.Normalize(ctx, c, input)
	if err != nil {
		return
	}
	s.profile.Apply(a)
	fmt.Println(okLine("Updated "+strings.ToLower(c.Label()), s.profile.Display(c)))
}

func (s *planSession) chat(ctx context.Context, matches []match.ScoredMatch) {
	fmt.Println(sectionStyle.Render("Questions?"))
	fmt.Println(faintStyle.Render("Ask about the packages or your trip. Say \"bye\" when you're done."))
	for {
		question, ok := s.readLine("you: ")
		if !ok {
			return
		}
		if question == "" {
			fmt.Println(faintStyle.Render("(type a question, or \"bye\" to finish)"))
			continue
		}
		if advisor.IsExit(question) {
			s.say("Enjoy the trip!")
			return
		}
		s.say(s.adv.Answer(ctx, question, s.profile, matches))
		fmt.Println()
	}
}
