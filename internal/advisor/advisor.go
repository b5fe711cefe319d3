// Package advisor answers follow-up questions after recommendations
// and suggests where to stay.
package advisor

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tripagent/tripagent/internal/ai"
	"github.com/tripagent/tripagent/internal/match"
	"github.com/tripagent/tripagent/internal/profile"
)

const answerTimeout = 30 * time.Second

// Advisor runs the post-recommendation consultation. A nil client
// limits it to the canned fallbacks.
type Advisor struct {
	Client ai.Client
}

// New builds an advisor around an optional model client.
func New(client ai.Client) *Advisor {
	return &Advisor{Client: client}
}

var exitWordRe = regexp.MustCompile(`\b(exit|quit|close|end|goodbye|bye)\b`)

// IsExit reports whether the input asks to end the conversation.
func IsExit(input string) bool {
	return exitWordRe.MatchString(strings.ToLower(input))
}

// Answer responds to a question about the recommended trips. With a
// model the reply is grounded in the profile and top matches;
// otherwise a canned recommendation. It never errors, so the caller
// always has something to print.
func (a *Advisor) Answer(ctx context.Context, question string, p *profile.Profile, matches []match.ScoredMatch) string {
	if a.Client != nil {
		ctx, cancel := context.WithTimeout(ctx, answerTimeout)
		defer cancel()
		reply, err := a.Client.Complete(ctx, consultPrompt(p, matches), question)
		if err == nil && strings.TrimSpace(reply) != "" {
			return strings.TrimSpace(reply)
		}
	}
	return fallbackAnswer(question, matches)
}

// consultPrompt gives the model the traveler's profile and the ranked
// matches so answers stay grounded in what was actually recommended.
func consultPrompt(p *profile.Profile, matches []match.ScoredMatch) string {
	var b strings.Builder
	b.WriteString("You are a travel expert helping a traveler choose between recommended packages.\n\n")
	b.WriteString("Traveler preferences:\n")
	for _, c := range profile.Categories {
		fmt.Fprintf(&b, "- %s: %s\n", c.Label(), p.Display(c))
	}

	top := matches
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) == 0 {
		b.WriteString("\nNo packages scored above the recommendation threshold.\n")
	} else {
		b.WriteString("\nRecommended packages:\n")
		for i, m := range top {
			pkg := m.Package
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, pkg.Name)
			fmt.Fprintf(&b, "   Destination: %s\n", pkg.Destination)
			fmt.Fprintf(&b, "   Price: %.0f-%.0f for %d days\n", pkg.PriceMin, pkg.PriceMax, pkg.DurationDays)
			fmt.Fprintf(&b, "   Styles: %s\n", strings.Join(pkg.Styles, ", "))
			fmt.Fprintf(&b, "   Rating: %.1f of 5, compatibility %d of 100\n", pkg.Rating, m.Score)
			if pkg.Activities != "" {
				fmt.Fprintf(&b, "   Activities: %s\n", pkg.Activities)
			}
			if pkg.Includes != "" {
				fmt.Fprintf(&b, "   Includes: %s\n", pkg.Includes)
			}
			if pkg.BestSeason != "" {
				fmt.Fprintf(&b, "   Best season: %s\n", pkg.BestSeason)
			}
		}
	}

	b.WriteString("\nRecommend the most suitable package for their question and explain why. ")
	b.WriteString("Answer general travel questions helpfully, relating back to the packages when relevant. ")
	b.WriteString("Be conversational and concise.")
	return b.String()
}

var recommendCueRe = regexp.MustCompile(`\b(recommend|suggest|best|which|choose|pick)\b`)

func fallbackAnswer(question string, matches []match.ScoredMatch) string {
	if len(matches) > 0 && recommendCueRe.MatchString(strings.ToLower(question)) {
		top := matches[0]
		pkg := top.Package

		var b strings.Builder
		fmt.Fprintf(&b, "Based on your preferences, %s is the strongest match.\n\n", pkg.Name)
		fmt.Fprintf(&b, "Why it fits:\n")
		fmt.Fprintf(&b, "- highest compatibility score: %d of 100\n", top.Score)
		fmt.Fprintf(&b, "- rated %.1f of 5\n", pkg.Rating)
		fmt.Fprintf(&b, "- %.0f-%.0f for %d days in %s\n", pkg.PriceMin, pkg.PriceMax, pkg.DurationDays, pkg.Destination)
		if len(pkg.Styles) > 0 {
			fmt.Fprintf(&b, "- suits %s travel\n", strings.Join(pkg.Styles, " and "))
		}
		if pkg.Activities != "" {
			fmt.Fprintf(&b, "\nYou would get: %s.", pkg.Activities)
		}
		if pkg.Includes != "" {
			fmt.Fprintf(&b, "\nThe package includes: %s.", pkg.Includes)
		}
		return b.String()
	}
	return "Happy to help with the recommended packages or any other question about your trip planning."
}
