package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/handrank/internal/verify"
	"github.com/lox/handrank/poker"
)

// FormatCard renders a card coloured by suit.
func FormatCard(c poker.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// FormatHand formats cards with colors
func FormatHand(h poker.Hand) string {
	formatted := make([]string, len(h))
	for i, c := range h {
		formatted[i] = FormatCard(c)
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// FormatResult renders a classification, including the kicker for high
// card hands.
func FormatResult(r poker.Result) string {
	name := CategoryStyle(r.Category).Render(r.Category.String())
	if r.Category == poker.HighCard {
		return name + " " + InfoStyle.Render("(") + FormatCard(r.Kicker) + InfoStyle.Render(")")
	}
	return name
}

// FormatEvaluation renders one evaluated hand on a single line.
func FormatEvaluation(h poker.Hand, r poker.Result, s poker.Strength) string {
	return fmt.Sprintf("%s  %s  %s", FormatHand(h), FormatResult(r), StrengthStyle.Render(fmt.Sprintf("#%d", s)))
}

// FormatStandings lists hands strongest first and marks the winners.
func FormatStandings(hands []poker.Hand, winners []int) string {
	won := make(map[int]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}

	order := make([]int, len(hands))
	strengths := make([]poker.Strength, len(hands))
	for i, h := range hands {
		order[i] = i
		strengths[i] = poker.Evaluate(h)
	}
	// Stable insertion keeps input order among ties.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && strengths[order[j]] < strengths[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var b strings.Builder
	for _, i := range order {
		marker := "  "
		if won[i] {
			marker = SuccessStyle.Render("★ ")
		}
		fmt.Fprintf(&b, "%s%d. %s\n", marker, i+1, FormatEvaluation(hands[i], poker.EvaluateResult(hands[i]), strengths[i]))
	}

	switch {
	case len(winners) == 1:
		fmt.Fprintf(&b, "\n%s\n", SuccessStyle.Render(fmt.Sprintf("Hand %d wins", winners[0]+1)))
	case len(winners) > 1:
		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = strconv.Itoa(w + 1)
		}
		fmt.Fprintf(&b, "\n%s\n", WarningStyle.Render("Tie between hands "+strings.Join(names, ", ")))
	}
	return b.String()
}

// FormatReport renders a verification summary with a per-category table.
func FormatReport(r *verify.Report) string {
	exhaustive := r.Mode == verify.ModeExhaustive

	headers := []string{"Category", "Hands", "Share"}
	if exhaustive {
		headers = append(headers, "Expected")
	}

	rows := make([][]string, 0, poker.NumCategories)
	for c, n := range r.Categories {
		share := 0.0
		if r.Hands > 0 {
			share = 100 * float64(n) / float64(r.Hands)
		}
		row := []string{poker.Category(c).String(), strconv.Itoa(n), fmt.Sprintf("%.4f%%", share)}
		if exhaustive {
			row = append(row, strconv.Itoa(verify.ExpectedCategories[c]))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(InfoStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true)
			case col == 0:
				return style.Inherit(CategoryStyle(poker.Category(row)))
			case col > 0:
				return style.Align(lipgloss.Right)
			}
			return style
		})

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf(" %s verification ", r.Mode)))
	b.WriteString("\n\n")
	b.WriteString(t.String())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Hands evaluated:    %d\n", r.Hands)
	fmt.Fprintf(&b, "Distinct strengths: %d\n", r.DistinctStrengths)
	fmt.Fprintf(&b, "Mismatches:         %d\n", r.MismatchCount)
	if r.Reference {
		fmt.Fprintf(&b, "Reference checks:   %d (%d disagreements)\n", r.ReferenceChecked, r.ReferenceDisagreements)
	}
	if r.Mode == verify.ModeSample {
		fmt.Fprintf(&b, "Seed:               %d\n", r.Seed)
	}
	fmt.Fprintf(&b, "Elapsed:            %s (%.0f hands/sec)\n", r.Elapsed.Round(time.Millisecond), r.Rate())

	for _, m := range r.Mismatches {
		fmt.Fprintf(&b, "%s %s fast=%s pattern=%s\n", ErrorStyle.Render("✗"), FormatHand(m.Hand), m.Fast, m.Pattern)
	}

	b.WriteString("\n")
	if err := r.Err(); err != nil {
		b.WriteString(ErrorStyle.Render("FAIL: " + err.Error()))
	} else {
		b.WriteString(SuccessStyle.Render("PASS"))
	}
	b.WriteString("\n")
	return b.String()
}
