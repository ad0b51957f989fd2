package report

import (
	"strings"
	"testing"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
)

func TestEscapeLatex(t *testing.T) {
	got := EscapeLatex(`100% & $5_{x}`)
	want := `100\% \& \$5\_\{x\}`
	if got != want {
		t.Errorf("EscapeLatex = %q, want %q", got, want)
	}
}

func TestEscapeLatexBackslashNotDoubleEscaped(t *testing.T) {
	got := EscapeLatex(`a\b&c`)
	want := `a\textbackslash{}b\&c`
	if got != want {
		t.Errorf("EscapeLatex = %q, want %q", got, want)
	}
	// The backslash introduced by escaping & must survive untouched.
	if strings.Contains(got, `\textbackslash{}&`) {
		t.Errorf("escape of & was mangled: %q", got)
	}
}

func TestEscapeLatexTildeCaret(t *testing.T) {
	got := EscapeLatex("~x^y")
	want := `\~{}x\^{}y`
	if got != want {
		t.Errorf("EscapeLatex = %q, want %q", got, want)
	}
}

func TestLineCoordinates(t *testing.T) {
	entries := []db_models.DayEntry{
		{EntryDate: "2025-09-25", Calories: 500},
		{EntryDate: "2025-09-26", Calories: 800},
	}
	got := LineCoordinates(entries)
	if !strings.Contains(got, "(1, 500)") || !strings.Contains(got, "(2, 800)") {
		t.Errorf("LineCoordinates = %q, want points (1, 500) and (2, 800)", got)
	}
}

func TestBuildDocument(t *testing.T) {
	narrative := response_models.Narrative{
		Overview:        "Ate 100% of the budget & more",
		Recommendations: "Less sugar",
		HighConsumption: "Fats",
		LowConsumption:  "Protein",
	}
	totals := response_models.MonthlyTotals{ProteinPct: 10, CarbsPct: 50, FatsPct: 32}
	entries := []db_models.DayEntry{{Calories: 500}, {Calories: 800}}

	doc := BuildDocument(8, narrative, totals, entries)

	for _, want := range []string{
		`\section*{Monthly Health Report - Month 9}`,
		`10/Protein, 50/Carbs, 32/Fats`,
		`(1, 500)`,
		`(2, 800)`,
		`Ate 100\% of the budget \& more`,
		`\usepackage{pgf-pie}`,
		`\end{document}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	if strings.Contains(doc, "100% of") {
		t.Error("narrative embedded without escaping")
	}
}
