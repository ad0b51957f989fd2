package report

import (
	"fmt"
	"strings"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
)

// backslashMark keeps original backslashes out of the way while the other
// substitutions run, so the backslashes they introduce are never re-escaped.
const backslashMark = "\x00"

// EscapeLatex substitutes every LaTeX special character in narrative text
// before it is embedded in the document source.
func EscapeLatex(s string) string {
	s = strings.ReplaceAll(s, `\`, backslashMark)
	s = strings.ReplaceAll(s, "&", `\&`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "$", `\$`)
	s = strings.ReplaceAll(s, "#", `\#`)
	s = strings.ReplaceAll(s, "_", `\_`)
	s = strings.ReplaceAll(s, "{", `\{`)
	s = strings.ReplaceAll(s, "}", `\}`)
	s = strings.ReplaceAll(s, "~", `\~{}`)
	s = strings.ReplaceAll(s, "^", `\^{}`)
	s = strings.ReplaceAll(s, backslashMark, `\textbackslash{}`)
	return s
}

// PieSpec renders the pgf-pie slice list for the macro split.
func PieSpec(t response_models.MonthlyTotals) string {
	return fmt.Sprintf("%d/Protein, %d/Carbs, %d/Fats", t.ProteinPct, t.CarbsPct, t.FatsPct)
}

// LineCoordinates renders one pgfplots point per day entry, 1-based in entry
// order, plotting that day's calories.
func LineCoordinates(entries []db_models.DayEntry) string {
	coords := make([]string, 0, len(entries))
	for i, entry := range entries {
		coords = append(coords, fmt.Sprintf("(%d, %g)", i+1, entry.Calories))
	}
	return strings.Join(coords, "\n      ")
}

// BuildDocument assembles the full LaTeX source for one monthly report.
// month is 0-based; the heading shows it 1-based like the rest of the app.
func BuildDocument(month int, narrative response_models.Narrative, totals response_models.MonthlyTotals, entries []db_models.DayEntry) string {
	return fmt.Sprintf(`\documentclass{article}
\usepackage{pgfplots}
\usepackage{pgf-pie}
\usepackage{geometry}
\geometry{a4paper, margin=1in}
\pgfplotsset{compat=1.18}

\begin{document}

\section*{Monthly Health Report - Month %d}

\textbf{Overview:} %s\\

\textbf{Recommendations:} %s\\

\textbf{High Consumption:} %s\\

\textbf{Low Consumption:} %s\\

\subsection*{Macronutrient Distribution (Pie Chart)}
\begin{tikzpicture}
  \pie[color={blue!50, green!50, red!50}, radius=3, text=legend]{%s}
\end{tikzpicture}

\subsection*{Daily Calorie Intake (Line Chart)}
\begin{tikzpicture}
  \begin{axis}[xlabel=Day, ylabel=Calories, grid=major]
    \addplot coordinates {
      %s
    };
  \end{axis}
\end{tikzpicture}

\end{document}
`,
		month+1,
		EscapeLatex(narrative.Overview),
		EscapeLatex(narrative.Recommendations),
		EscapeLatex(narrative.HighConsumption),
		EscapeLatex(narrative.LowConsumption),
		PieSpec(totals),
		LineCoordinates(entries),
	)
}
