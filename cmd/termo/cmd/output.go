package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/termo/internal/domain/colloc"
	"github.com/corey/termo/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// formatCandidate renders one stored candidate on a single line.
//
//	#12  огонь артиллерии  ×5  → огонь артиллерии  [links: 3 7]
func formatCandidate(c ports.Collocation) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s#%d%s  %s%s%s  ×%d",
		colorGray, c.ID, colorReset,
		colorCyan, c.Text, colorReset,
		c.Frequency))
	if c.PseudoNormal != "" && c.PseudoNormal != c.Text {
		sb.WriteString(fmt.Sprintf("  → %s", c.PseudoNormal))
	}
	if len(c.LinkedIDs) > 0 {
		sb.WriteString(fmt.Sprintf("  %s[links:", colorGray))
		for _, id := range c.LinkedIDs {
			sb.WriteString(fmt.Sprintf(" %d", id))
		}
		sb.WriteString("]" + colorReset)
	}
	return sb.String()
}

// printDiagnostics renders suppressed per-item failures, if any.
func printDiagnostics(diags []colloc.Diagnostic) {
	for _, d := range diags {
		fmt.Printf("  %s! %s%s\n", colorYellow, d.String(), colorReset)
	}
}
