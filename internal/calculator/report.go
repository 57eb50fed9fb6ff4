package calculator

import (
	"fmt"
	"io"
	"strings"

	"github.com/cory-johannsen/specsim/internal/config"
)

// WriteReport prints res to w in the plain-text form the CLI emits.
//
// Precondition: res came from a successful Run.
func WriteReport(w io.Writer, res Result) error {
	var b strings.Builder
	switch res.Mode {
	case config.ModeHyper:
		h := res.Hyper
		fmt.Fprintf(&b, "budget: %d\n", h.Budget)
		fmt.Fprintf(&b, "feasible allocations: %d\n", h.Ranking.Feasible)
		if h.Ranking.Best != nil {
			for i, level := range h.Ranking.Best {
				fmt.Fprintf(&b, "  %-16s %2d\n", h.Categories[i].Name, level)
			}
			fmt.Fprintf(&b, "boss line damage: %.0f\n", h.Ranking.Damage)
		}
	case config.ModeLinks:
		for i, p := range res.Links {
			fmt.Fprintf(&b, "%2d. %-22s +%.0f (%.0f)\n", i+1, p.Link.Name, p.Gain, p.Damage)
		}
	default:
		fmt.Fprintf(&b, "%d\n", uint64(res.DisplayAttack))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
