package app

import (
	"fmt"
	"strings"

	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/sched"
	"github.com/vk/dlacgo/internal/target"
)

// printReport writes the human-readable schedule to the app's output.
func (a *App) printReport(g *ir.Graph, backend *target.Backend, result *sched.Result) {
	if result == nil {
		return
	}

	fmt.Fprintf(a.outW, "schedule for model %q on target %q: %d nodes, %d rounds, %d cycles\n",
		g.Name, backend.Name(), len(result.Order), len(result.Rounds), result.Cycles)

	for i, round := range result.Rounds {
		names := make([]string, len(round))
		for j, n := range round {
			names[j] = fmt.Sprintf("%s(%s/%s)", n.Name, n.Kind, backend.ResourceOf(n).Name)
		}
		fmt.Fprintf(a.outW, "round %3d: %s\n", i+1, strings.Join(names, " "))
	}
}
