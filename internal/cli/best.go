package cli

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/engine"
	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
	"github.com/erwinh22/free-coding-models-sub000/internal/logger"
	"github.com/erwinh22/free-coding-models-sub000/internal/probe"
	"github.com/erwinh22/free-coding-models-sub000/internal/ui"
	"github.com/erwinh22/free-coding-models-sub000/internal/util"
)

// Unattended mode probes every endpoint a few times before judging, so a
// single lucky or unlucky ping can't decide the winner.
const (
	bestCycles     = 3
	bestCycleDelay = time.Second
)

// bestCommand observes the endpoints briefly, picks the healthiest one,
// and hands it off without opening the dashboard.
func bestCommand(opts Options) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	entries, err := loadEntries(store)
	if err != nil {
		return err
	}

	if opts.TierLetter != "" && len(catalog.TierGroup(opts.TierLetter)) == 0 {
		return errors.New(errors.ErrParse,
			"Unknown tier: "+opts.TierLetter,
			"Valid tiers are S, A, B, and C")
	}

	prober := probe.NewProber(entries, credentialFor(store, opts.Credential), probe.DefaultTimeout)
	prober.SetLogger(logger.Default())
	endpoints := endpoint.New(entries)

	fmt.Printf("%s Probing %d %s (%d rounds)...\n",
		ui.SymbolProgress, len(endpoints), util.Pluralize(len(endpoints), "endpoint", "endpoints"), bestCycles)

	for cycle := 0; cycle < bestCycles; cycle++ {
		ctx, cancel := context.WithTimeout(context.Background(),
			probe.DefaultTimeout*time.Duration(len(endpoints)+1))
		for u := range prober.Run(ctx) {
			for _, e := range endpoints {
				if e.ID == u.EndpointID {
					e.Record(u.Result.Ping(), u.Result.ErrorCode)
					break
				}
			}
		}
		cancel()

		if cycle < bestCycles-1 {
			time.Sleep(bestCycleDelay)
		}
	}

	pool := endpoints
	if opts.TierLetter != "" {
		pool = engine.FilterByTierLetter(endpoints, opts.TierLetter)
	}

	best := engine.PickBest(pool)
	if best == nil {
		return errors.New(errors.ErrProbe,
			"No endpoints to choose from",
			"Loosen the --tier filter or enable more providers")
	}

	printObservations(pool, best)

	if best.Status != endpoint.StatusReachable {
		logger.Default().Warn("best pick %s is not currently reachable", best.ID)
	}

	return handOff(best, opts, store)
}

// printObservations renders the observed metrics with the winner on top.
func printObservations(endpoints []*endpoint.Endpoint, best *endpoint.Endpoint) {
	ranked := engine.Sort(endpoints, engine.ColumnAverageLatency, engine.Ascending)

	columns := []ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "MODEL", Width: 24},
		{Title: "PROVIDER", Width: 12},
		{Title: "TIER", Width: 4},
		{Title: "AVG", Width: 8},
		{Title: "VERDICT", Width: 10},
		{Title: "UPTIME", Width: 6},
	}

	var rows [][]string
	for _, e := range ranked {
		marker := ""
		if e == best {
			marker = ui.SymbolStar
		}
		rows = append(rows, []string{
			marker,
			e.Label,
			e.Provider,
			string(e.Tier),
			formatAverage(engine.AverageLatency(e.History)),
			engine.ComputeVerdict(e).String(),
			fmt.Sprintf("%d%%", engine.Uptime(e.History)),
		})
	}

	fmt.Println()
	fmt.Print(ui.RenderTable(columns, rows))
	fmt.Println()
}

// formatAverage renders an average latency, with a dash for the sentinel.
func formatAverage(ms float64) string {
	if math.IsInf(ms, 1) {
		return "—"
	}
	return fmt.Sprintf("%dms", int(ms))
}
