/*
main.go - Valuation simulator entry point

PURPOSE:
  Loads a scenario portfolio, pins the virtual clock, and renders the
  portfolio summary the way the investor dashboard would - a replayable
  demo of the valuation engine without any server in front of it.

COMMAND-LINE FLAGS:
  -scenario  Scenario ID to load (default: mixed-portfolio)
  -as-of     ISO timestamp to pin the clock at (default: the scenario's
             suggested instant)
  -list      List available scenarios and exit

ENVIRONMENT:
  Reads an optional .env file. LOG_LEVEL=debug switches zap to development
  output.

EXAMPLES:
  # Render the default portfolio at its canonical instant
  ./simulator

  # Replay the matured scenario two years later
  ./simulator -scenario=matured -as-of=2026-06-01T00:00:00Z
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/meridian/investment-engine/clock"
	"github.com/meridian/investment-engine/portfolio"
	"github.com/meridian/investment-engine/scenario"
	"github.com/meridian/investment-engine/valuation"
)

func main() {
	scenarioID := flag.String("scenario", "mixed-portfolio", "scenario ID to load")
	asOfISO := flag.String("as-of", "", "ISO timestamp to pin the clock at")
	list := flag.Bool("list", false, "list available scenarios and exit")
	flag.Parse()

	// .env is optional; flags and defaults cover everything it sets.
	_ = godotenv.Load()

	logger := newLogger()
	defer logger.Sync()

	if *list {
		for _, s := range scenario.List() {
			fmt.Printf("%-18s %s\n", s.ID, s.Description)
		}
		return
	}

	fixture, err := scenario.Load(*scenarioID)
	if err != nil {
		logger.Fatal("failed to load scenario", zap.String("scenario", *scenarioID), zap.Error(err))
	}

	vc := clock.NewVirtualClock(logger)
	vc.Set(fixture.AsOf)
	if *asOfISO != "" {
		if err := vc.SetISO(*asOfISO); err != nil {
			logger.Fatal("invalid -as-of timestamp", zap.String("as_of", *asOfISO), zap.Error(err))
		}
	}

	// One clock snapshot for the whole render: the summary and every
	// per-position row must share the same instant.
	asOf := vc.Now()
	summary := portfolio.Summarize(fixture.Investments, asOf)

	logger.Info("scenario loaded",
		zap.String("scenario", fixture.Scenario.ID),
		zap.Int("investments", len(fixture.Investments)),
		zap.Time("as_of", asOf),
	)

	render(summary)
}

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func render(summary portfolio.Summary) {
	fmt.Printf("\nPortfolio as of %s\n\n", valuation.FormatDate(summary.AsOf))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRINCIPAL\tVALUE\tEARNINGS\tMONTHS\tLOCK-UP ENDS")
	for _, pos := range summary.Positions {
		lockupEnd := "-"
		if pos.Valuation.LockupEndDate != nil {
			lockupEnd = valuation.FormatDate(*pos.Valuation.LockupEndDate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			pos.Investment.ID,
			pos.Status.Label,
			valuation.FormatCurrency(pos.Investment.Amount),
			valuation.FormatCurrency(pos.Valuation.CurrentValue),
			valuation.FormatCurrency(pos.Valuation.TotalEarnings),
			pos.Valuation.MonthsElapsed.Round(2).String(),
			lockupEnd,
		)
	}
	w.Flush()

	fmt.Printf("\nTotal principal:\t%s\n", valuation.FormatCurrency(summary.TotalPrincipal))
	fmt.Printf("Total value:\t\t%s\n", valuation.FormatCurrency(summary.TotalValue))
	fmt.Printf("Total earnings:\t\t%s\n", valuation.FormatCurrency(summary.TotalEarnings))
	fmt.Printf("Active: %d (withdrawable: %d)\n", summary.ActiveCount, summary.WithdrawableCount)
}
