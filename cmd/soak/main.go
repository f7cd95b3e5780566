// soak plays rounds headlessly with a random-aim bot and prints per-round
// totals. It drives the same runner and systems as the terminal game.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bounceshot/shooter/internal/app"
	"github.com/bounceshot/shooter/internal/config"
)

func main() {
	cfgPath := flag.String("config", "config/shooter.toml", "config file")
	rounds := flag.Int("rounds", 10, "rounds to play")
	maxTicks := flag.Int("max-ticks", 100000, "ticks before a round is abandoned")
	ratio := flag.Float64("ratio", 1.5, "display ratio when the config leaves it unset")
	fire := flag.Float64("fire", 0.05, "bot fire chance per tick")
	seed := flag.Int64("seed", 0, "bot seed (0 = clock)")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	if err := run(*cfgPath, *rounds, *maxTicks, *ratio, *fire, *seed, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, rounds, maxTicks int, ratio, fire float64, seed int64, logLevel string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Logging.Level = logLevel
	cfg.Logging.Output = "stderr"

	log, err := app.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	a, err := app.New(cfg, ratio, log)
	if err != nil {
		return err
	}
	defer a.Close()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()
	stats := a.Soak(app.NewBot(seed, fire), rounds, maxTicks)

	fmt.Printf("%-36s %7s %6s %6s %8s %8s %9s\n", "round", "steps", "shots", "kills", "escapes", "expired", "rejected")
	var steps, kills int
	for _, s := range stats {
		fmt.Printf("%-36s %7d %6d %6d %8d %8d %9d\n", s.RoundID, s.Steps, s.Shots, s.Kills, s.Escapes, s.Expired, s.Rejected)
		steps += s.Steps
		kills += s.Kills
	}
	fmt.Printf("\n%d/%d rounds finished, %d steps, %d kills in %s (%d ticks)\n",
		len(stats), rounds, steps, kills, time.Since(start).Round(time.Millisecond), a.Runner.Ticks())
	return nil
}
