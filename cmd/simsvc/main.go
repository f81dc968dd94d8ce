package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"hungergames/internal/arena"
	"hungergames/internal/config"
	"hungergames/internal/util"
)

func main() {
	var cfgPath, out string
	var seed int64
	var n, ticks, workers int
	var saveLog, verbose bool
	flag.StringVar(&cfgPath, "config", filepath.Join("assets", "arena.yaml"), "scenario file")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 0, "seed (0 = use scenario seed)")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&ticks, "ticks", -1, "ticks per simulation (-1 = use scenario ticks)")
	flag.IntVar(&workers, "workers", 8, "batch workers")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ac, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("load scenario", "err", err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = ac.Seed
	}
	if ticks >= 0 {
		ac.Ticks = ticks
	}
	opts := arena.SimOptions{Ticks: ac.Ticks, AllianceEvery: ac.AllianceEvery}
	logger.Info("scenario loaded",
		"config", cfgPath,
		"room", ac.Room,
		"participants", len(ac.Participants),
		"ticks", opts.Ticks,
		"seed", seed,
	)

	if n <= 1 {
		env := &arena.Env{Rng: util.New(seed)}
		a, err := arena.NewArena(env, ac.Room, ac.Participants)
		if err != nil {
			logger.Error("build arena", "err", err)
			os.Exit(1)
		}
		res := arena.RunSingle(env, a, opts, saveLog)
		for _, al := range res.Alliances {
			logger.Debug("alliance formed", "t", al.T, "pair", al.Pair, "standalone", al.Standalone)
		}
		if err := os.WriteFile(out, arena.MarshalPretty(res), 0644); err != nil {
			logger.Error("write result", "out", out, "err", err)
			os.Exit(1)
		}
		logger.Info("single run finished",
			"ticks", res.Ticks,
			"clean_ratio", res.CleanRatio,
			"alliances", len(res.Alliances),
			"out", out,
		)
		return
	}

	if workers < 1 {
		workers = 1
	}
	results := make([]arena.SimResult, n)
	var mu sync.Mutex
	var failed error
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				env := &arena.Env{Rng: util.New(util.RunSeed(seed, i))}
				a, err := arena.NewArena(env, ac.Room, ac.Participants)
				if err != nil {
					mu.Lock()
					failed = err
					mu.Unlock()
					continue
				}
				// each job owns results[i]
				results[i] = arena.RunSingle(env, a, opts, false)
				logger.Debug("run finished", "worker", workerID, "run", i, "clean_ratio", results[i].CleanRatio)
			}
		}(w)
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if failed != nil {
		logger.Error("build arena", "err", failed)
		os.Exit(1)
	}
	st := arena.NewBatchStats()
	for _, res := range results {
		st.Add(res)
	}
	if err := os.WriteFile(out, arena.MarshalPretty(st.Summary()), 0644); err != nil {
		logger.Error("write summary", "out", out, "err", err)
		os.Exit(1)
	}
	logger.Info("batch finished", "runs", n, "out", filepath.Base(out))
}
