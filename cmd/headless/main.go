package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/session"
	"github.com/automoto/throne-wars/session/autopilot"
	"github.com/automoto/throne-wars/shared/arena"
	"github.com/automoto/throne-wars/shared/messages"
)

func main() {
	className := flag.String("class", "knight", "Character class (knight, berserker, archer, none)")
	difficultyName := flag.String("difficulty", "normal", "Autopilot difficulty (easy, normal, hard)")
	seed := flag.Int64("seed", 0, "Random seed (0 = from clock)")
	tickRate := flag.Int("tickrate", 60, "Ticks per second (0 = as fast as possible)")
	maxTicks := flag.Int("ticks", 0, "Stop after this many ticks (0 = until game over)")
	tuning := flag.String("tuning", "", "YAML tuning overrides")
	mapPath := flag.String("map", "", "Tiled arena map (empty = bundled arena)")
	verbose := flag.Bool("v", false, "Log every feedback event")
	flag.Parse()

	class, err := cfg.ParseClass(*className)
	if err != nil {
		log.Fatalf("Invalid class: %v", err)
	}
	difficulty, err := cfg.ParseDifficulty(*difficultyName)
	if err != nil {
		log.Fatalf("Invalid difficulty: %v", err)
	}

	if *tuning != "" {
		if err := cfg.LoadOverrides(os.DirFS(filepath.Dir(*tuning)), filepath.Base(*tuning)); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("Loaded tuning overrides from %s", *tuning)
	}

	opts := session.Options{Class: class, Seed: *seed}
	if *mapPath != "" {
		layout, err := arena.Load(os.DirFS(filepath.Dir(*mapPath)), filepath.Base(*mapPath))
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		opts.Layout = layout
	}

	s := session.New(opts)
	pilot := autopilot.New(difficulty, s.Seed())
	runner := session.NewRunner(s, pilot, *tickRate).
		WithMaxTicks(*maxTicks).
		OnTick(func(r session.TickResult) {
			for _, ev := range r.Events {
				if *verbose || notable(ev.Kind) {
					log.Printf("[tick %d] %s amount=%d count=%d at (%.0f, %.0f)",
						ev.Tick, ev.Kind, ev.Amount, ev.Count, ev.X, ev.Y)
				}
			}
		})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		runner.Stop()
	}()

	log.Printf("Starting headless battle: class=%s difficulty=%s tickrate=%d/s", class, difficulty, *tickRate)
	summary := runner.Run()

	out, err := json.Marshal(summary)
	if err != nil {
		log.Fatalf("Failed to encode summary: %v", err)
	}
	log.Printf("Final score %d, level %d", summary.Score, summary.LevelReached)
	os.Stdout.Write(append(out, '\n'))
}

func notable(kind messages.EventKind) bool {
	switch kind {
	case messages.EventWaveSpawned, messages.EventLevelComplete, messages.EventComboBonus, messages.EventPlayerDeath:
		return true
	}
	return false
}
