package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"elevsim/src/config"
	"elevsim/src/sim"
	"elevsim/src/utils"
	"elevsim/src/visualizer"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fail(err)
	}
	utils.InitLogger(os.Stdout, utils.ParseLevel(cfg.LogLevel))

	results, err := run(cfg)
	if err != nil {
		fail(err)
	}
	printResults(results)
}

// loadConfig builds the run configuration from the defaults, the files named on the command line
// and the flags that were explicitly set.
func loadConfig(args []string) (config.Config, error) {
	flags := flag.NewFlagSet("elevsim", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML file describing the simulation")
	envPath := flags.String("env", "", "dotenv file with ELEVSIM_* overrides")
	rounds := flags.Int("rounds", 0, "Number of rounds to run, overrides the config")
	seed := flags.Int64("seed", 0, "Seed for the random algorithms, overrides the config")
	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *envPath != "" {
		if err := cfg.ApplyEnv(*envPath); err != nil {
			return cfg, err
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.NumRounds = *rounds
		case "seed":
			cfg.Seed = *seed
		}
	})
	return cfg, nil
}

func run(cfg config.Config) (sim.Results, error) {
	if err := cfg.Validate(); err != nil {
		return sim.Results{}, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	arrivalGen, err := cfg.NewArrivals(rng)
	if err != nil {
		return sim.Results{}, err
	}
	algorithm, err := cfg.NewAlgorithm(rng)
	if err != nil {
		return sim.Results{}, err
	}

	settings := sim.Settings{
		NumFloors:        cfg.NumFloors,
		NumElevators:     cfg.NumElevators,
		ElevatorCapacity: cfg.ElevatorCapacity,
		Arrivals:         arrivalGen,
		Algorithm:        algorithm,
		Visualizer:       visualizer.Nop{},
	}
	if cfg.Visualize {
		settings.Visualizer = visualizer.NewLogger(nil)
		settings.Pace = cfg.Pace
	}

	simulation, err := sim.New(settings)
	if err != nil {
		return sim.Results{}, err
	}
	slog.Info("Running simulation",
		"arrivals", cfg.ArrivalGenerator,
		"algorithm", cfg.MovingAlgorithm,
		"seed", cfg.Seed)
	return simulation.Run(cfg.NumRounds)
}

func printResults(results sim.Results) {
	fmt.Printf("Rounds: %d\n", results.NumIterations)
	fmt.Printf("People generated: %d\n", results.TotalPeople)
	fmt.Printf("People completed: %d\n", results.PeopleCompleted)
	if !results.HasData() {
		fmt.Println("Transit time: no data")
		return
	}
	fmt.Printf("Transit time: min %d, max %d, avg %d\n", results.MinTime, results.MaxTime, results.AvgTime)
}

func fail(err error) {
	slog.Error("Simulation failed", "error", err)
	os.Exit(1)
}
