package config

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"elevsim/src/arrivals"
	"elevsim/src/movement"
	"elevsim/src/sim"
)

// Defaults of the sample run.
const (
	NumFloors         = 5
	NumElevators      = 2
	ElevatorCapacity  = 10
	NumPeoplePerRound = 2
	NumRounds         = 10
	RoundPace         = time.Second
)

// Arrival generator names.
const (
	RandomArrivals = "random"
	FileArrivals   = "file"
)

var ErrInvalidConfig = sim.ErrInvalidConfig

// Config is the user facing description of a run.
type Config struct {
	NumFloors         int           `yaml:"num_floors"`
	NumElevators      int           `yaml:"num_elevators"`
	ElevatorCapacity  int           `yaml:"elevator_capacity"`
	NumPeoplePerRound int           `yaml:"num_people_per_round"`
	ArrivalGenerator  string        `yaml:"arrival_generator"`
	ArrivalsFile      string        `yaml:"arrivals_file"`
	MovingAlgorithm   string        `yaml:"moving_algorithm"`
	NumRounds         int           `yaml:"num_rounds"`
	Seed              int64         `yaml:"seed"`
	Visualize         bool          `yaml:"visualize"`
	Pace              time.Duration `yaml:"pace"`
	LogLevel          string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		NumFloors:         NumFloors,
		NumElevators:      NumElevators,
		ElevatorCapacity:  ElevatorCapacity,
		NumPeoplePerRound: NumPeoplePerRound,
		ArrivalGenerator:  RandomArrivals,
		MovingAlgorithm:   movement.ShortSightedName,
		NumRounds:         NumRounds,
		Seed:              1,
		Visualize:         true,
		Pace:              RoundPace,
		LogLevel:          "info",
	}
}

// Load decodes the YAML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields with the ELEVSIM_* entries of the dotenv file at path.
func (c *Config) ApplyEnv(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file: %w", err)
	}

	ints := map[string]*int{
		"ELEVSIM_NUM_FLOORS":           &c.NumFloors,
		"ELEVSIM_NUM_ELEVATORS":        &c.NumElevators,
		"ELEVSIM_ELEVATOR_CAPACITY":    &c.ElevatorCapacity,
		"ELEVSIM_NUM_PEOPLE_PER_ROUND": &c.NumPeoplePerRound,
		"ELEVSIM_NUM_ROUNDS":           &c.NumRounds,
	}
	for key, field := range ints {
		value, ok := env[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s=%q is not an integer: %w", key, value, ErrInvalidConfig)
		}
		*field = n
	}

	strs := map[string]*string{
		"ELEVSIM_ARRIVAL_GENERATOR": &c.ArrivalGenerator,
		"ELEVSIM_ARRIVALS_FILE":     &c.ArrivalsFile,
		"ELEVSIM_MOVING_ALGORITHM":  &c.MovingAlgorithm,
		"ELEVSIM_LOG_LEVEL":         &c.LogLevel,
	}
	for key, field := range strs {
		if value, ok := env[key]; ok {
			*field = value
		}
	}

	if value, ok := env["ELEVSIM_SEED"]; ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("ELEVSIM_SEED=%q is not an integer: %w", value, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if value, ok := env["ELEVSIM_VISUALIZE"]; ok {
		visualize, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ELEVSIM_VISUALIZE=%q is not a boolean: %w", value, ErrInvalidConfig)
		}
		c.Visualize = visualize
	}
	if value, ok := env["ELEVSIM_PACE"]; ok {
		pace, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("ELEVSIM_PACE=%q is not a duration: %w", value, ErrInvalidConfig)
		}
		c.Pace = pace
	}
	return nil
}

// Validate checks the ranges the simulation depends on.
func (c Config) Validate() error {
	switch {
	case c.NumFloors < 2:
		return fmt.Errorf("num_floors must be at least 2, got %d: %w", c.NumFloors, ErrInvalidConfig)
	case c.NumElevators < 1:
		return fmt.Errorf("num_elevators must be at least 1, got %d: %w", c.NumElevators, ErrInvalidConfig)
	case c.ElevatorCapacity < 1:
		return fmt.Errorf("elevator_capacity must be at least 1, got %d: %w", c.ElevatorCapacity, ErrInvalidConfig)
	case c.NumPeoplePerRound < 0:
		return fmt.Errorf("num_people_per_round must not be negative, got %d: %w", c.NumPeoplePerRound, ErrInvalidConfig)
	case c.NumRounds < 1:
		return fmt.Errorf("num_rounds must be at least 1, got %d: %w", c.NumRounds, ErrInvalidConfig)
	case c.ArrivalGenerator != RandomArrivals && c.ArrivalGenerator != FileArrivals:
		return fmt.Errorf("unknown arrival_generator %q: %w", c.ArrivalGenerator, ErrInvalidConfig)
	case c.ArrivalGenerator == FileArrivals && c.ArrivalsFile == "":
		return fmt.Errorf("arrival_generator %q needs arrivals_file: %w", FileArrivals, ErrInvalidConfig)
	}
	switch c.MovingAlgorithm {
	case movement.RandomName, movement.PushyPassengerName, movement.ShortSightedName:
	default:
		return fmt.Errorf("unknown moving_algorithm %q: %w", c.MovingAlgorithm, ErrInvalidConfig)
	}
	return nil
}

// NewArrivals builds the configured arrival generator.
// A random generator with no people per round never produces anyone.
func (c Config) NewArrivals(rng *rand.Rand) (arrivals.Generator, error) {
	var (
		gen arrivals.Generator
		err error
	)
	switch {
	case c.ArrivalGenerator == FileArrivals:
		var file *arrivals.FileArrivals
		if file, err = arrivals.NewFileArrivalsFromPath(c.NumFloors, c.ArrivalsFile); err == nil {
			slog.Debug("Arrival schedule loaded", "path", c.ArrivalsFile, "people", file.Total())
			gen = file
		}
	case c.NumPeoplePerRound == 0:
		gen, err = arrivals.NewEmptyArrivals(c.NumFloors, rng)
	default:
		gen, err = arrivals.NewRandomArrivals(c.NumFloors, c.NumPeoplePerRound, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return gen, nil
}

// NewAlgorithm builds the configured moving algorithm.
func (c Config) NewAlgorithm(rng *rand.Rand) (movement.Algorithm, error) {
	algorithm, err := movement.ParseAlgorithm(c.MovingAlgorithm, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return algorithm, nil
}
