package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"example.org/nqueens/configs"
	"example.org/nqueens/solver"
)

func main() {
	var configPath string
	c := configs.Root{
		Size:        8,
		Solver:      "hillclimb",
		MaxRestarts: 100,
	}

	flag.StringVar(&configPath, "c", "", "config file")
	flag.IntVar(&c.Size, "size", c.Size, "board size")
	flag.StringVar(&c.Solver, "solver", c.Solver, "solver to run: hillclimb or bruteforce")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 seeds from the clock")
	flag.IntVar(&c.MaxRestarts, "restarts", c.MaxRestarts, "max hill-climbing restarts after plateau stops")
	flag.IntVar(&c.Workers, "workers", c.Workers, "brute-force worker count; 0 means one per CPU")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "print every solution, not just the count")
	flag.Parse()

	if configPath != "" {
		fileConfig, err := configs.ReadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		// explicit flags override the config file
		merged := fileConfig
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "size":
				merged.Size = c.Size
			case "solver":
				merged.Solver = c.Solver
			case "seed":
				merged.Seed = c.Seed
			case "restarts":
				merged.MaxRestarts = c.MaxRestarts
			case "workers":
				merged.Workers = c.Workers
			case "debug":
				merged.Debug = c.Debug
			}
		})
		c = merged
	}

	if c.Size < 0 {
		log.Fatalf("board size %d is invalid", c.Size)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	switch c.Solver {
	case "hillclimb":
		start := time.Now()
		b, err := solver.HillClimbRetry(c.Size, rng, c.MaxRestarts)
		if errors.Is(err, solver.ErrNoSolutionsExist) {
			log.Fatalf("size %d: %v", c.Size, err)
		}
		if err != nil {
			log.Fatalf("size %d: %v after %d restarts", c.Size, err, c.MaxRestarts)
		}
		log.Printf("found a solution for size %d in %v (seed %d)", c.Size, time.Since(start), seed)
		log.Printf("solution:\n%v", b)

	case "bruteforce":
		start := time.Now()
		solutions := solver.BruteForce(c.Size)
		log.Printf("size %d has %d solutions (searched in %v)", c.Size, solutions.Len(), time.Since(start))
		if c.Debug {
			it := solutions.Iterator()
			for !it.Done() {
				b, _, _ := it.Next()
				log.Printf("solution:\n%v", b)
			}
		}

	default:
		log.Fatalf("unknown solver %q; want hillclimb or bruteforce", c.Solver)
	}
}
