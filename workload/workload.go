// Package workload measures the average access cost of self-adjusting lists under uniform and
// skewed lookups.
package workload

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/bradenaw/juniper/xslices"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bradenaw/selfadjust"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid workload config")

// How many draws between context checks.
const checkEvery = 1024

// The skewed phase rejects draws outside [0, Values), so a much wider distribution would spend
// nearly all of its draws redrawing.
const maxStdDevPerValue = 100

// Config describes one measurement run.
type Config struct {
	// Values is the number of distinct values, 0 through Values-1, held by each list.
	Values int
	// Accesses is the number of lookups in each phase.
	Accesses int
	// Seed seeds the random source at the start of each phase.
	Seed int64
	// Mean and StdDev parameterize the skewed phase.
	Mean   float64
	StdDev float64
	// Policies are the lists to measure.
	Policies []selfadjust.Policy
}

// DefaultConfig returns 100000 lookups over 1000 values, skewed around the middle of the list.
func DefaultConfig() Config {
	const values = 1000
	return Config{
		Values:   values,
		Accesses: 100000,
		Seed:     0,
		Mean:     values / 2.0,
		StdDev:   values / 5.0,
		Policies: selfadjust.Policies(),
	}
}

func (c Config) Validate() error {
	if c.Values <= 0 {
		return fmt.Errorf("%w: values must be positive, got %d", ErrInvalidConfig, c.Values)
	}
	if c.Accesses <= 0 {
		return fmt.Errorf("%w: accesses must be positive, got %d", ErrInvalidConfig, c.Accesses)
	}
	if math.IsNaN(c.Mean) || math.IsInf(c.Mean, 0) {
		return fmt.Errorf("%w: mean must be finite, got %g", ErrInvalidConfig, c.Mean)
	}
	if math.IsNaN(c.StdDev) || math.IsInf(c.StdDev, 0) || c.StdDev <= 0 {
		return fmt.Errorf("%w: stddev must be positive and finite, got %g", ErrInvalidConfig, c.StdDev)
	}
	if c.StdDev > maxStdDevPerValue*float64(c.Values) {
		return fmt.Errorf(
			"%w: stddev %g is more than %d times values %d",
			ErrInvalidConfig,
			c.StdDev,
			maxStdDevPerValue,
			c.Values,
		)
	}
	// A mean too far outside the range would make the skewed phase redraw almost forever.
	if c.Mean < -3*c.StdDev || c.Mean > float64(c.Values)+3*c.StdDev {
		return fmt.Errorf(
			"%w: mean %g is more than 3 stddev outside [0, %d)",
			ErrInvalidConfig,
			c.Mean,
			c.Values,
		)
	}
	if len(c.Policies) == 0 {
		return fmt.Errorf("%w: no policies", ErrInvalidConfig)
	}
	seen := make(map[selfadjust.Policy]struct{}, len(c.Policies))
	for _, p := range c.Policies {
		if !p.Valid() {
			return fmt.Errorf("%w: unknown policy %s", ErrInvalidConfig, p)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: policy %s listed twice", ErrInvalidConfig, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Result is the average number of nodes examined per lookup for one policy.
type Result struct {
	Policy  selfadjust.Policy
	Uniform float64
	Skewed  float64
}

// Report holds the results of a Run in the order of Config.Policies.
type Report struct {
	Config  Config
	Results []Result
}

func (r Report) Policies() []selfadjust.Policy {
	return xslices.Map(r.Results, func(res Result) selfadjust.Policy { return res.Policy })
}

// Result returns the result for policy, or false if it wasn't measured.
func (r Report) Result(policy selfadjust.Policy) (Result, bool) {
	for _, res := range r.Results {
		if res.Policy == policy {
			return res, true
		}
	}
	return Result{}, false
}

// Savings returns how many fewer nodes per lookup policy examines than baseline under skewed
// access. It is negative if policy does worse. The second return is false if either policy wasn't
// measured.
func (r Report) Savings(policy selfadjust.Policy, baseline selfadjust.Policy) (float64, bool) {
	a, ok := r.Result(policy)
	if !ok {
		return 0, false
	}
	b, ok := r.Result(baseline)
	if !ok {
		return 0, false
	}
	return b.Skewed - a.Skewed, true
}

// Run measures every policy in cfg, each on its own list and goroutine.
func Run(ctx context.Context, cfg Config, logger zerolog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	results := make([]Result, len(cfg.Policies))
	eg, ctx := errgroup.WithContext(ctx)
	for i, policy := range cfg.Policies {
		i, policy := i, policy
		eg.Go(func() error {
			logger := logger.With().Stringer("policy", policy).Logger()
			start := time.Now()
			res, err := Measure(ctx, selfadjust.New[int](policy), cfg, logger)
			if err != nil {
				return fmt.Errorf("measuring %s: %w", policy, err)
			}
			res.Policy = policy
			results[i] = res
			logger.Info().
				Float64("uniform", res.Uniform).
				Float64("skewed", res.Skewed).
				Dur("elapsed", time.Since(start)).
				Msg("measured")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Config: cfg, Results: results}, nil
}

// Measure fills list with cfg.Values values and then runs a uniform phase followed by a skewed
// phase on it, each of cfg.Accesses lookups. The skewed phase starts from the order the uniform
// phase left behind. The returned Result's Policy is left for the caller to fill.
func Measure(
	ctx context.Context,
	list selfadjust.Set[int],
	cfg Config,
	logger zerolog.Logger,
) (Result, error) {
	list.Clear()
	// Back to front, so that 0 ends up first.
	for v := cfg.Values - 1; v >= 0; v-- {
		list.Add(v)
	}
	if list.Len() != cfg.Values {
		return Result{}, fmt.Errorf("populated %d values, expected %d", list.Len(), cfg.Values)
	}

	uniform, err := phase(ctx, list, Uniform{N: cfg.Values}, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("uniform phase: %w", err)
	}
	logger.Debug().Float64("avg", uniform).Msg("uniform phase done")

	skewed, err := phase(ctx, list, Normal{N: cfg.Values, Mean: cfg.Mean, StdDev: cfg.StdDev}, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("skewed phase: %w", err)
	}
	logger.Debug().Float64("avg", skewed).Msg("skewed phase done")

	return Result{Uniform: uniform, Skewed: skewed}, nil
}

func phase(ctx context.Context, list selfadjust.Set[int], dist Distribution, cfg Config) (float64, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	list.ResetCost()
	for i := 0; i < cfg.Accesses; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		v, err := dist.Draw(r)
		if err != nil {
			return 0, err
		}
		if !list.Contains(v) {
			return 0, fmt.Errorf("value %d missing from list", v)
		}
	}
	return float64(list.Cost()) / float64(cfg.Accesses), nil
}
