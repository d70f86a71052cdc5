// Package config loads workload configuration from flags, SELFADJUST_* environment variables and
// an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/xslices"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bradenaw/selfadjust"
	"github.com/bradenaw/selfadjust/workload"
)

const EnvPrefix = "SELFADJUST"

const (
	KeyValues   = "values"
	KeyAccesses = "accesses"
	KeySeed     = "seed"
	KeyMean     = "mean"
	KeyStdDev   = "stddev"
	KeyPolicies = "policies"
)

// New returns a viper instance with defaults from workload.DefaultConfig and environment lookup
// enabled. Mean and stddev have no defaults: when neither is set Load derives them from values as
// values/2 and values/5.
func New() *viper.Viper {
	def := workload.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyValues, def.Values)
	v.SetDefault(KeyAccesses, def.Accesses)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyPolicies, policyNames(def.Policies))
	return v
}

// RegisterFlags adds the workload flags to flags and binds them to v.
func RegisterFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	def := workload.DefaultConfig()
	flags.Int(KeyValues, def.Values, "number of distinct values in each list")
	flags.Int(KeyAccesses, def.Accesses, "lookups per phase")
	flags.Int64(KeySeed, def.Seed, "random seed used at the start of each phase")
	flags.Float64(KeyMean, 0, "mean of the skewed phase (default values/2)")
	flags.Float64(KeyStdDev, 0, "standard deviation of the skewed phase (default values/5)")
	flags.StringSlice(KeyPolicies, policyNames(def.Policies), "policies to measure: plain, mtf, transpose")

	for _, key := range []string{KeyValues, KeyAccesses, KeySeed, KeyMean, KeyStdDev, KeyPolicies} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file at path, if path is not empty, and returns the validated workload
// configuration from v.
func Load(v *viper.Viper, path string) (workload.Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return workload.Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := workload.Config{
		Values:   v.GetInt(KeyValues),
		Accesses: v.GetInt(KeyAccesses),
		Seed:     v.GetInt64(KeySeed),
	}
	// A bound flag only counts as set once it's been passed, so an explicit 0 is kept.
	if v.IsSet(KeyMean) {
		cfg.Mean = v.GetFloat64(KeyMean)
	} else {
		cfg.Mean = float64(cfg.Values) / 2
	}
	if v.IsSet(KeyStdDev) {
		cfg.StdDev = v.GetFloat64(KeyStdDev)
	} else {
		cfg.StdDev = float64(cfg.Values) / 5
	}

	policies, err := parsePolicies(v.GetStringSlice(KeyPolicies))
	if err != nil {
		return workload.Config{}, err
	}
	cfg.Policies = policies

	if err := cfg.Validate(); err != nil {
		return workload.Config{}, err
	}
	return cfg, nil
}

// parsePolicies accepts both list entries and comma-separated strings, since environment variables
// arrive as a single string.
func parsePolicies(raw []string) ([]selfadjust.Policy, error) {
	var policies []selfadjust.Policy
	for _, entry := range raw {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			p, err := selfadjust.ParsePolicy(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", workload.ErrInvalidConfig, err)
			}
			policies = append(policies, p)
		}
	}
	return policies, nil
}

func policyNames(policies []selfadjust.Policy) []string {
	return xslices.Map(policies, selfadjust.Policy.String)
}
