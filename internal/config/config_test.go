package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/bradenaw/selfadjust"
	"github.com/bradenaw/selfadjust/workload"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, workload.DefaultConfig(), cfg)
}

func TestLoadDerivesSkew(t *testing.T) {
	v := New()
	v.Set(KeyValues, 200)
	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 100.0, cfg.Mean)
	require.Equal(t, 40.0, cfg.StdDev)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SELFADJUST_ACCESSES", "500")
	t.Setenv("SELFADJUST_POLICIES", "mtf,transpose")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, 500, cfg.Accesses)
	require.Equal(t, []selfadjust.Policy{selfadjust.MoveToFront, selfadjust.Transpose}, cfg.Policies)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selfadjust.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
values = 300
seed = 7
mean = 10.0
stddev = 3.0
policies = ["plain", "mtf"]
`), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	require.Equal(t, workload.Config{
		Values:   300,
		Accesses: workload.DefaultConfig().Accesses,
		Seed:     7,
		Mean:     10,
		StdDev:   3,
		Policies: []selfadjust.Policy{selfadjust.Plain, selfadjust.MoveToFront},
	}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestFlagsOverride(t *testing.T) {
	v := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, RegisterFlags(v, flags))
	require.NoError(t, flags.Parse([]string{"--values=10", "--policies=transpose", "--stddev=2"}))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Values)
	require.Equal(t, 5.0, cfg.Mean)
	require.Equal(t, 2.0, cfg.StdDev)
	require.Equal(t, []selfadjust.Policy{selfadjust.Transpose}, cfg.Policies)
}

func TestExplicitZeroMean(t *testing.T) {
	v := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, RegisterFlags(v, flags))
	require.NoError(t, flags.Parse([]string{"--values=100", "--mean=0"}))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.Mean)
	require.Equal(t, 20.0, cfg.StdDev)

	v = New()
	v.Set(KeyValues, 100)
	v.Set(KeyMean, 0)
	cfg, err = Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.Mean)
	require.Equal(t, 20.0, cfg.StdDev)
}

func TestLoadEnvZeroMean(t *testing.T) {
	t.Setenv("SELFADJUST_VALUES", "100")
	t.Setenv("SELFADJUST_MEAN", "0")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.Mean)
}

func TestLoadInvalid(t *testing.T) {
	v := New()
	v.Set(KeyPolicies, []string{"lru"})
	_, err := Load(v, "")
	require.ErrorIs(t, err, workload.ErrInvalidConfig)

	v = New()
	v.Set(KeyValues, -1)
	_, err = Load(v, "")
	require.ErrorIs(t, err, workload.ErrInvalidConfig)
}
