package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"branch-builder/internal/branch"
	"branch-builder/internal/experiment"
	"branch-builder/internal/logger"
)

const envPrefix = "BRANCH"

// Flag names double as viper keys. Every key can be set from the
// environment as BRANCH_<KEY>, with dashes turned into underscores.
const (
	flagParent         = "parent"
	flagChild          = "child"
	flagExpansion      = "expansion"
	flagStrict         = "strict"
	flagMaxSuggestions = "max-suggestions"
	flagMinScore       = "min-score"
	flagLogLevel       = "log-level"
)

type app struct {
	v    *viper.Viper
	lggr logger.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{v: v}
}

func (a *app) rootCmd() *cobra.Command {
	defaults := branch.DefaultConfig()

	root := &cobra.Command{
		Use:           "branch-builder",
		Short:         "Resolve search space conflicts between an experiment and its parent",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd.Flags()); err != nil {
				return err
			}

			return a.initLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.lggr != nil {
				_ = a.lggr.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(flagParent, "p", "", "parent experiment configuration (yaml, json or toml)")
	flags.StringP(flagChild, "c", "", "child experiment configuration (yaml, json or toml)")
	flags.String(flagExpansion, defaults.Expansion.String(), "multi-name expansion rule: union or last-token")
	flags.Bool(flagStrict, defaults.StrictMode, "fail while conflicts remain unresolved")
	flags.Int(flagMaxSuggestions, defaults.MaxSuggestions, "rename suggestions per missing dimension")
	flags.Float64(flagMinScore, defaults.MinRenameScore, "minimum rename suggestion score")
	flags.String(flagLogLevel, "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.conflictsCmd(),
		a.suggestCmd(),
		a.resolveCmd(),
	)

	return root
}

func (a *app) initLogger() error {
	if a.lggr != nil {
		return nil
	}

	level, err := zapcore.ParseLevel(a.v.GetString(flagLogLevel))
	if err != nil {
		return fmt.Errorf("--%s: %w", flagLogLevel, err)
	}

	cfg := logger.ConfigFromEnv(level)

	a.lggr, err = cfg.New()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	return nil
}

func (a *app) branchConfig() (branch.Config, error) {
	mode, err := branch.ParseExpansionMode(a.v.GetString(flagExpansion))
	if err != nil {
		return branch.Config{}, fmt.Errorf("--%s: %w", flagExpansion, err)
	}

	return branch.Config{
		Expansion:      mode,
		StrictMode:     a.v.GetBool(flagStrict),
		MaxSuggestions: a.v.GetInt(flagMaxSuggestions),
		MinRenameScore: a.v.GetFloat64(flagMinScore),
	}, nil
}

// session loads both configurations and opens a branch session.
func (a *app) session() (*branch.Builder, *experiment.Config, error) {
	parentPath, childPath := a.v.GetString(flagParent), a.v.GetString(flagChild)
	if parentPath == "" || childPath == "" {
		return nil, nil, fmt.Errorf("both --%s and --%s are required", flagParent, flagChild)
	}

	cfg, err := a.branchConfig()
	if err != nil {
		return nil, nil, err
	}

	parent, err := experiment.LoadFile(parentPath)
	if err != nil {
		return nil, nil, err
	}

	child, err := experiment.LoadFile(childPath)
	if err != nil {
		return nil, nil, err
	}

	b, err := branch.NewBuilder(parent, child, branch.WithConfig(cfg), branch.WithLogger(a.lggr))
	if err != nil {
		return nil, nil, err
	}

	return b, child, nil
}

// bind makes the parsed flags of the running command visible to viper,
// inherited persistent flags included.
func (a *app) bind(fs *pflag.FlagSet) error {
	return a.v.BindPFlags(fs)
}
