package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-collections/collections"
)

// Field names for structured trace output.
const (
	fieldStage = "stage"
	fieldValue = "value"
	fieldCount = "count"
)

const envPrefix = "SEQDEMO"

// boundFlags are the persistent flags mirrored into the config keys of the
// same name.
var boundFlags = []string{"format", "trace", "limit"}

// config holds the settings shared by every subcommand. Values come from
// flags, SEQDEMO_* environment variables and an optional config file, in
// that order of precedence.
type config struct {
	Format string `mapstructure:"format"`
	Trace  bool   `mapstructure:"trace"`
	Limit  int    `mapstructure:"limit"`
}

// app is the state built by the root command before any subcommand runs.
type app struct {
	v   *viper.Viper
	cfg config
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop().Sugar()}
	var configFile string

	root := &cobra.Command{
		Use:   "seqdemo",
		Short: "seqdemo - lazy sequence pipelines from the command line",
		Long: `seqdemo runs small lazy pipelines built with the collections package.

Examples:
  seqdemo range 1 10 --step 3        # 1..10 step 3: 1 4 7 10
  seqdemo chunk --size 2 1 2 3 4 5   # [1 2] [3 4] [5]
  seqdemo primes --count 5 --trace   # trace every stage at debug level
  seqdemo sort --desc 3 1 2 -f yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.StringP("format", "f", "text", "output format: text, json or yaml")
	flags.Bool("trace", false, "log every element flowing through each stage")
	flags.Int("limit", 0, "truncate text output after this many elements (0 = no limit)")

	root.AddCommand(
		newRangeCmd(a),
		newChunkCmd(a),
		newDistinctCmd(a),
		newFibCmd(a),
		newPrimesCmd(a),
		newSortCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, configFile string) error {
	flags := cmd.Root().PersistentFlags()
	for _, name := range boundFlags {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if configFile != "" {
		a.v.SetConfigFile(configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}

	switch a.cfg.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return errors.WithHint(
			errors.Newf("unknown output format %q", a.cfg.Format),
			"use one of: text, json, yaml",
		)
	}
	if a.cfg.Limit < 0 {
		return errors.Newf("limit must be non-negative, got %d", a.cfg.Limit)
	}

	if a.cfg.Trace {
		a.log = newTraceLogger(cmd.ErrOrStderr())
	}
	return nil
}

// newTraceLogger returns a debug-level console logger writing to w.
func newTraceLogger(w io.Writer) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core).Sugar().Named("seqdemo")
}

// traced logs every element of s as it is pulled through the named stage.
// When tracing is off the stage is returned unchanged.
func traced[T any](a *app, stage string, s *collections.Sequence[T]) *collections.Sequence[T] {
	if !a.cfg.Trace {
		return s
	}
	return s.Peek(func(v T) {
		a.log.Debugw("element", fieldStage, stage, fieldValue, v)
	})
}
