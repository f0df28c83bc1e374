// Package cli implements the ytime command: packing, unpacking and interval arithmetic on UTC date-times from the
// shell
package cli

import (
	"fmt"
	"github.com/davejbax/go-ytime"
	"github.com/davejbax/go-ytime/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options holds the global flags and the state shared by every subcommand
type Options struct {
	ConfigFile      string
	LeapSecondsFile string
	Format          string
	Verbose         bool

	calendar *ytime.Calendar
	logger   *logrus.Logger
}

func NewRootCommand() *cobra.Command {
	opts := &Options{
		logger: logrus.New(),
	}

	cmd := &cobra.Command{
		Use:   "ytime",
		Short: "Leap-second aware UTC date-time arithmetic",
		Long: "ytime packs UTC date-times into microsecond counts that include leap seconds, and measures or adds " +
			"calendar deltas between them.\n\nNegative numbers must follow '--', e.g. 'ytime add 2020-04-24 -- -10958 0'.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "YAML or TOML configuration file")
	flags.StringVarP(&opts.LeapSecondsFile, "leap-seconds", "l", "", "YAML or TOML leap second table replacing the built-in one")
	flags.StringVar(&opts.Format, "format", config.FormatText, "output format (text|json)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(newPackCommand(opts))
	cmd.AddCommand(newUnpackCommand(opts))
	cmd.AddCommand(newDeltaCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newLeapSecondsCommand(opts))
	cmd.AddCommand(newNowCommand(opts))

	return cmd
}

// setup merges the configuration file with the flags, which take precedence, and picks the leap second table
func (o *Options) setup(cmd *cobra.Command) error {
	o.logger.SetOutput(cmd.ErrOrStderr())
	o.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg := config.Default()
	if o.ConfigFile != "" {
		loaded, err := config.Load(o.ConfigFile)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load configuration", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.Format = cfg.Format
	}
	if !flags.Changed("verbose") {
		o.Verbose = cfg.Verbose
	}
	if !flags.Changed("leap-seconds") {
		o.LeapSecondsFile = cfg.LeapSecondsFile
	}

	if err := (&config.Config{Format: o.Format}).Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid --format", err)
	}

	if o.Verbose {
		o.logger.SetLevel(logrus.DebugLevel)
	}

	if o.LeapSecondsFile == "" {
		o.calendar = ytime.DefaultCalendar()
		o.logger.WithField("entries", o.calendar.LeapSecondTable().Len()).Debug("using built-in leap second table")
		return nil
	}

	table, err := ytime.LoadLeapSecondTableFile(o.LeapSecondsFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load leap second table", err)
	}

	o.calendar, err = ytime.NewCalendar(table)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load leap second table", err)
	}

	o.logger.WithFields(logrus.Fields{
		"path":    o.LeapSecondsFile,
		"entries": table.Len(),
	}).Debug("loaded leap second table")

	return nil
}

func (o *Options) printer(cmd *cobra.Command) *printer {
	return &printer{format: o.Format, w: cmd.OutOrStdout()}
}

// parseDateTime parses and validates a date-time argument against the calendar in use
func (o *Options) parseDateTime(arg string) (ytime.DateTime, error) {
	dt, err := ytime.ParseDateTime(arg)
	if err != nil {
		return ytime.DateTime{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid date-time '%s'", arg), err)
	}

	if err := o.calendar.Validate(dt); err != nil {
		return ytime.DateTime{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid date-time '%s'", arg), err)
	}

	return dt, nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return NewExitError(ExitCommandError, fmt.Sprintf("%s expects %d argument(s), got %d", cmd.Name(), n, len(args)))
		}
		return nil
	}
}
