package cli

import (
	"fmt"
	"github.com/davejbax/go-ytime"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"strconv"
	"strings"
)

func newPackCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "pack <datetime>",
		Short:   "Print the packed microsecond count of a date-time",
		Example: "  ytime pack 2016-12-31T23:59:60",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := opts.parseDateTime(args[0])
			if err != nil {
				return err
			}

			packed := opts.calendar.Pack(dt)
			opts.logger.WithFields(logrus.Fields{
				"datetime":    dt,
				"leapSeconds": opts.calendar.LeapSecondsAt(dt),
			}).Debug("packed date-time")

			return opts.printer(cmd).print(
				strconv.FormatUint(packed.Uint64(), 10),
				packResult{DateTime: dt.String(), Packed: packed.Uint64()},
			)
		},
	}
}

func newUnpackCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "unpack <packed>",
		Short:   "Print the date-time of a packed microsecond count",
		Example: "  ytime unpack 24372489600500000",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid packed value '%s'", args[0]), err)
			}

			packed := ytime.PackedDateTime(value)
			dt := opts.calendar.Unpack(packed)

			return opts.printer(cmd).print(dt.String(), packResult{DateTime: dt.String(), Packed: value})
		},
	}
}

func newDeltaCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "delta <from> <to>",
		Short:   "Print the calendar delta between two date-times",
		Example: "  ytime delta 2015-06-29T23:59:59 2015-07-01T00:00:00",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := opts.parseDateTime(args[0])
			if err != nil {
				return err
			}

			to, err := opts.parseDateTime(args[1])
			if err != nil {
				return err
			}

			delta, err := opts.calendar.GetDelta(opts.calendar.Pack(from), opts.calendar.Pack(to))
			if err != nil {
				return WrapExitError(ExitFailure, "could not compute delta", err)
			}

			return opts.printer(cmd).print(delta.String(), deltaResult{
				From:         from.String(),
				To:           to.String(),
				Days:         delta.Days(),
				Microseconds: delta.TotalMicroseconds(),
				Delta:        delta.String(),
			})
		},
	}
}

func newAddCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "add <datetime> <days> <seconds>",
		Short:   "Add a number of calendar days and elapsed seconds to a date-time",
		Example: "  ytime add 1990-12-31T23:59:59 9497 1\n  ytime add 2019-12-31T23:59:59 -- -7669 -86400",
		Args:    exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := opts.parseDateTime(args[0])
			if err != nil {
				return err
			}

			days, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid number of days '%s'", args[1]), err)
			}

			us, err := ytime.ParseSeconds(args[2])
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid number of seconds '%s'", args[2]), err)
			}

			delta := ytime.NewDelta(days, us)
			packed, err := opts.calendar.AddDelta(opts.calendar.Pack(from), delta)
			if err != nil {
				return WrapExitError(ExitFailure, "could not add delta", err)
			}

			result := opts.calendar.Unpack(packed)
			opts.logger.WithFields(logrus.Fields{
				"from":  from,
				"delta": delta,
			}).Debug("added delta")

			return opts.printer(cmd).print(result.String(), addResult{
				From:   from.String(),
				Delta:  delta.String(),
				Result: result.String(),
				Packed: packed.Uint64(),
			})
		},
	}
}

func newLeapSecondsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "leapseconds",
		Short: "List the leap second table in effect",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := opts.calendar.LeapSecondTable().Entries()

			var text strings.Builder
			result := leapSecondsResult{LeapSeconds: make([]leapSecondResult, 0, len(entries))}
			for i, entry := range entries {
				if i > 0 {
					text.WriteByte('\n')
				}
				fmt.Fprintf(&text, "%s %d", entry.Date, entry.Count)

				result.LeapSeconds = append(result.LeapSeconds, leapSecondResult{
					Date:  entry.Date.String(),
					Count: entry.Count,
				})
			}

			return opts.printer(cmd).print(text.String(), result)
		},
	}
}

func newNowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current UTC date-time and its packed value",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := ytime.Now()
			packed := opts.calendar.Pack(now)

			return opts.printer(cmd).print(
				fmt.Sprintf("%s %d", now, packed.Uint64()),
				packResult{DateTime: now.String(), Packed: packed.Uint64()},
			)
		},
	}
}
