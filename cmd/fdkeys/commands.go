package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonlawlor/fdkeys"
	"github.com/jonlawlor/fdkeys/att"
	"github.com/jonlawlor/fdkeys/fdfile"
	"github.com/jonlawlor/fdkeys/internal/config"
	"github.com/jonlawlor/fdkeys/report"
)

const (
	configFlag   = "config"
	formatFlag   = "format"
	logLevelFlag = "log-level"
	workersFlag  = "workers"
)

// app is the state shared by the commands of one execution.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg    config.Configuration
	log    zerolog.Logger
	format report.Format
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	var configPath string
	rootCmd := &cobra.Command{
		Use:           cmdName,
		Short:         "Find the candidate keys of a relation from its functional dependencies",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOutput(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, configFlag, "c", "", "path to config file")
	flags.StringP(formatFlag, "f", "text", "output format: text, table, json or yaml")
	flags.String(logLevelFlag, "info", "log level: debug, info, warn or error")
	flags.IntP(workersFlag, "w", 4, "number of files analyzed at the same time")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.init(configPath, cmd)
	}

	rootCmd.AddCommand(
		keysCommand(a),
		closureCommand(a),
		superkeyCommand(a),
		depsCommand(a),
		versionCommand(a),
	)
	return rootCmd
}

// init loads the configuration and sets up logging.
func (a *app) init(configPath string, cmd *cobra.Command) error {
	holder := config.NewHolder(configPath)
	flags := cmd.Flags()
	for key, name := range map[string]string{
		"output.format":  formatFlag,
		"output.workers": workersFlag,
		"log.level":      logLevelFlag,
	} {
		if err := holder.BindFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	if err := holder.Load(); err != nil {
		return err
	}
	a.cfg = *holder.Configuration

	log, err := config.NewLogger(a.cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.log = log

	a.format, err = report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	a.log.Debug().Str("config", configPath).Msgf("starts with configuration:\n%s", config.ToString(&a.cfg))
	return nil
}

func keysCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys FILE...",
		Short: "List the candidate keys of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := analyze(args, a.cfg.Output.Workers, a.log)
			if err != nil {
				return err
			}
			for _, r := range reports {
				if err := report.Write(a.stdout, r, a.format); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func closureCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "closure FILE ATTRS",
		Short: "Print the attributes determined by ATTRS, a comma separated list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, set, err := loadQuery(args[0], args[1])
			if err != nil {
				return err
			}
			c := fdkeys.Closure(set, s.Dependencies())
			a.log.Debug().Str("file", args[0]).Str("attributes", args[1]).Int("size", c.Len()).Msg("closure computed")
			_, err = fmt.Fprintf(a.stdout, "{%s}\n", s.Heading().Join(c, ", "))
			return err
		},
	}
}

func superkeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "superkey FILE ATTRS",
		Short: "Tell whether ATTRS, a comma separated list, is a superkey",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, set, err := loadQuery(args[0], args[1])
			if err != nil {
				return err
			}
			deps := s.Dependencies()
			h := s.Heading()
			if !fdkeys.IsSuperkey(set, deps) {
				_, err = fmt.Fprintf(a.stdout, "{%s} is not a superkey, its closure is {%s}\n",
					h.Join(set, ", "), h.Join(fdkeys.Closure(set, deps), ", "))
				return err
			}
			k := fdkeys.Minimize(set, deps)
			_, err = fmt.Fprintf(a.stdout, "{%s} is a superkey, it contains the candidate key {%s}\n",
				h.Join(set, ", "), h.Join(k, ", "))
			return err
		},
	}
}

func depsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deps FILE",
		Short: "Print the dependencies of a file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := fdfile.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%s\n%s", s, fdkeys.PrettyPrint(s))
			return err
		},
	}
}

func versionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "%s %s\n", cmdName, version)
			return err
		},
	}
}

// loadQuery reads the schema in path and the attribute names in list.
func loadQuery(path, list string) (*fdkeys.Schema, att.Set, error) {
	s, err := fdfile.Load(path)
	if err != nil {
		return nil, 0, err
	}
	names, err := fdfile.SplitNames(list)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "attributes '%s'", list)
	}
	set, err := s.Set(names...)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "attributes '%s'", list)
	}
	return s, set, nil
}
