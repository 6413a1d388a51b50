package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/catalog"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/observability"
)

// app carries the state shared by every command of one invocation.
type app struct {
	logLevel string
	metrics  bool
	plain    bool

	logger   *slog.Logger
	engine   *automata.Engine
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fsa",
		Short: "fsa works with finite automata",
		Long: `fsa runs the built-in automata through membership tests, NFA to DFA
conversion and right-regular grammar derivation.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metrics {
				return nil
			}
			return observability.WriteText(cmd.ErrOrStderr(), a.registry)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Print Prometheus metrics to stderr after the command")
	rootCmd.PersistentFlags().BoolVar(&a.plain, "plain", false, "Disable rich terminal rendering")

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(),
		newDescribeCmd(a),
		newAcceptsCmd(a),
		newCheckCmd(a),
		newConvertCmd(a),
		newGrammarCmd(a),
		newDemoCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level).With("command", cmd.Name())

	a.registry = prometheus.NewRegistry()
	m, err := observability.NewMetrics(a.registry)
	if err != nil {
		return err
	}

	a.engine = automata.New(
		automata.WithLogger(a.logger),
		automata.WithHooks(m.Hooks()),
	)
	return nil
}

// load builds a catalog automaton by name.
func (a *app) load(name string) (*automaton.Automaton, error) {
	fa, err := catalog.Load(name)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("automaton loaded", "name", name, "states", fa.States().Len())
	return fa, nil
}

// render prints markdown, through glamour when writing to a terminal.
func (a *app) render(cmd *cobra.Command, markdown string) error {
	out := cmd.OutOrStdout()
	if a.plain || !tui.IsTerminal(out) {
		_, err := fmt.Fprint(out, markdown)
		return err
	}
	rendered, err := tui.NewRenderer(tui.Width(out))(markdown)
	if err != nil {
		a.logger.Warn("markdown rendering failed, falling back to plain output", "error", err)
		rendered = markdown
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

// catalogArg completes catalog names for the first positional argument.
func catalogArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}
