package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/checklist/pkg/checklist"
)

const version = "v0.1.0"

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfg    Config
	output string
	log    *slog.Logger
	list   *checklist.CheckList
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "checklist",
		Short: "Evaluate field values against a composed rule checklist",
		Long: `checklist evaluates a (field, value) pair against the rules registered
for that field and reports a single verdict: clear, attention or error.

Several rules may target the same field; the most severe outcome wins.

Environment:
  CHECKLIST_ENV         development|production (default: development)
  CHECKLIST_LOG_LEVEL   debug|info|warn|error (default: warn)
  CHECKLIST_LOG_FORMAT  text|json
  CHECKLIST_OUTPUT      text|json|yaml (default: text)`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "checklist %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd, newEvalCmd(a), newFieldsCmd(a))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.output == "" {
		a.output = cfg.Output
	}
	if err := validateOutput(a.output); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, commandKey{}, cmd.Name()))

	a.log, err = newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.list, err = sampleCheckList(a.log)
	if err != nil {
		return fmt.Errorf("build checklist: %w", err)
	}
	return nil
}
