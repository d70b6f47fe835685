package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/checklist/pkg/logger"
	"github.com/dmitrymomot/checklist/pkg/value"
)

var ErrUnknownField = errors.New("unknown field")

const kindAuto = "auto"

func newEvalCmd(a *app) *cobra.Command {
	var (
		kind   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "eval <field> <value>",
		Short: "Evaluate a value against the rules of a field",
		Long: `Eval runs every rule registered for the field and prints the resulting commit.

The value kind is inferred by default: text that parses as a number becomes a
number, anything else a literal. Use --kind to force it.

Example:
  checklist eval A abc
  checklist eval B 3 --output json
  checklist eval B 6 --strict
  checklist eval code 123 --kind literal`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, raw := args[0], args[1]

			v, err := toValue(raw, kind)
			if err != nil {
				return err
			}

			commit, ok, err := a.list.Commit(field, v)
			if err != nil {
				return err
			}
			if !ok {
				a.log.InfoContext(cmd.Context(), "field not registered", logger.Field(field))
				return fmt.Errorf("%w %q", ErrUnknownField, field)
			}

			a.log.InfoContext(cmd.Context(), "value committed",
				logger.Field(field),
				logger.Verdict(commit.Verdict()),
			)

			if err := render(cmd.OutOrStdout(), a.output, commit, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, commit)
				return err
			}); err != nil {
				return err
			}

			if strict {
				return commit.Err()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindAuto, "value kind: auto, number or literal")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the verdict is error")
	return cmd
}

func toValue(raw, kind string) (value.Value, error) {
	if kind == kindAuto {
		return value.Parse(raw), nil
	}
	k, err := value.ParseKind(kind)
	if err != nil {
		return value.Value{}, err
	}
	return value.New(raw, k), nil
}
