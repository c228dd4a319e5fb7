package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/app"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// policyFlags holds the scoring overrides. Only flags set on the command
// line become options.
type policyFlags struct {
	answeredWeight float64
	partialWeight  float64
	completed      int
	activeHigh     int
	activeLow      int
}

func (f *policyFlags) register(cmd *cobra.Command) {
	def := completion.DefaultPolicy()
	cmd.Flags().Float64Var(&f.answeredWeight, "answered-weight", def.AnsweredWeight, "weight of a fully answered question")
	cmd.Flags().Float64Var(&f.partialWeight, "partial-weight", def.PartialWeight, "weight of a partially answered question")
	cmd.Flags().IntVar(&f.completed, "completed-threshold", def.CompletedThreshold, "percentage at which a project is completed")
	cmd.Flags().IntVar(&f.activeHigh, "active-high-threshold", def.ActiveHighThreshold, "percentage for the blue active band")
	cmd.Flags().IntVar(&f.activeLow, "active-low-threshold", def.ActiveLowThreshold, "percentage for the yellow active band")
}

func (f *policyFlags) options(cmd *cobra.Command) []completion.Option {
	var opts []completion.Option
	if cmd.Flags().Changed("answered-weight") {
		opts = append(opts, completion.WithAnsweredWeight(f.answeredWeight))
	}
	if cmd.Flags().Changed("partial-weight") {
		opts = append(opts, completion.WithPartialWeight(f.partialWeight))
	}
	if cmd.Flags().Changed("completed-threshold") {
		opts = append(opts, completion.WithCompletedThreshold(f.completed))
	}
	if cmd.Flags().Changed("active-high-threshold") {
		opts = append(opts, completion.WithActiveHighThreshold(f.activeHigh))
	}
	if cmd.Flags().Changed("active-low-threshold") {
		opts = append(opts, completion.WithActiveLowThreshold(f.activeLow))
	}
	return opts
}

func checkOutput(output string) error {
	if output != outputText && output != outputJSON {
		return fmt.Errorf("invalid --output %q: must be %s or %s", output, outputText, outputJSON)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	var (
		pf     policyFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "score [file|-]",
		Short: "Compute the completion score of a progress payload",
		Long: `Compute the completion score of a project progress payload read from a
file, or from stdin when the argument is "-" or omitted.

Count anomalies are scored the way the dashboard scores backend data:
negative counts count as zero. Only a payload without a readable question
block scores as "unknown". Problems are listed alongside the result.

Examples:
  discoveryctl score progress.json
  curl -s localhost:4000/project_progress/3 | discoveryctl score -
  discoveryctl score progress.json --partial-weight 0.5 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			svc := app.NewCompletionService(progress.NewDecoder(), cliPolicies(), nil, discardLogger())
			eval, err := svc.Evaluate(cmd.Context(), payload, pf.options(cmd)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == outputJSON {
				return writeJSON(out, dto.ToEvaluationResponse(eval))
			}
			renderResult(out, eval.Completion)
			renderFindings(cmd.ErrOrStderr(), eval.Validation.Errors, eval.Validation.Warnings)
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or json")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check a progress payload against the schema and count rules",
		Long: `Check a project progress payload for structural errors and count
inconsistencies. Exits 1 when the payload has errors; warnings alone do
not fail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			_, v := progress.NewDecoder().Decode(payload)
			out := cmd.OutOrStdout()
			renderFindings(out, v.Errors, v.Warnings)
			if !v.Valid() {
				return &exitError{code: 1, msg: fmt.Sprintf("payload has %d error(s)", len(v.Errors))}
			}
			fmt.Fprintln(out, "valid")
			return nil
		},
	}
}

// readPayload reads the file named by args[0], or stdin when there is no
// argument or it is "-".
func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

// cliPolicies resolves scoring policies from the defaults and per-command
// flags only; the CLI has no settings store.
func cliPolicies() *app.Policies {
	return app.NewPolicies(completion.DefaultPolicy(), nil, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
