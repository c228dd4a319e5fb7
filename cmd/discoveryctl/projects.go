package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/app"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
)

// projectsOutput is the JSON shape of the projects command.
type projectsOutput struct {
	dto.ProjectListResponse
	Summary dto.SummaryResponse `json:"summary"`
}

func newProjectsCmd(root *rootOptions) *cobra.Command {
	var (
		pf          policyFlags
		output      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List backend projects with their completion",
		Long: `List every project known to the discovery backend with its completion
score. Progress is fetched concurrently; a project whose progress cannot be
fetched is shown as unavailable and does not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}

			logger := root.logger(cmd.ErrOrStderr())
			svc := app.NewDiscoveryService(
				root.client(logger),
				app.NewPolicies(completion.DefaultPolicy(), nil, logger),
				nil,
				concurrency,
				logger,
			)

			projects, err := svc.ListProjects(cmd.Context(), pf.options(cmd)...)
			if err != nil {
				return err
			}

			entries := make([]completion.Entry, len(projects))
			for i := range projects {
				entries[i] = completion.Entry{Result: projects[i].Completion, Loaded: projects[i].Loaded}
			}
			summary := completion.Summarize(entries)

			out := cmd.OutOrStdout()
			if output == outputJSON {
				return writeJSON(out, projectsOutput{
					ProjectListResponse: dto.ToProjectListResponse(projects),
					Summary:             dto.ToSummaryResponse(&summary),
				})
			}

			for i := range projects {
				p := &projects[i]
				line := fmt.Sprintf("%4d  %-28s %s %3d%%  %s",
					p.Project.ID, p.Project.Name, progressBar(p.Completion, barWidth), p.Completion.Percentage, statusBadge(p.Completion))
				if !p.Loaded {
					line += "  " + mutedStyle.Render(fmt.Sprintf("(unavailable: %v)", p.Err))
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf(
				"%d projects, average %d%%, %d completed, %d active, %d pending, efficiency %d%%",
				summary.TotalProjects, summary.AverageCompletion, summary.CompletedProjects,
				summary.ActiveProjects, summary.PendingProjects, summary.OrganizationEfficiency,
			)))
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or json")
	cmd.Flags().IntVar(&concurrency, "concurrency", app.DefaultMaxConcurrency, "maximum concurrent progress fetches")
	return cmd
}

func newHealthCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the discovery backend is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := root.logger(cmd.ErrOrStderr())
			if err := root.client(logger).Ping(cmd.Context()); err != nil {
				return fmt.Errorf("discovery backend at %s: %w", root.apiURL, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "discovery backend at %s is healthy\n", root.apiURL)
			return nil
		},
	}
}
