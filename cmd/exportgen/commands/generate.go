package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/exportgen/internal/app"
	"go.trai.ch/exportgen/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [export-sets...]",
		Short: "Generate the descriptors of the plan's installations",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions(cmd, args)
			opts.FailFast, _ = cmd.Flags().GetBool("fail-fast")
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

			results, err := c.app.Generate(cmd.Context(), opts)
			printResults(cmd.OutOrStdout(), results)
			return err
		},
	}
	addPlanFlags(cmd)
	cmd.Flags().Bool("fail-fast", false, "Stop starting installations after the first failure")
	cmd.Flags().BoolP("dry-run", "n", false, "Generate in memory without writing files")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [export-sets...]",
		Short: "Validate the plan without writing files",
		Long: "Generates the selected installations in memory and fails when a referenced " +
			"target of another export set is not provided by any of them.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Check(cmd.Context(), generateOptions(cmd, args))
		},
	}
	addPlanFlags(cmd)
	return cmd
}

func (c *CLI) newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [export-sets...]",
		Short: "List the descriptor files recorded by the last generation",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Files(cmd.Context(), args)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("plan", "p", ".", "Plan file, or directory to search upwards from")
	cmd.Flags().IntP("jobs", "j", 0, "Installations generated concurrently (default: number of CPUs)")
}

func generateOptions(cmd *cobra.Command, args []string) app.GenerateOptions {
	plan, _ := cmd.Flags().GetString("plan")
	jobs, _ := cmd.Flags().GetInt("jobs")
	return app.GenerateOptions{
		Plan:       plan,
		ExportSets: args,
		Jobs:       jobs,
	}
}

// printResults writes one block per installation: the main descriptor followed
// by its per-configuration descriptors.
func printResults(w io.Writer, results []domain.GenerationResult) {
	for i := range results {
		r := &results[i]
		_, _ = fmt.Fprintf(w, "%s (%s)\n  %s\n", r.ExportSet, r.Key(), r.MainFile)
		for _, label := range slices.Sorted(maps.Keys(r.ConfigFiles)) {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", label, r.ConfigFiles[label])
		}
	}
}
