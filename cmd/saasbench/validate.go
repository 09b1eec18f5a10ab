package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mugiliam/saasbench/internal/config"
	"github.com/mugiliam/saasbench/internal/workflow"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate workflow YAML files",
	Long: `Validate loads workflow files and reports structural problems. With a
file argument it validates that one file; with a directory (or no argument,
using the configured workflow directory) it validates every *.yaml inside.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := log.Logger.WithContext(context.Background())

		path := config.Config().WorkflowDir
		if len(args) == 1 {
			path = args[0]
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			wf, loadErr := workflow.Load(ctx, path, true)
			if loadErr != nil {
				return loadErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d steps)\n", wf.ID, len(wf.Steps))
			return nil
		}

		workflows := workflow.LoadDir(ctx, path)
		for _, wf := range workflows {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d steps)\n", wf.ID, len(wf.Steps))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d workflow(s) loaded\n", len(workflows))
		return nil
	},
}
