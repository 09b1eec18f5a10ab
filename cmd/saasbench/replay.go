package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mugiliam/saasbench/internal/common"
	"github.com/mugiliam/saasbench/internal/environment"
	"github.com/mugiliam/saasbench/internal/evaluation"
	"github.com/mugiliam/saasbench/internal/policy"
	"github.com/mugiliam/saasbench/internal/tools"
	"github.com/mugiliam/saasbench/internal/workflow"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var archivePath string

var replayCmd = &cobra.Command{
	Use:   "replay <workflow.yaml>",
	Short: "Replay a workflow's steps and evaluate the final state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := log.Logger.WithContext(context.Background())
		ctx = common.SetSessionIdInContext(ctx, uuid.NewString())

		wf, loadErr := workflow.Load(ctx, args[0], true)
		if loadErr != nil {
			return loadErr
		}

		initial, stateErr := wf.InitialWorkspaceState()
		if stateErr != nil {
			return stateErr
		}
		goal, stateErr := wf.GoalWorkspaceState()
		if stateErr != nil {
			return stateErr
		}

		env := environment.New(initial)
		for _, step := range wf.Steps {
			if step.APICall.Tool == "" {
				log.Ctx(ctx).Warn().Int("step_id", step.StepID).Msg("step has no api call, skipping")
				continue
			}

			// Policy is advisory: violations are logged, never blocked.
			action := policy.Action{Type: step.APICall.Tool, Args: step.APICall.Parameters}
			if ok, reason := policy.ValidateAction(env.State(), action); !ok {
				log.Ctx(ctx).Warn().
					Int("step_id", step.StepID).
					Str("reason", reason).
					Msg("step violates workspace policy")
			}

			response := env.ExecuteTool(ctx, tools.ToolName(step.APICall.Tool), tools.Args(step.APICall.Parameters))
			if errMsg, failed := response["error"]; failed {
				log.Ctx(ctx).Error().
					Int("step_id", step.StepID).
					Str("tool", step.APICall.Tool).
					Interface("error", errMsg).
					Msg("step failed")
			} else {
				log.Ctx(ctx).Info().
					Int("step_id", step.StepID).
					Str("tool", step.APICall.Tool).
					Msg("step executed")
			}
		}

		result := evaluation.Evaluate(env.State(), goal)
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if archivePath != "" {
			f, err := os.Create(archivePath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := env.WriteArchive(f); err != nil {
				return err
			}
			log.Ctx(ctx).Info().Str("path", archivePath).Msg("wrote transcript archive")
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&archivePath, "archive", "", "write a snappy-compressed transcript archive to this path")
}
