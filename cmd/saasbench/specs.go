package main

import (
	"encoding/json"
	"fmt"

	"github.com/mugiliam/saasbench/internal/policy"
	"github.com/mugiliam/saasbench/internal/tools"
	"github.com/spf13/cobra"
)

var showPolicy bool

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Print the tool parameter schemas presented to agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if showPolicy {
			fmt.Fprint(cmd.OutOrStdout(), policy.Document())
			return nil
		}
		out, err := json.MarshalIndent(tools.AllSpecs(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	specsCmd.Flags().BoolVar(&showPolicy, "policy", false, "print the workspace policy document instead")
}
