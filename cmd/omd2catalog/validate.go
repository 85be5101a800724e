package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/OMD2Planner_Go/internal/catalog"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate [catalog-file]",
	Short: "Check a catalog file against the schema and load rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	c, err := catalog.NewLoader().Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d items\n", args[0], c.Len())
	for _, category := range domain.Categories() {
		fmt.Fprintf(out, "  %-8s %d\n", category, len(c.ItemsByCategory(category)))
	}
	return nil
}
