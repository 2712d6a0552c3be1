package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/agencysite/pkg/registry"
)

func newServicesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List service offerings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			reg, err := registry.FromConfig(cfg.Registry)
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE")
			for _, svc := range reg.ListServices() {
				fmt.Fprintf(tw, "%s\t%s\n", svc.ID, svc.Title)
			}
			return tw.Flush()
		},
	}
}
