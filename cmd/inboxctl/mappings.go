// Mappings command: print the compiled mapping tables.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdaraban/inbox-go/pkg/model"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings [resource]",
	Short: "Show compiled resource mappings",
	Long: `Mappings prints the compiled mapping table for one resource, or for every
declared resource: property name, JSON key, cast type, and constant value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resources := model.Resources()
		if len(args) == 1 {
			if _, ok := model.MappingFor(args[0]); !ok {
				return fmt.Errorf("unknown resource %q", args[0])
			}
			resources = args[:1]
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()

		for _, resource := range resources {
			m, _ := model.MappingFor(resource)
			fmt.Fprintf(w, "%s\t(%d fields)\n", resource, m.Len())
			for _, f := range m.Fields() {
				if f.Const {
					fmt.Fprintf(w, "  %s\t%s\t%s\t= %v\n", f.Name, f.JSONKey, f.Type, f.Constant)
					continue
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\t\n", f.Name, f.JSONKey, f.Type)
			}
		}
		return nil
	},
}
