package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/devicedeck/internal/specs"
)

func newSpecsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "specs <id>...",
		Short: "Print the derived specification sheet for product IDs",
		Long: `Specification sheets are derived from the product ID alone, so any ID
works, including ones missing from the catalog. Catalog names are shown
when known.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Logger.Sync() }()

			out := cmd.OutOrStdout()
			for i, id := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				title := id
				if p, ok := rt.Catalog.Lookup(id); ok {
					title = fmt.Sprintf("%s (%s)", id, p.Name)
				}
				fmt.Fprintln(out, title)

				bundle := specs.Derive(id)
				for _, f := range specs.Fields {
					fmt.Fprintf(out, "  %-10s %s\n", f.Label, f.Value(bundle))
				}
			}
			return nil
		},
	}
}
