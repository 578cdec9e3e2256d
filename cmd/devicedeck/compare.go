package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/compare"
)

var errNothingToCompare = errors.New("no products to compare")

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var fixedSlots bool

	cmd := &cobra.Command{
		Use:   "compare <id>...",
		Short: "Print a side-by-side comparison of catalog products",
		Long: `Adds each product to a new compare list in argument order and prints the
comparison. The list holds at most four products; duplicates and products
past the fourth are reported on stderr and skipped.

Example:
  devicedeck compare pixel-8 oneplus-12r iphone-15-pro`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Logger.Sync() }()

			stderr := cmd.ErrOrStderr()
			for _, id := range args {
				p, ok := rt.Catalog.Lookup(id)
				if !ok {
					fmt.Fprintf(stderr, "unknown product %q, skipped\n", id)
					continue
				}
				outcome, err := rt.Compare.Add(p)
				switch {
				case errors.Is(err, compare.ErrCapacityExceeded):
					fmt.Fprintf(stderr, "compare list full (%d), skipped %s\n", compare.Capacity, id)
				case err != nil:
					return err
				case outcome == compare.OutcomeDuplicate:
					fmt.Fprintf(stderr, "%s is already in compare\n", id)
				}
			}

			set := rt.Compare.Snapshot()
			if set.Len() == 0 {
				return errNothingToCompare
			}
			if !set.CanCompare() {
				fmt.Fprintf(stderr, "only one product selected, add at least %d to compare\n", compare.MinComparable)
			}

			t := compare.BuildTable(set, compare.TableOptions{
				FixedSlots: fixedSlots,
				FormatPrice: func(p catalog.Price) string {
					return catalog.FormatPrice(p, rt.Config.CurrencySymbol)
				},
			})
			fmt.Fprintln(cmd.OutOrStdout(), renderComparison(t))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fixedSlots, "slots", false, "draw all four columns, including empty ones")
	return cmd
}

// renderComparison lays t out with one column per slot, a price row and
// then the assembled rows.
func renderComparison(t compare.Table) string {
	headers := make([]string, 0, len(t.Slots)+1)
	headers = append(headers, "")
	price := make([]string, 0, len(t.Slots)+1)
	price = append(price, "Price")
	image := make([]string, 0, len(t.Slots)+1)
	image = append(image, "Image")
	hasImage := false
	for _, s := range t.Slots {
		if !s.Filled {
			headers = append(headers, "(empty)")
			price = append(price, "")
			image = append(image, "")
			continue
		}
		headers = append(headers, s.Product.Name)
		price = append(price, s.Price)
		image = append(image, s.Product.Image)
		hasImage = hasImage || s.Product.Image != ""
	}

	rows := make([][]string, 0, len(t.Rows)+2)
	rows = append(rows, price)
	if hasImage {
		rows = append(rows, image)
	}
	labels := compare.RowLabels()
	for i, r := range t.Rows {
		row := make([]string, 0, len(r.Cells)+1)
		row = append(row, labels[i])
		row = append(row, r.Cells...)
		rows = append(rows, row)
	}
	return renderTable(headers, rows)
}
