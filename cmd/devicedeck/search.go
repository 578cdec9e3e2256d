package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/devicedeck/internal/catalog"
)

var errInvertedRange = errors.New("--min is greater than --max")

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		minPrice int64
		maxPrice int64
		listName string
	)

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search every catalog list by name and price",
		Long: `Prints the products whose name contains the keyword (ignoring case) and
whose price lies within the inclusive --min/--max bounds. Without a keyword
every product matches.

Example:
  devicedeck search pixel --max 80000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := catalog.Criteria{}
			if len(args) == 1 {
				criteria.Keyword = strings.TrimSpace(args[0])
			}
			if cmd.Flags().Changed("min") {
				criteria.MinPrice = catalog.Bound(catalog.Price(minPrice))
			}
			if cmd.Flags().Changed("max") {
				criteria.MaxPrice = catalog.Bound(catalog.Price(maxPrice))
			}
			if criteria.MinPrice != nil && criteria.MaxPrice != nil && *criteria.MinPrice > *criteria.MaxPrice {
				return errInvertedRange
			}

			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Logger.Sync() }()

			results := rt.Catalog.Search(criteria)
			if listName != "" {
				list, ok := rt.Catalog.List(listName)
				if !ok {
					return fmt.Errorf("%w: %q", catalog.ErrUnknownList, listName)
				}
				results = inList(results, list)
			}

			if len(results) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no products match")
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, p := range results {
				rows = append(rows, []string{
					p.ID,
					p.Name,
					p.Category.Label(),
					catalog.FormatPrice(p.Price, rt.Config.CurrencySymbol),
					scoreText(p),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Category", "Price", "Score"}, rows))
			fmt.Fprintln(cmd.OutOrStdout(), pluralProducts(len(results))+" found")
			return nil
		},
	}

	cmd.Flags().Int64Var(&minPrice, "min", 0, "minimum price, inclusive")
	cmd.Flags().Int64Var(&maxPrice, "max", 0, "maximum price, inclusive")
	cmd.Flags().StringVar(&listName, "list", "", "only show products from this list")
	return cmd
}

// inList keeps the products that belong to list, preserving order.
func inList(products []catalog.Product, list catalog.List) []catalog.Product {
	ids := make(map[string]struct{}, len(list.Products))
	for _, p := range list.Products {
		ids[p.ID] = struct{}{}
	}
	out := products[:0:0]
	for _, p := range products {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
