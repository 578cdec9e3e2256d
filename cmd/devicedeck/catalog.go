package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/devicedeck/internal/app"
	"github.com/five82/devicedeck/internal/catalog"
)

var errFeedReadOnly = errors.New("catalog comes from a feed and cannot be edited")

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit the catalog file",
		Long: `Edits rewrite the file named by catalog_path. The built-in catalog and
feeds are read-only.`,
	}
	cmd.AddCommand(
		newCatalogListsCmd(opts),
		newCatalogAddCmd(opts),
		newCatalogRemoveCmd(opts),
	)
	return cmd
}

func newCatalogListsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the catalog lists and their sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Logger.Sync() }()

			lists := rt.Catalog.Lists()
			rows := make([][]string, 0, len(lists))
			for _, l := range lists {
				rows = append(rows, []string{l.Name, humanize.Comma(int64(len(l.Products)))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"List", "Products"}, rows))
			return nil
		},
	}
}

func newCatalogAddCmd(opts *rootOptions) *cobra.Command {
	var (
		listName string
		id       string
		name     string
		price    string
		category string
		image    string
		score    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to a catalog list",
		Long: `Adds a product to the named list and saves the catalog file. Without --id a
random ID is generated. --price accepts formatted text such as "₹75,999";
only its digits are kept.

Example:
  devicedeck catalog add --list upcoming --name "Pixel 10" --price 79999 --category mobile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, file, err := editableCatalog(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Logger.Sync() }()

			p := catalog.Product{
				ID:       strings.TrimSpace(id),
				Name:     strings.TrimSpace(name),
				Price:    catalog.ParsePrice(price),
				Image:    strings.TrimSpace(image),
				Category: catalog.Category(strings.ToLower(strings.TrimSpace(category))),
			}
			if cmd.Flags().Changed("score") {
				p.SpecScore = catalog.Score(score)
			}

			added, err := rt.Catalog.Add(listName, p)
			if err != nil {
				return err
			}
			if err := file.Save(rt.Catalog.Lists()); err != nil {
				return err
			}
			rt.Logger.Info("catalog product added",
				zap.String("id", added.ID),
				zap.String("list", listName),
				zap.String("file", file.Path),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) to %s\n", added.Name, added.ID, listName)
			return nil
		},
	}

	cmd.Flags().StringVar(&listName, "list", "", "list to add the product to")
	cmd.Flags().StringVar(&id, "id", "", "product ID (default: generated)")
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "", "price, digits only are kept")
	cmd.Flags().StringVar(&category, "category", "", "mobile, laptop, tablet or tv")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	cmd.Flags().IntVar(&score, "score", 0, "spec score 0-100 (default: none)")
	_ = cmd.MarkFlagRequired("list")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newCatalogRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Remove products from every catalog list",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, file, err := editableCatalog(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Logger.Sync() }()

			var missing []string
			removed := 0
			for _, id := range args {
				if rt.Catalog.Delete(id) {
					removed++
				} else {
					missing = append(missing, id)
				}
			}
			for _, id := range missing {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown product %q\n", id)
			}
			if removed == 0 {
				return fmt.Errorf("nothing removed")
			}
			if err := file.Save(rt.Catalog.Lists()); err != nil {
				return err
			}
			rt.Logger.Info("catalog products removed", zap.Int("count", removed), zap.String("file", file.Path))
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", pluralProducts(removed))
			return nil
		},
	}
}

// editableCatalog sets up a runtime whose catalog is backed by a writable
// file.
func editableCatalog(cmd *cobra.Command, opts *rootOptions) (*app.Runtime, catalog.FileSource, error) {
	rt, err := opts.setup(cmd)
	if err != nil {
		return nil, catalog.FileSource{}, err
	}
	if rt.Config.UsesFeed() {
		_ = rt.Logger.Sync()
		return nil, catalog.FileSource{}, errFeedReadOnly
	}
	if rt.Config.CatalogPath == "" {
		_ = rt.Logger.Sync()
		return nil, catalog.FileSource{}, catalog.ErrReadOnlyCatalog
	}
	return rt, catalog.FileSource{Path: rt.Config.CatalogPath}, nil
}

func pluralProducts(n int) string {
	if n == 1 {
		return "1 product"
	}
	return strconv.Itoa(n) + " products"
}
