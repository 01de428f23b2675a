package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/app/store"
)

// storefront seed:summary — show what the in-memory seed data contains.
var seedSummaryCmd = &cobra.Command{
	Use:   "seed:summary",
	Short: "Summarize the seeded catalog and demo accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintf(w, "Products:\t%d\n", len(catalog.Products()))
		for _, c := range catalog.Categories() {
			n := len(catalog.Search(catalog.Query{Category: c.Name}))
			fmt.Fprintf(w, "  %s\t%d\n", c.Name, n)
		}

		accounts := store.NewAccounts().Users()
		fmt.Fprintf(w, "Accounts:\t%d\n", len(accounts))
		for _, u := range accounts {
			fmt.Fprintf(w, "  %s\t%s\n", u.Email, u.Role)
		}

		return w.Flush()
	},
}
