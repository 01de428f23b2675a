package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appgraphql "github.com/htoohtoo/storefront/app/graphql"
	"github.com/htoohtoo/storefront/app/routes"
	"github.com/htoohtoo/storefront/app/services"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/internal/server"
	"github.com/htoohtoo/storefront/pkg/router"
	"github.com/htoohtoo/storefront/pkg/snapshot"
	"github.com/htoohtoo/storefront/pkg/ws"
)

// storefront serve — start the HTTP and gRPC listeners.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// storefront route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := appgraphql.NewSchema()
		if err != nil {
			return err
		}

		// Wire throwaway stores; registration only records the table.
		ledger := store.NewLedger()
		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Manager:  store.NewManager(store.NewAccounts(), snapshot.NewMemory()),
			Ledger:   ledger,
			Checkout: services.NewCheckout(services.NewPaymentGateway(0), ledger),
			Hub:      ws.NewHub(),
			Schema:   schema,
		})

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Method, info.Path, info.Name)
		}
		return w.Flush()
	},
}
