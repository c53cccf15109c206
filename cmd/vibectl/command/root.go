// Package command holds the vibectl operator commands.
//
//	vibectl catalog [-f catalog/events.yaml]      # validate and list catalog
//	vibectl seed [-f catalog/events.yaml]         # upsert catalog into Postgres
//	vibectl distance LAT1 LNG1 LAT2 LNG2          # haversine distance in meters
//	vibectl verify --event ID|NAME --lat --lng    # dry-run a check-in against the catalog
package command

import (
	"github.com/spf13/cobra"
)

const defaultCatalog = "catalog/events.yaml"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vibectl",
		Short: "Operator tool for the vibescore check-in service",
		Long: `Operator tool for the vibescore check-in service.
It validates and seeds the event catalog and dry-runs check-ins
against it, using the same distance calculator and verifier as the
HTTP service.`,
		SilenceUsage: true,
	}

	root.AddCommand(newCatalogCmd(), newSeedCmd(), newDistanceCmd(), newVerifyCmd())
	return root
}
