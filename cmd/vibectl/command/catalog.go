package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vibescore/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate the event catalog and list its events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := catalog.Load(path)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tLAT\tLNG\tRADIUS_M")
			for _, ev := range events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%.4f\t%.0f\n",
					ev.ID, ev.Name, ev.Status, ev.Coordinates.Latitude, ev.Coordinates.Longitude, ev.RadiusM)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", defaultCatalog, "catalog YAML file")
	return cmd
}
