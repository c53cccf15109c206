package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vibescore/internal/domain"
	"vibescore/internal/geo"
)

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance LAT1 LNG1 LAT2 LNG2",
		Short: "Print the great-circle distance between two points in meters",
		Args:  cobra.ExactArgs(4),

		// negative coordinates would otherwise parse as shorthand flags
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]float64
			for i, a := range args {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				v[i] = f
			}
			a := domain.Coordinate{Latitude: v[0], Longitude: v[1]}
			b := domain.Coordinate{Latitude: v[2], Longitude: v[3]}
			if !geo.ValidCoordinate(a) || !geo.ValidCoordinate(b) {
				return fmt.Errorf("coordinates out of range")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", geo.Distance(a, b))
			return nil
		},
	}
}
