package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vibescore/internal/catalog"
	"vibescore/internal/checkin"
	"vibescore/internal/domain"
)

func newVerifyCmd() *cobra.Command {
	var (
		path  string
		event string
		lat   float64
		lng   float64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Dry-run a check-in at a position against a catalog event",
		Long: `Dry-run a check-in at a position against a catalog event. Nothing is
stored. The command fails when the check-in would be rejected and prints
the reason, together with the distance when the position is out of range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := catalog.Load(path)
			if err != nil {
				return err
			}
			ev, ok := findEvent(events, event)
			if !ok {
				return fmt.Errorf("event %q not in %s", event, path)
			}

			tracker := checkin.NewTracker(checkin.NewMemoryStore())
			provider := checkin.StaticProvider{Latitude: lat, Longitude: lng}
			session := checkin.NewSession(uuid.New(), provider, tracker)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out, err := session.Select(ctx, ev)
			if errors.Is(err, checkin.ErrLocationRequired) {
				if _, err = session.RequestLocation(ctx); err == nil {
					out, err = session.Select(ctx, ev)
				}
			}

			w := cmd.OutOrStdout()
			if err != nil {
				var f *checkin.Failure
				if errors.As(err, &f) {
					fmt.Fprintf(w, "REJECTED %s: %s\n", f.Reason, err)
				}
				return err
			}
			if out.Result == nil {
				fmt.Fprintf(w, "CHECKED IN %s\n", ev.Name)
				return nil
			}
			fmt.Fprintf(w, "CHECKED IN %s: %.1f m from center, radius %.0f m\n",
				ev.Name, out.Result.DistanceM, out.Result.RadiusM)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", defaultCatalog, "catalog YAML file")
	cmd.Flags().StringVar(&event, "event", "", "event id or name")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func findEvent(events []domain.Event, key string) (domain.Event, bool) {
	for _, ev := range events {
		if ev.ID.String() == key || strings.EqualFold(ev.Name, key) {
			return ev, true
		}
	}
	return domain.Event{}, false
}
