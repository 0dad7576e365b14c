package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// StatsCmd prints the two read-only aggregate views.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show available rooms per area and hotel room capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			overview, err := a.stats.Overview(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("Available rooms by area")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "area\tavailable rooms")
			for _, row := range overview.AvailableRoomsPerArea {
				fmt.Fprintf(w, "%s\t%d\n", row.Area, row.AvailableRooms)
			}
			w.Flush()

			fmt.Println("\nHotel room capacity")
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "hotel\tchain\trooms\tcapacity\tavg capacity")
			for _, row := range overview.HotelRoomCapacity {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\n",
					row.HotelAddress, row.HotelChain, row.TotalRooms, row.TotalCapacity, row.AverageRoomCapacity)
			}
			w.Flush()
			return nil
		},
	}
}
