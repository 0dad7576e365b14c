package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hotel-admin/dto"
)

// SearchCmd runs the room-availability search with flag-driven criteria.
func SearchCmd() *cobra.Command {
	var (
		start, end, area, chain, view string
		capacity, rating              int
		minPrice, maxPrice            float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search available rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := dto.RoomSearchRequest{
				StartDate:   start,
				EndDate:     end,
				Capacity:    capacity,
				Area:        area,
				HotelChain:  chain,
				HotelRating: rating,
				ViewType:    view,
			}
			if cmd.Flags().Changed("min-price") {
				filter.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				filter.MaxPrice = &maxPrice
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			rooms, err := a.search.SearchRooms(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "roomnumber\thoteladdress\tprice\tcapacity\tviewtype\textendable")
			for _, room := range rooms {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%s\t%t\n",
					room.RoomNumber, room.HotelAddress, room.Price, room.Capacity, room.ViewType, room.Extendable)
			}
			w.Flush()
			fmt.Printf("%d rooms\n", len(rooms))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "check-in date (ISO-8601 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "check-out date (ISO-8601 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "minimum room capacity")
	cmd.Flags().StringVar(&area, "area", "", "city or area substring")
	cmd.Flags().StringVar(&chain, "chain", "", "hotel chain name")
	cmd.Flags().IntVar(&rating, "rating", 0, "hotel rating 1-5")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().StringVar(&view, "view", "", "view type, e.g. \"sea view\"")
	return cmd
}
