package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hotel-admin/utils"
)

// ConvertCmd converts one booking to a renting. The card number is
// validated locally; only the masked label is sent to the backend.
func ConvertCmd() *cobra.Command {
	var card string
	var yes bool

	cmd := &cobra.Command{
		Use:   "convert <bookingid>",
		Short: "Convert a booking to a renting with payment capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := strconv.Atoi(args[0])
			if err != nil || bookingID <= 0 {
				return fmt.Errorf("booking id must be a positive integer, got %q", args[0])
			}
			if !utils.ValidCardNumber(card) {
				return fmt.Errorf("card number must have exactly 16 digits")
			}

			if !yes && !confirmPrompt(fmt.Sprintf("Convert booking %d using card %s?", bookingID, utils.PaymentLabel(card))) {
				fmt.Println("aborted")
				return nil
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			renting, err := a.conversion.ConvertBooking(cmd.Context(), bookingID, card)
			if err != nil {
				return err
			}
			fmt.Printf("renting %d created for booking %d (%s)\n",
				renting.RentingID, renting.BookingID, renting.PaymentInformation)
			return nil
		},
	}

	cmd.Flags().StringVar(&card, "card", "", "16-digit card number (separators allowed)")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	cmd.MarkFlagRequired("card")
	return cmd
}
