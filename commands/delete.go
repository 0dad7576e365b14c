package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hotel-admin/models"
)

// DeleteCmd deletes one record after an interactive confirmation.
// Rooms take the hotel address as a second argument.
func DeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <kind> <id> [hoteladdress]",
		Short: "Delete a record (asks for confirmation)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseKind(args[0])
			if err != nil {
				return err
			}
			key := models.Key{ID: args[1]}
			if len(args) == 3 {
				key.HotelAddress = args[2]
			}

			if !yes && !confirmPrompt(fmt.Sprintf("Delete %s %q?", strings.TrimSuffix(string(kind), "s"), key.ID)) {
				fmt.Println("aborted")
				return nil
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			performed, err := a.registry.Delete(cmd.Context(), kind, key, true)
			if err != nil {
				return err
			}
			if !performed {
				fmt.Println("delete skipped: incomplete room key")
				return nil
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func confirmPrompt(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
