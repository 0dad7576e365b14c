package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hotel-admin/models"
)

// CreateCmd creates one record from --field name=value pairs.
func CreateCmd() *cobra.Command {
	var fieldFlags []string

	cmd := &cobra.Command{
		Use:   "create <kind>",
		Short: "Create a record from --field name=value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseKind(args[0])
			if err != nil {
				return err
			}

			fields := map[string]string{}
			for _, pair := range fieldFlags {
				name, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("--field wants name=value, got %q", pair)
				}
				fields[strings.TrimSpace(name)] = value
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields given; use --field name=value")
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			if err := a.registry.Create(cmd.Context(), kind, fields); err != nil {
				return err
			}
			fmt.Printf("created %s record\n", strings.TrimSuffix(string(kind), "s"))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fieldFlags, "field", nil, "form field as name=value (repeatable)")
	return cmd
}
