package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hotel-admin/models"
)

// ListCmd prints one kind's records as a table, sorted by key field.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of one entity kind",
		Long:  "Kinds: " + kindNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseKind(args[0])
			if err != nil {
				return err
			}
			a, err := buildApp()
			if err != nil {
				return err
			}
			schema, err := models.SchemaFor(kind)
			if err != nil {
				return err
			}

			records := a.registry.List(cmd.Context(), kind)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join(schema.Columns, "\t"))
			for _, rec := range records {
				fields := models.FieldMap(rec)
				row := make([]string, 0, len(schema.Columns))
				for _, col := range schema.Columns {
					row = append(row, fmt.Sprintf("%v", fields[col]))
				}
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			w.Flush()
			fmt.Printf("%d %s\n", len(records), kind)
			return nil
		},
	}
}

func kindNames() string {
	names := make([]string, 0, 6)
	for _, k := range models.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
