package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known vehicles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd.OutOrStdout())
		},
	}
}

type vehicleListing struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (a *app) runList(w io.Writer) error {
	var rows []vehicleListing
	for _, v := range a.registry.List() {
		rows = append(rows, vehicleListing{Key: v.Key, Name: v.Name, Description: v.Description})
	}

	if a.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprintf(w, "%-22s %-30s %s\n", "Key", "Name", "Description")
	fmt.Fprintln(w, strings.Repeat("─", 90))
	for _, r := range rows {
		fmt.Fprintf(w, "%-22s %-30s %s\n", r.Key, r.Name, r.Description)
	}
	fmt.Fprintf(w, "\nTotal: %d vehicles\n", len(rows))
	return nil
}
