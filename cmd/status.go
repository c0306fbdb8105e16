package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show when the published data was last regenerated",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient(cmd)

		md, err := client.FetchMetadata()
		if err != nil {
			return fmt.Errorf("failed to fetch metadata: %w", err)
		}

		fmt.Printf("Last updated:  %s\n", md.LastUpdated)
		fmt.Printf("Groups:        %s\n", strings.Join(md.Groups, ", "))
		fmt.Printf("Total entries: %d\n", md.TotalEntries)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
