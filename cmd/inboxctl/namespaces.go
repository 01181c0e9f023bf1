// Namespaces command: list the namespaces visible to the access token.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List namespaces available to the configured token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return fmt.Errorf("build client: %w", err)
		}
		defer client.Close()

		namespaces, err := client.Namespaces(cmd.Context())
		if err != nil {
			return fmt.Errorf("list namespaces: %w", err)
		}

		docs := make([]map[string]any, 0, len(namespaces))
		for _, ns := range namespaces {
			docs = append(docs, ns.Raw())
		}
		output, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal namespaces: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}
