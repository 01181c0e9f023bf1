// Version command for the inboxctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdaraban/inbox-go/pkg/inbox"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inboxctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("inboxctl", inbox.Version)
	},
}
