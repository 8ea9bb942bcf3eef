package cmd

import (
	"harmonic/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Harmonic HTTP server",
	Long:  `Start the Harmonic HTTP server, serving the catalog, favorites and account pages.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
