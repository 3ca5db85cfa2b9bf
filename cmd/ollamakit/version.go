package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/ollamakit/version"
)

var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Check that the server is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Heartbeat(cmd.Context()); err != nil {
			return fmt.Errorf("server unreachable: %w", err)
		}
		fmt.Printf("%s is up\n", client.BaseURL())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ollamakit version",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Get())
	},
}
