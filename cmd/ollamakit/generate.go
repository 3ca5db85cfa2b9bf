package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/ollamakit/api"
)

var generateCmd = &cobra.Command{
	Use:   "generate <model> <prompt>",
	Short: "Generate a completion, streaming tokens as they arrive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		req := &api.GenerateRequest{Model: args[0], Prompt: args[1]}

		// The pull surface reads naturally here; the final record carries
		// the generation metrics.
		var final api.GenerateResponse
		for resp, err := range client.GenerateSeq(cmd.Context(), req) {
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			fmt.Print(resp.Response)
			if resp.Done {
				final = *resp
			}
		}
		fmt.Println()

		if final.EvalCount > 0 {
			fmt.Printf("\n%d tokens in %s (%.1f tokens/s)\n",
				final.EvalCount, final.EvalTime().Round(10*time.Millisecond), final.TokensPerSecond())
		}
		return nil
	},
}
