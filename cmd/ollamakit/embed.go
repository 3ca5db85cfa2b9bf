package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/ollamakit/api"
)

var embedCmd = &cobra.Command{
	Use:   "embed <model> <prompt>",
	Short: "Compute an embedding vector for a prompt",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Embeddings(cmd.Context(), &api.EmbeddingsRequest{
			Model:  args[0],
			Prompt: args[1],
		})
		if err != nil {
			return fmt.Errorf("embeddings: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(resp.Embedding)
	},
}
