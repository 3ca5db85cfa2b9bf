package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/ollamakit/api"
	"github.com/kbukum/ollamakit/ollama"
)

var chatInteractive bool

var chatCmd = &cobra.Command{
	Use:   "chat <model> [prompt]",
	Short: "Chat with a model, streaming the reply as it is generated",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if chatInteractive {
			return runInteractiveChat(cmd.Context(), client, args[0])
		}

		if len(args) < 2 {
			return fmt.Errorf("chat: a prompt is required unless --interactive is set")
		}

		req := &api.ChatRequest{
			Model:    args[0],
			Messages: []api.Message{{Role: "user", Content: args[1]}},
		}
		err = client.Chat(cmd.Context(), req, func(resp api.ChatResponse) error {
			fmt.Print(resp.Message.Content)
			return nil
		})
		if err != nil {
			return fmt.Errorf("chat: %w", err)
		}
		fmt.Println()
		return nil
	},
}

// runInteractiveChat keeps the conversation history and feeds it back on
// every turn.
func runInteractiveChat(ctx context.Context, client *ollama.Client, model string) error {
	scanner := bufio.NewScanner(os.Stdin)
	var history []api.Message

	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/bye" {
			return nil
		}

		history = append(history, api.Message{Role: "user", Content: line})

		var reply strings.Builder
		err := client.Chat(ctx, &api.ChatRequest{Model: model, Messages: history}, func(resp api.ChatResponse) error {
			fmt.Print(resp.Message.Content)
			reply.WriteString(resp.Message.Content)
			return nil
		})
		if err != nil {
			return fmt.Errorf("chat: %w", err)
		}
		fmt.Println()

		history = append(history, api.Message{Role: "assistant", Content: reply.String()})
	}
}

func init() {
	chatCmd.Flags().BoolVarP(&chatInteractive, "interactive", "i", false, "start an interactive session")
}
