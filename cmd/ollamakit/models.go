package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/ollamakit/api"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List models available on the server",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list models: %w", err)
		}

		if len(resp.Models) == 0 {
			fmt.Println("No models installed. Use 'ollamakit pull <model>' to download one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tFAMILY\tPARAMETERS\tMODIFIED")
		for _, m := range resp.Models {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.Name,
				formatSize(m.Size),
				m.Details.Family,
				m.Details.ParameterSize,
				m.ModifiedAt.Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <model>",
	Short: "Show detailed information about a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Show(cmd.Context(), &api.ShowRequest{Model: args[0]})
		if err != nil {
			return fmt.Errorf("show model: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "family\t%s\n", resp.Details.Family)
		fmt.Fprintf(w, "format\t%s\n", resp.Details.Format)
		fmt.Fprintf(w, "parameters\t%s\n", resp.Details.ParameterSize)
		fmt.Fprintf(w, "quantization\t%s\n", resp.Details.QuantizationLevel)
		if resp.Template != "" {
			fmt.Fprintf(w, "template\t%s\n", resp.Template)
		}
		if resp.Parameters != "" {
			fmt.Fprintf(w, "options\t%s\n", resp.Parameters)
		}
		return w.Flush()
	},
}

var pullInsecure bool

var pullCmd = &cobra.Command{
	Use:   "pull <model>",
	Short: "Download a model from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		fmt.Printf("pulling %s...\n", args[0])
		resp, err := client.Pull(cmd.Context(), &api.PullRequest{
			Model:    args[0],
			Insecure: pullInsecure,
		})
		if err != nil {
			return fmt.Errorf("pull model: %w", err)
		}

		fmt.Println(resp.Status)
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:     "copy <source> <destination>",
	Aliases: []string{"cp"},
	Short:   "Copy a model under a new name",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Copy(cmd.Context(), &api.CopyRequest{Source: args[0], Destination: args[1]}); err != nil {
			return fmt.Errorf("copy model: %w", err)
		}
		fmt.Printf("copied %s to %s\n", args[0], args[1])
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <model>",
	Aliases: []string{"delete"},
	Short:   "Remove a model from the server",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Delete(cmd.Context(), &api.DeleteRequest{Model: args[0]}); err != nil {
			return fmt.Errorf("delete model: %w", err)
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	pullCmd.Flags().BoolVar(&pullInsecure, "insecure", false, "allow insecure registry connections")
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
