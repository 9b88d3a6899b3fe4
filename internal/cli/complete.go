package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

// NewCompleteCmd samples a completion for a prompt, seeded with the
// configured sampling defaults.
func NewCompleteCmd(f *Factory) *cobra.Command {
	var modelName string
	var text string
	var maxTokens int

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Sample a completion for a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Model(modelName)
			if err != nil {
				return err
			}
			req, err := f.cfg.CompletionDefaults()
			if err != nil {
				return err
			}
			req.Prompt = prompt.FromText(text)
			if cmd.Flags().Changed("maximum-tokens") {
				req.MaximumTokens = maxTokens
			}

			resp, err := m.Complete(cmd.Context(), req)
			if err != nil {
				return err
			}
			for _, c := range resp.Completions {
				fmt.Println(c.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "", "Model to sample from")
	cmd.Flags().StringVar(&text, "prompt", "", "Prompt text")
	cmd.Flags().IntVar(&maxTokens, "maximum-tokens", 0, "Override the configured maximum tokens")

	return cmd
}
