package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/tokenization"
)

// NewTokenizeCmd tokenizes a prompt with a model's tokenizer.
func NewTokenizeCmd(f *Factory) *cobra.Command {
	var modelName string
	var text string

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Model(modelName)
			if err != nil {
				return err
			}
			resp, err := m.Tokenize(cmd.Context(), tokenization.NewRequest(text))
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "", "Model whose tokenizer to use")
	cmd.Flags().StringVar(&text, "prompt", "", "Prompt text")

	return cmd
}

// NewDetokenizeCmd turns token ids back into text.
func NewDetokenizeCmd(f *Factory) *cobra.Command {
	var modelName string
	var ids string

	cmd := &cobra.Command{
		Use:   "detokenize",
		Short: "Turn token ids back into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenIDs, err := parseIDs(ids)
			if err != nil {
				return err
			}
			m, err := f.Model(modelName)
			if err != nil {
				return err
			}
			resp, err := m.Detokenize(cmd.Context(), tokenization.DetokenizationRequest{TokenIDs: tokenIDs})
			if err != nil {
				return err
			}
			fmt.Println(resp.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "", "Model whose tokenizer to use")
	cmd.Flags().StringVar(&ids, "ids", "", "Comma separated token ids")

	return cmd
}
