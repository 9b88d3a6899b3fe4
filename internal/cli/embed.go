package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/embedding"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/evaluation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

// NewEmbedCmd embeds a prompt.
func NewEmbedCmd(f *Factory) *cobra.Command {
	var modelName string
	var text string
	var layers string
	var pooling string

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			layerIdx, err := parseIDs(layers)
			if err != nil {
				return err
			}
			m, err := f.Model(modelName)
			if err != nil {
				return err
			}
			req := embedding.NewRequest(prompt.FromText(text), layerIdx, strings.Split(pooling, ","))
			resp, err := m.Embed(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "", "Model to embed with")
	cmd.Flags().StringVar(&text, "prompt", "", "Prompt text")
	cmd.Flags().StringVar(&layers, "layers", "-1", "Comma separated layer indices")
	cmd.Flags().StringVar(&pooling, "pooling", embedding.PoolingMean, "Comma separated pooling operations")

	return cmd
}

// NewEvaluateCmd scores an expected completion against a prompt.
func NewEvaluateCmd(f *Factory) *cobra.Command {
	var modelName string
	var text string
	var expected string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score an expected completion against a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Model(modelName)
			if err != nil {
				return err
			}
			resp, err := m.Evaluate(cmd.Context(), evaluation.Request{
				Prompt:             prompt.FromText(text),
				CompletionExpected: expected,
			})
			if err != nil {
				return err
			}
			return printJSON(resp.Result)
		},
	}

	cmd.Flags().StringVar(&modelName, "model", "", "Model to evaluate with")
	cmd.Flags().StringVar(&text, "prompt", "", "Prompt text")
	cmd.Flags().StringVar(&expected, "expected", "", "Expected completion")

	return cmd
}
