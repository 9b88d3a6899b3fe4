package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/version"
)

// NewVersionCmd prints client build info and the API version.
func NewVersionCmd(f *Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and API version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := printJSON(version.GetInfo()); err != nil {
				return err
			}
			c, err := f.Client()
			if err != nil {
				return err
			}
			v, err := c.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("api version %s\n", v)
			return nil
		},
	}
}

// NewModelsCmd lists the models the API currently serves.
func NewModelsCmd(f *Factory) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models the API currently serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.Client()
			if err != nil {
				return err
			}
			models, err := c.AvailableModels(cmd.Context())
			if err != nil {
				return err
			}
			if long {
				return printJSON(models)
			}
			for _, m := range models {
				fmt.Println(m.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Print full model metadata as JSON")

	return cmd
}
