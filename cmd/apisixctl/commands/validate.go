package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command, which checks a payload
// against the gateway's schema without persisting anything.
func NewValidateCommand() *cobra.Command {
	var (
		file string
		data string
	)

	cmd := &cobra.Command{
		Use:   "validate RESOURCE",
		Short: "Validate a payload against the gateway schema for a resource",
		Long: `Validate a payload against the gateway schema for a resource
(e.g. routes, services, upstreams) without creating anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(file, data)
			if err != nil {
				return err
			}

			result, err := admin.ValidateResourceSchema(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}

			if len(result) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Payload is valid")

				return nil
			}

			return renderObject(result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "inline payload")

	return cmd
}
