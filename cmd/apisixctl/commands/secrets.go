package commands

import (
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/spf13/cobra"
)

// NewSecretsCommand creates the secrets command group. Secrets are scoped by
// manager (e.g. "vault") and then by identifier.
func NewSecretsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "secrets",
		Aliases: []string{"secret"},
		Short:   "Manage secret-manager configurations",
	}

	cmd.AddCommand(newSecretsListCommand())
	cmd.AddCommand(newSecretsGetCommand())
	cmd.AddCommand(newSecretsCreateCommand())
	cmd.AddCommand(newSecretsUpdateCommand())
	cmd.AddCommand(newSecretsDeleteCommand())

	return cmd
}

func newSecretsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all secret configurations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			list, err := admin.Secrets().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderList(list)
		},
	}
}

func newSecretsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MANAGER ID",
		Short: "Get one secret configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			resource, err := admin.Secrets().Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResource(resource)
		},
	}
}

func newSecretsCreateCommand() *cobra.Command {
	var (
		file string
		data string
	)

	cmd := &cobra.Command{
		Use:   "create MANAGER",
		Short: "Create a secret configuration under a manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(file, data)
			if err != nil {
				return err
			}

			resource, err := admin.Secrets().Create(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}

			return renderResource(resource)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "inline payload")

	return cmd
}

func newSecretsUpdateCommand() *cobra.Command {
	var (
		file    string
		data    string
		subPath string
	)

	cmd := &cobra.Command{
		Use:   "update MANAGER ID",
		Short: "Partially update one secret configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(file, data)
			if err != nil {
				return err
			}

			var resource *apisix.Resource
			if subPath != "" {
				resource, err = admin.Secrets().UpdateWithPath(cmd.Context(), args[0], args[1], subPath, payload)
			} else {
				resource, err = admin.Secrets().Update(cmd.Context(), args[0], args[1], payload)
			}

			if err != nil {
				return err
			}

			return renderResource(resource)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "inline payload")
	cmd.Flags().StringVar(&subPath, "path", "", "restrict the update to this attribute path")

	return cmd
}

func newSecretsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete MANAGER ID",
		Short: "Delete one secret configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := admin.Secrets().Delete(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	}
}
