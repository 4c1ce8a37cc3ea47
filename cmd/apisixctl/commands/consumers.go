package commands

import (
	"github.com/spf13/cobra"
)

// NewConsumersCommand creates the consumers command group. Consumers are
// keyed by username and carry a nested credentials collection, so they do
// not share the generic CRUD command set.
func NewConsumersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "consumers",
		Aliases: []string{"consumer"},
		Short:   "Manage consumers and their credentials",
	}

	cmd.AddCommand(newConsumersListCommand())
	cmd.AddCommand(newConsumersGetCommand())
	cmd.AddCommand(newConsumersCreateCommand())
	cmd.AddCommand(newConsumersUpdateCommand())
	cmd.AddCommand(newConsumersDeleteCommand())
	cmd.AddCommand(newConsumerCredentialsCommand())

	return cmd
}

func newConsumersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all consumers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			list, err := admin.Consumers().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderList(list)
		},
	}
}

func newConsumersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USERNAME",
		Short: "Get a consumer by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			consumer, err := admin.Consumers().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderResource(consumer)
		},
	}
}

func newConsumersCreateCommand() *cobra.Command {
	var file, data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a consumer (username travels in the payload)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(file, data)
			if err != nil {
				return err
			}

			consumer, err := admin.Consumers().Create(cmd.Context(), payload)
			if err != nil {
				return err
			}

			return renderResource(consumer)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "inline payload")

	return cmd
}

func newConsumersUpdateCommand() *cobra.Command {
	var file, data string

	cmd := &cobra.Command{
		Use:   "update USERNAME",
		Short: "Replace a consumer (full replace, not a merge)",
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

			consumer, err := admin.Consumers().Update(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}

			return renderResource(consumer)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "inline payload")

	return cmd
}

func newConsumersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete a consumer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := admin.Consumers().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	}
}

func newConsumerCredentialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credentials",
		Aliases: []string{"credential"},
		Short:   "Manage a consumer's credentials",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list USERNAME",
		Short: "List a consumer's credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			list, err := admin.Consumers().ListCredentials(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderList(list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get USERNAME CREDENTIAL_ID",
		Short: "Get one credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			credential, err := admin.Consumers().GetCredential(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResource(credential)
		},
	})

	var file, data string

	upsert := &cobra.Command{
		Use:   "upsert USERNAME CREDENTIAL_ID",
		Short: "Create or replace a credential",
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

			credential, err := admin.Consumers().UpsertCredential(cmd.Context(), args[0], args[1], payload)
			if err != nil {
				return err
			}

			return renderResource(credential)
		},
	}
	upsert.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	upsert.Flags().StringVarP(&data, "data", "d", "", "inline payload")
	cmd.AddCommand(upsert)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete USERNAME CREDENTIAL_ID",
		Short: "Delete a credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := admin.Consumers().DeleteCredential(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	})

	return cmd
}
