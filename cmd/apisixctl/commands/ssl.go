package commands

import (
	"github.com/spf13/cobra"
)

// NewSSLCommand creates the ssl command group. Certificate updates are full
// replaces, so there is no --path flag here.
func NewSSLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssl",
		Short: "Manage TLS certificates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all certificates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			list, err := admin.SSL().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderList(list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Get a certificate by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			cert, err := admin.SSL().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderResource(cert)
		},
	})

	var createFile, createData string

	create := &cobra.Command{
		Use:   "create",
		Short: "Upload a certificate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(createFile, createData)
			if err != nil {
				return err
			}

			cert, err := admin.SSL().Create(cmd.Context(), payload)
			if err != nil {
				return err
			}

			return renderResource(cert)
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	create.Flags().StringVarP(&createData, "data", "d", "", "inline payload")
	cmd.AddCommand(create)

	var updateFile, updateData string

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(updateFile, updateData)
			if err != nil {
				return err
			}

			cert, err := admin.SSL().Update(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}

			return renderResource(cert)
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	update.Flags().StringVarP(&updateData, "data", "d", "", "inline payload")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := admin.SSL().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	})

	return cmd
}
