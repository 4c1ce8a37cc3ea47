package commands

import (
	"context"

	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/spf13/cobra"
)

// createOnlyOps is the operation set shared by kinds without a partial-update
// surface on the gateway (stream routes, protos).
type createOnlyOps interface {
	List(ctx context.Context) (*apisix.ListResponse, error)
	Get(ctx context.Context, id string) (*apisix.Resource, error)
	Create(ctx context.Context, config apisix.Object, opts ...apisix.CallOption) (*apisix.Resource, error)
	CreateWithID(ctx context.Context, id string, config apisix.Object, opts ...apisix.CallOption) (*apisix.Resource, error)
	Delete(ctx context.Context, id string) (*apisix.DeleteResponse, error)
}

type createOnlySpec struct {
	use     string
	aliases []string
	short   string
	ops     func(apisix.AdminClient) createOnlyOps
}

// NewStreamRoutesCommand creates the stream routes command group.
func NewStreamRoutesCommand() *cobra.Command {
	return newCreateOnlyCommand(createOnlySpec{
		use:     "stream-routes",
		aliases: []string{"stream-route"},
		short:   "Manage TCP/UDP stream routes",
		ops: func(admin apisix.AdminClient) createOnlyOps {
			return admin.StreamRoutes()
		},
	})
}

func newCreateOnlyCommand(spec createOnlySpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
	}

	cmd.AddCommand(newCreateOnlyListCommand(spec))
	cmd.AddCommand(newCreateOnlyGetCommand(spec))
	cmd.AddCommand(newCreateOnlyCreateCommand(spec))
	cmd.AddCommand(newCreateOnlyDeleteCommand(spec))

	return cmd
}

func newCreateOnlyListCommand(spec createOnlySpec) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all " + spec.use,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			list, err := spec.ops(admin).List(cmd.Context())
			if err != nil {
				return err
			}

			return renderList(list)
		},
	}
}

func newCreateOnlyGetCommand(spec createOnlySpec) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get one of the " + spec.use + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			resource, err := spec.ops(admin).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderResource(resource)
		},
	}
}

func newCreateOnlyCreateCommand(spec createOnlySpec) *cobra.Command {
	var (
		id   string
		file string
		data string
		ttl  int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one of the " + spec.use,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			payload, err := loadPayload(file, data)
			if err != nil {
				return err
			}

			var opts []apisix.CallOption
			if ttl > 0 {
				opts = append(opts, apisix.WithTTL(ttl))
			}

			var resource *apisix.Resource
			if id != "" {
				resource, err = spec.ops(admin).CreateWithID(cmd.Context(), id, payload, opts...)
			} else {
				resource, err = spec.ops(admin).Create(cmd.Context(), payload, opts...)
			}

			if err != nil {
				return err
			}

			return renderResource(resource)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "create or replace under this id (PUT)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "inline payload")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "expire the resource after this many seconds")

	return cmd
}

func newCreateOnlyDeleteCommand(spec createOnlySpec) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of the " + spec.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := spec.ops(admin).Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	}
}
