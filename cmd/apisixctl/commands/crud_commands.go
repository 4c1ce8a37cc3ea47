package commands

import (
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/spf13/cobra"
)

// resourceSpec describes one Admin API collection for the generic CRUD
// command set. Full-CRUD kinds (routes, services, upstreams) set ops; kinds
// without server-assigned ids (global rules, consumer groups, plugin
// configs) set keyedOps instead, which drops POST create.
type resourceSpec struct {
	use      string
	aliases  []string
	short    string
	ops      func(apisix.AdminClient) apisix.ResourceOps
	keyedOps func(apisix.AdminClient) apisix.KeyedResourceOps
}

func (s resourceSpec) keyed(admin apisix.AdminClient) apisix.KeyedResourceOps {
	if s.keyedOps != nil {
		return s.keyedOps(admin)
	}

	return s.ops(admin)
}

// newResourceCommand builds the list/get/create/update/delete command group
// for one resource collection.
func newResourceCommand(spec resourceSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
	}

	cmd.AddCommand(newResourceListCommand(spec))
	cmd.AddCommand(newResourceGetCommand(spec))
	cmd.AddCommand(newResourceCreateCommand(spec))
	cmd.AddCommand(newResourceUpdateCommand(spec))
	cmd.AddCommand(newResourceDeleteCommand(spec))

	return cmd
}

func newResourceListCommand(spec resourceSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all " + spec.use,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			list, err := spec.keyed(admin).List(cmd.Context())
			if err != nil {
				return err
			}

			return renderList(list)
		},
	}
}

func newResourceGetCommand(spec resourceSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get one of the " + spec.use + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			resource, err := spec.keyed(admin).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderResource(resource)
		},
	}
}

func newResourceCreateCommand(spec resourceSpec) *cobra.Command {
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

			switch {
			case id != "":
				resource, err = spec.keyed(admin).CreateWithID(cmd.Context(), id, payload, opts...)
			case spec.ops != nil:
				resource, err = spec.ops(admin).Create(cmd.Context(), payload, opts...)
			default:
				return cmd.Help()
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

	if spec.ops == nil {
		_ = cmd.MarkFlagRequired("id")
	}

	return cmd
}

func newResourceUpdateCommand(spec resourceSpec) *cobra.Command {
	var (
		file    string
		data    string
		subPath string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Partially update one of the " + spec.use,
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

			var resource *apisix.Resource
			if subPath != "" {
				resource, err = spec.keyed(admin).UpdateWithPath(cmd.Context(), args[0], subPath, payload)
			} else {
				resource, err = spec.keyed(admin).Update(cmd.Context(), args[0], payload)
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

func newResourceDeleteCommand(spec resourceSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of the " + spec.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := spec.keyed(admin).Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	}
}

// NewRoutesCommand creates the routes command group.
func NewRoutesCommand() *cobra.Command {
	return newResourceCommand(resourceSpec{
		use:     "routes",
		aliases: []string{"route"},
		short:   "Manage routes",
		ops: func(admin apisix.AdminClient) apisix.ResourceOps {
			return admin.Routes()
		},
	})
}

// NewServicesCommand creates the services command group.
func NewServicesCommand() *cobra.Command {
	return newResourceCommand(resourceSpec{
		use:     "services",
		aliases: []string{"service"},
		short:   "Manage services",
		ops: func(admin apisix.AdminClient) apisix.ResourceOps {
			return admin.Services()
		},
	})
}

// NewUpstreamsCommand creates the upstreams command group.
func NewUpstreamsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec{
		use:     "upstreams",
		aliases: []string{"upstream"},
		short:   "Manage upstreams",
		ops: func(admin apisix.AdminClient) apisix.ResourceOps {
			return admin.Upstreams()
		},
	})
}

// NewGlobalRulesCommand creates the global rules command group.
func NewGlobalRulesCommand() *cobra.Command {
	return newResourceCommand(resourceSpec{
		use:     "global-rules",
		aliases: []string{"global-rule"},
		short:   "Manage global plugin rules",
		keyedOps: func(admin apisix.AdminClient) apisix.KeyedResourceOps {
			return admin.GlobalRules()
		},
	})
}

// NewConsumerGroupsCommand creates the consumer groups command group.
func NewConsumerGroupsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec{
		use:     "consumer-groups",
		aliases: []string{"consumer-group"},
		short:   "Manage consumer groups",
		keyedOps: func(admin apisix.AdminClient) apisix.KeyedResourceOps {
			return admin.ConsumerGroups()
		},
	})
}

// NewPluginConfigsCommand creates the plugin configs command group.
func NewPluginConfigsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec{
		use:     "plugin-configs",
		aliases: []string{"plugin-config"},
		short:   "Manage plugin configs",
		keyedOps: func(admin apisix.AdminClient) apisix.KeyedResourceOps {
			return admin.PluginConfigs()
		},
	})
}
