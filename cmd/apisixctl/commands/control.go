package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/spf13/cobra"
)

// NewControlCommand creates the control command group: runtime health,
// diagnostics, and read-only views of the running configuration.
func NewControlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "control",
		Short: "Query the Control API",
	}

	cmd.AddCommand(newControlHealthcheckCommand())
	cmd.AddCommand(newControlSchemaCommand())
	cmd.AddCommand(newControlGCCommand())
	cmd.AddCommand(newControlViewCommand(controlViewSpec{
		use:   "routes",
		short: "running routes",
		list:  apisix.ControlClient.ListRoutes,
		get:   apisix.ControlClient.GetRoute,
	}))
	cmd.AddCommand(newControlViewCommand(controlViewSpec{
		use:   "services",
		short: "running services",
		list:  apisix.ControlClient.ListServices,
		get:   apisix.ControlClient.GetService,
	}))
	cmd.AddCommand(newControlViewCommand(controlViewSpec{
		use:   "upstreams",
		short: "running upstreams",
		list:  apisix.ControlClient.ListUpstreams,
		get:   apisix.ControlClient.GetUpstream,
	}))
	cmd.AddCommand(newControlViewCommand(controlViewSpec{
		use:   "plugin-metadata",
		short: "running plugin metadata",
		list:  apisix.ControlClient.ListPluginMetadata,
		get:   apisix.ControlClient.GetPluginMetadata,
	}))
	cmd.AddCommand(newControlReloadPluginsCommand())
	cmd.AddCommand(newControlDiscoveryCommand())

	return cmd
}

func newControlHealthcheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Report upstream health probe states",
		RunE: func(cmd *cobra.Command, _ []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			statuses, err := control.Healthcheck(cmd.Context())
			if err != nil {
				return err
			}

			done, err := renderOutput(statuses)
			if done || err != nil {
				return err
			}

			if len(statuses) == 0 {
				fmt.Println("No health checks configured")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Upstream", "Type", "Node", "Status")

			for _, status := range statuses {
				for _, node := range status.Nodes {
					_ = table.Append(status.Name, status.Type,
						fmt.Sprintf("%s:%d", node.IP, node.Port), node.Status)
				}
			}

			return table.Render()
		},
	}
}

func newControlSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Fetch the gateway's full configuration schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			schema, err := control.Schema(cmd.Context())
			if err != nil {
				return err
			}

			return renderObject(schema)
		},
	}
}

func newControlGCCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Trigger a Lua garbage collection cycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			if err := control.TriggerGC(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Garbage collection triggered")

			return nil
		},
	}
}

// controlViewSpec describes one read-only view of the running configuration.
type controlViewSpec struct {
	use   string
	short string
	list  func(apisix.ControlClient, context.Context) ([]apisix.Object, error)
	get   func(apisix.ControlClient, context.Context, string) (apisix.Object, error)
}

func newControlViewCommand(spec controlViewSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: "Inspect " + spec.short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List " + spec.short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			objects, err := spec.list(control, cmd.Context())
			if err != nil {
				return err
			}

			return renderObjectList(objects)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Get one of the " + spec.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			object, err := spec.get(control, cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderObject(object)
		},
	})

	return cmd
}

func newControlReloadPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reload-plugins",
		Short: "Hot-reload plugins through the control surface",
		RunE: func(cmd *cobra.Command, _ []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			if err := control.ReloadPlugins(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Plugins reloaded")

			return nil
		},
	}
}

func newControlDiscoveryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discovery",
		Short: "Inspect service discovery state",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump SERVICE",
		Short: "Dump a discovery service's in-memory state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			dump, err := control.GetDiscoveryDump(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderObject(dump)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dump-file SERVICE",
		Short: "Show a discovery service's file-backed dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			control, err := newControlClient()
			if err != nil {
				return err
			}

			dump, err := control.ShowDiscoveryDumpFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderObject(dump)
		},
	})

	return cmd
}

// renderObjectList prints a list of free-form objects, keying each table row
// by the object's id when present.
func renderObjectList(objects []apisix.Object) error {
	done, err := renderOutput(objects)
	if done || err != nil {
		return err
	}

	if len(objects) == 0 {
		fmt.Println("No resources found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Configuration")

	for _, object := range objects {
		_ = table.Append(formatValue(object["id"]), formatValue(object))
	}

	return table.Render()
}
