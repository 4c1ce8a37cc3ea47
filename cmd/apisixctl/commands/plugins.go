package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s1nju/apisix-client/pkg/apisix"
)

// NewPluginsCommand creates the plugins command group: the read-only plugin
// catalog, per-plugin metadata, and the hot-reload trigger.
func NewPluginsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plugins",
		Aliases: []string{"plugin"},
		Short:   "Inspect the plugin catalog and manage plugin metadata",
	}

	cmd.AddCommand(newPluginsListCommand())
	cmd.AddCommand(newPluginsSchemaCommand())
	cmd.AddCommand(newPluginsPropertiesCommand())
	cmd.AddCommand(newPluginsReloadCommand())
	cmd.AddCommand(newPluginMetadataCommand())

	return cmd
}

func newPluginsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names of all loaded plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			names, err := admin.Plugins().List(cmd.Context())
			if err != nil {
				return err
			}

			done, err := renderOutput(names)
			if done || err != nil {
				return err
			}

			for _, name := range names {
				fmt.Println(name)
			}

			return nil
		},
	}
}

func newPluginsSchemaCommand() *cobra.Command {
	var subsystem string

	cmd := &cobra.Command{
		Use:   "schema NAME",
		Short: "Show the schema of one plugin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			schema, err := admin.Plugins().GetProperties(cmd.Context(), args[0], subsystem)
			if err != nil {
				return err
			}

			return renderObject(schema)
		},
	}

	cmd.Flags().StringVar(&subsystem, "subsystem", "", "scope to a subsystem (http or stream)")

	return cmd
}

func newPluginsPropertiesCommand() *cobra.Command {
	var subsystem string

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Show the properties of every plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			var props apisix.Object

			switch subsystem {
			case "http":
				props, err = admin.Plugins().HTTPProperties(cmd.Context())
			case "stream":
				props, err = admin.Plugins().StreamProperties(cmd.Context())
			default:
				props, err = admin.Plugins().Properties(cmd.Context())
			}

			if err != nil {
				return err
			}

			return renderObject(props)
		},
	}

	cmd.Flags().StringVar(&subsystem, "subsystem", "", "scope to a subsystem (http or stream)")

	return cmd
}

func newPluginsReloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Hot-reload plugins after code changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			if err := admin.Plugins().Reload(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("Plugins reloaded")

			return nil
		},
	}
}

func newPluginMetadataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Manage per-plugin metadata",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Get a plugin's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			metadata, err := admin.PluginMetadata().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderResource(metadata)
		},
	})

	var file, data string

	set := &cobra.Command{
		Use:   "set NAME",
		Short: "Set a plugin's metadata",
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

			metadata, err := admin.PluginMetadata().Set(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}

			return renderResource(metadata)
		},
	}
	set.Flags().StringVarP(&file, "file", "f", "", "payload file (JSON or YAML, - for stdin)")
	set.Flags().StringVarP(&data, "data", "d", "", "inline payload")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a plugin's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminClient()
			if err != nil {
				return err
			}

			deleted, err := admin.PluginMetadata().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderDelete(deleted)
		},
	})

	return cmd
}
