package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/s1nju/apisix-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// configKeys are the settings apisixctl persists.
var configKeys = []string{"admin-endpoint", "control-endpoint", "key", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage apisixctl configuration",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [KEY]",
		Short: "Show the resolved configuration, or one key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				if !isConfigKey(args[0]) {
					return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
				}

				fmt.Println(renderConfigValue(args[0]))

				return nil
			}

			for _, key := range configKeys {
				fmt.Printf("%s: %s\n", key, renderConfigValue(key))
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Persist a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if !isConfigKey(args[0]) {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			viper.Set(args[0], args[1])

			return writeConfigFile()
		},
	}
}

// newConfigSetKeyCommand prompts for the admin key without echoing it, so it
// never lands in shell history.
func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Prompt for the admin API key and persist it",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(os.Stderr, "Admin API key: ")

			key, err := term.ReadPassword(int(os.Stdin.Fd()))

			fmt.Fprintln(os.Stderr)

			if err != nil {
				return fmt.Errorf("reading key: %w", err)
			}

			viper.Set("key", strings.TrimSpace(string(key)))

			return writeConfigFile()
		},
	}
}

func isConfigKey(key string) bool {
	for _, known := range configKeys {
		if key == known {
			return true
		}
	}

	return false
}

func renderConfigValue(key string) string {
	value := viper.GetString(key)
	if value == "" {
		return "(unset)"
	}

	if key == "key" {
		return "***"
	}

	return value
}

// writeConfigFile persists the known keys to the active config file,
// creating ~/.apisixctl/config.yml when none is in use yet.
func writeConfigFile() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}

		dir := filepath.Join(home, ".apisixctl")
		if err := os.MkdirAll(dir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		path = filepath.Join(dir, "config.yml")
	}

	settings := make(map[string]string, len(configKeys))

	for _, key := range configKeys {
		if value := viper.GetString(key); value != "" {
			settings[key] = value
		}
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, content, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Wrote", path)

	return nil
}
