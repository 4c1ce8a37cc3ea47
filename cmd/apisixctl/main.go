package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/s1nju/apisix-client/cmd/apisixctl/commands"
	"github.com/s1nju/apisix-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "apisixctl",
	Short: "APISIX Admin and Control API CLI",
	Long: `A command-line interface for the Apache APISIX Admin and Control APIs.

Manage routes, services, upstreams, consumers, certificates and plugins, and
inspect a running gateway through its Control API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.apisixctl/config.yml)")
	rootCmd.PersistentFlags().String("admin-endpoint", "", "Admin API endpoint (e.g. http://127.0.0.1:9180/apisix/admin)")
	rootCmd.PersistentFlags().String("control-endpoint", "", "Control API endpoint (e.g. http://127.0.0.1:9090/v1)")
	rootCmd.PersistentFlags().StringP("key", "k", "", "admin API key")
	rootCmd.PersistentFlags().String("output", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("skip-tls-verify", false, "skip TLS certificate verification (dev only)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("admin-endpoint", rootCmd.PersistentFlags().Lookup("admin-endpoint"))
	_ = viper.BindPFlag("control-endpoint", rootCmd.PersistentFlags().Lookup("control-endpoint"))
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("skip-tls-verify", rootCmd.PersistentFlags().Lookup("skip-tls-verify"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewRoutesCommand())
	rootCmd.AddCommand(commands.NewServicesCommand())
	rootCmd.AddCommand(commands.NewUpstreamsCommand())
	rootCmd.AddCommand(commands.NewConsumersCommand())
	rootCmd.AddCommand(commands.NewSSLCommand())
	rootCmd.AddCommand(commands.NewGlobalRulesCommand())
	rootCmd.AddCommand(commands.NewConsumerGroupsCommand())
	rootCmd.AddCommand(commands.NewPluginConfigsCommand())
	rootCmd.AddCommand(commands.NewStreamRoutesCommand())
	rootCmd.AddCommand(commands.NewProtosCommand())
	rootCmd.AddCommand(commands.NewPluginsCommand())
	rootCmd.AddCommand(commands.NewSecretsCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewControlCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".apisixctl")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("APISIXCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
