// Package commands implements the apisixctl subcommands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/s1nju/apisix-client/internal/constants"
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/s1nju/apisix-client/pkg/apisixclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultJSONIndent = "  "

// Common static errors used throughout the commands package.
var (
	ErrAdminEndpointRequired   = errors.New("admin endpoint is required (use --admin-endpoint or APISIXCTL_ADMIN_ENDPOINT)")
	ErrControlEndpointRequired = errors.New("control endpoint is required (use --control-endpoint or APISIXCTL_CONTROL_ENDPOINT)")
	ErrPayloadRequired         = errors.New("a payload is required (use --file or --data)")
	ErrPayloadNotAnObject      = errors.New("payload must be a JSON or YAML object")
	ErrUnknownConfigKey        = errors.New("unknown config key")
)

// newAdminClient builds an Admin API client from the resolved configuration.
func newAdminClient() (apisix.AdminClient, error) {
	endpoint := viper.GetString("admin-endpoint")
	if endpoint == "" {
		return nil, ErrAdminEndpointRequired
	}

	return apisixclient.NewAdmin(&apisix.Config{
		Endpoint:      endpoint,
		APIKey:        viper.GetString("key"),
		Debug:         viper.GetBool("verbose"),
		SkipTLSVerify: viper.GetBool("skip-tls-verify"),
	})
}

// newControlClient builds a Control API client from the resolved
// configuration.
func newControlClient() (apisix.ControlClient, error) {
	endpoint := viper.GetString("control-endpoint")
	if endpoint == "" {
		return nil, ErrControlEndpointRequired
	}

	return apisixclient.NewControl(&apisix.Config{
		Endpoint:      endpoint,
		APIKey:        viper.GetString("key"),
		Debug:         viper.GetBool("verbose"),
		SkipTLSVerify: viper.GetBool("skip-tls-verify"),
	})
}

// loadPayload reads a resource configuration from a file, an inline string,
// or stdin ("-"), accepting JSON first and YAML as a fallback.
func loadPayload(file, data string) (apisix.Object, error) {
	var raw []byte

	switch {
	case file == "-":
		stdin, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return nil, fmt.Errorf("reading payload from stdin: %w", err)
		}

		raw = stdin
	case file != "":
		content, err := os.ReadFile(file) // #nosec G304 -- user-supplied payload path
		if err != nil {
			return nil, fmt.Errorf("reading payload file: %w", err)
		}

		raw = content
	case data != "":
		raw = []byte(data)
	default:
		return nil, ErrPayloadRequired
	}

	var payload apisix.Object
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}

	if err := yaml.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadNotAnObject, err)
	}

	return payload, nil
}

// renderOutput writes v as JSON or YAML per the --output flag. It returns
// false when the format is neither, leaving table rendering to the caller.
func renderOutput(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return true, encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}

// renderResource prints one resource in the requested format.
func renderResource(resource *apisix.Resource) error {
	if resource == nil {
		fmt.Println("OK")

		return nil
	}

	done, err := renderOutput(resource)
	if done || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("key", resource.Key)

	for _, field := range sortedKeys(resource.Value) {
		_ = table.Append(field, formatValue(resource.Value[field]))
	}

	return table.Render()
}

// renderList prints a list response in the requested format.
func renderList(list *apisix.ListResponse) error {
	done, err := renderOutput(list)
	if done || err != nil {
		return err
	}

	if list == nil || len(list.List) == 0 {
		fmt.Println("No resources found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Configuration")

	for _, resource := range list.List {
		_ = table.Append(resource.Key, formatValue(resource.Value))
	}

	return table.Render()
}

// renderObject prints a free-form object in the requested format.
func renderObject(obj apisix.Object) error {
	done, err := renderOutput(obj)
	if done || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for _, field := range sortedKeys(obj) {
		_ = table.Append(field, formatValue(obj[field]))
	}

	return table.Render()
}

// renderDelete prints a delete confirmation.
func renderDelete(deleted *apisix.DeleteResponse) error {
	if deleted == nil {
		fmt.Println("Deleted")

		return nil
	}

	done, err := renderOutput(deleted)
	if done || err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", deleted.Key)

	return nil
}

func sortedKeys(obj apisix.Object) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// formatValue renders nested configuration compactly for table cells.
func formatValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}

		return string(encoded)
	}
}
