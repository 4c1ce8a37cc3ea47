package commands

import (
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/spf13/cobra"
)

// NewProtosCommand creates the protos command group.
func NewProtosCommand() *cobra.Command {
	return newCreateOnlyCommand(createOnlySpec{
		use:     "protos",
		aliases: []string{"proto"},
		short:   "Manage protobuf definitions for gRPC transcoding",
		ops: func(admin apisix.AdminClient) createOnlyOps {
			return admin.Protos()
		},
	})
}
