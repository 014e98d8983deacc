package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"slimdx-generator/internal/app"
)

func newValidateCommand() *cobra.Command {
	flags := schemaFlags{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve a schema and check every inheritance chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runValidate(cmd *cobra.Command, flags schemaFlags) error {
	service := newAppService()
	opts := flags.options(cmd)
	result, err := service.Validate(commandContext(cmd), app.ValidateRequest{SchemaOptions: opts})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s (%d enumerations, %d structures, %d interfaces, %d overrides)\n",
		opts.SchemaPath, result.Enumerations, result.Structures, result.Interfaces, result.Overrides)
	return nil
}
