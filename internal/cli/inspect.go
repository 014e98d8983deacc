package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"slimdx-generator/internal/app"
)

func newInspectCommand() *cobra.Command {
	flags := schemaFlags{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show vtable offsets and key overrides of a resolved schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runInspect(cmd *cobra.Command, flags schemaFlags) error {
	service := newAppService()
	result, err := service.Inspect(commandContext(cmd), app.InspectRequest{SchemaOptions: flags.options(cmd)})
	if err != nil {
		return err
	}

	fmt.Printf("enumerations: %d\n", result.Enumerations)
	fmt.Printf("structures: %d\n", result.Structures)
	fmt.Printf("interfaces: %d\n", len(result.Interfaces))
	for _, summary := range result.Interfaces {
		fmt.Printf("- %s : %s (offset=%d, methods=%d)\n", summary.Key, summary.Parent, summary.MethodOffset, summary.MethodCount)
	}
	fmt.Printf("overrides: %d\n", len(result.Overrides))
	for _, override := range result.Overrides {
		fmt.Printf("- %s %s -> %s\n", override.Key, override.Previous, override.Current)
	}
	return nil
}
