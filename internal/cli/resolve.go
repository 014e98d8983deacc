package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slimdx-generator/internal/app"
)

type resolveOptions struct {
	schemaFlags
	Output string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a schema and write the API model document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.Output, "output", "out/model.yaml", "Model document output path")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(commandContext(cmd), app.ResolveRequest{
		SchemaOptions: opts.options(cmd),
		OutputPath:    resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("resolved: %d interfaces -> %s\n", len(result.Model.Interfaces()), result.OutputPath)
	return nil
}
