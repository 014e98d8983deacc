package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slimdx-generator/internal/app"
)

// schemaFlags are shared by every command that resolves a schema.
type schemaFlags struct {
	Schema          string
	SearchPaths     []string
	Catalogs        []string
	BaseType        string
	StrictFlags     bool
	ReadConcurrency int
}

func (f *schemaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Schema, "schema", "", "Root schema file")
	cmd.Flags().StringSliceVar(&f.SearchPaths, "search-path", nil, "Dependency search directories, in priority order")
	cmd.Flags().StringSliceVar(&f.Catalogs, "catalog", nil, "External type catalog files, later files override earlier ones")
	cmd.Flags().StringVar(&f.BaseType, "base-type", "", "Registry key of the base COM object type")
	cmd.Flags().BoolVar(&f.StrictFlags, "strict", false, "Reject unknown parameter flags and schema members")
	cmd.Flags().IntVar(&f.ReadConcurrency, "read-concurrency", 0, "Maximum concurrent dependency reads")

	_ = viper.BindPFlag("schema", cmd.Flags().Lookup("schema"))
	_ = viper.BindPFlag("search_paths", cmd.Flags().Lookup("search-path"))
	_ = viper.BindPFlag("catalogs", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("base_type", cmd.Flags().Lookup("base-type"))
	_ = viper.BindPFlag("strict_flags", cmd.Flags().Lookup("strict"))
	_ = viper.BindPFlag("read_concurrency", cmd.Flags().Lookup("read-concurrency"))
}

func (f schemaFlags) options(cmd *cobra.Command) app.SchemaOptions {
	return app.SchemaOptions{
		SchemaPath:      resolveString(cmd, f.Schema, "schema", "schema"),
		SearchPaths:     resolveStrings(cmd, f.SearchPaths, "search_paths", "search-path"),
		Catalogs:        resolveStrings(cmd, f.Catalogs, "catalogs", "catalog"),
		BaseType:        resolveString(cmd, f.BaseType, "base_type", "base-type"),
		StrictFlags:     resolveBool(cmd, f.StrictFlags, "strict_flags", "strict"),
		ReadConcurrency: resolveInt(cmd, f.ReadConcurrency, "read_concurrency", "read-concurrency"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
