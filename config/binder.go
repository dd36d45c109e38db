package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder declares a group of flags and reads them back once they
// have been parsed
type Binder interface {
	// Bind registers the flags of the binder in the command
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values of the flags from v
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the --config flag. When set, the file
// is read by viper and its values are used as defaults for the
// remaining flags
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().StringVar(&f.Path, "config", "", "path to the configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfigFile{Path: f.Path, Cause: err}
	}

	return nil
}
