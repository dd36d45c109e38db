package board

import (
	"io"

	"github.com/eaugeas/hexboard/config"
	"github.com/eaugeas/hexboard/errors"
	"github.com/eaugeas/hexboard/logs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagCheckInvariants = "board.check-invariants"
	flagLogLevel        = "log.level"
)

// Settings are the configurable parameters of a board. Settings
// implements config.Config, so they can be read from flags, the
// environment (prefix HEXBOARD_) or a configuration file
type Settings struct {
	CheckInvariants bool
	LogLevel        logrus.Level
}

// Use implementation of config.Config for Settings
func (s *Settings) Use() string {
	return "hex board of tiles ordered by coordinate"
}

// EnvPrefix implementation of config.Config for Settings
func (s *Settings) EnvPrefix() string {
	return "hexboard"
}

// Binders implementation of config.Config for Settings
func (s *Settings) Binders() []config.Binder {
	return []config.Binder{s}
}

// Bind implementation of config.Binder for Settings
func (s *Settings) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().Bool(flagCheckInvariants, false,
		"check the consistency of the board on every operation")
	cmd.PersistentFlags().String(flagLogLevel, logrus.WarnLevel.String(),
		"minimum level of the log entries written")
	return nil
}

// Configure implementation of config.Binder for Settings
func (s *Settings) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return errors.Wrapf(err, "invalid value for %s", flagLogLevel)
	}

	s.CheckInvariants = v.GetBool(flagCheckInvariants)
	s.LogLevel = level
	return nil
}

// Opts returns the board options for the settings, with a logger
// writing to out
func (s *Settings) Opts(out io.Writer) Opts {
	return Opts{
		CheckInvariants: s.CheckInvariants,
		Logger: logs.NewLogrus(logs.LogrusLoggerProperties{
			Level:  s.LogLevel,
			Output: out,
		}),
	}
}
