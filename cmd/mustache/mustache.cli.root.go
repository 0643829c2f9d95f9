package main

import (
	"errors"
	"io"
	"strings"

	"github.com/itsatony/go-mustache"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the streams and configuration shared by all commands
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	config     *viper.Viper
	logger     *zap.Logger
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		config: viper.New(),
		logger: zap.NewNop(),
	}
}

// rootCommand builds the command tree
func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               CLIName,
		Short:             CLIDescription,
		Long:              CLILong,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.initConfig,
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, FlagConfig, "", UsageConfig)
	flags.String(FlagLogLevel, FlagDefaultLogLevel, UsageLogLevel)

	root.AddCommand(c.renderCommand(), c.validateCommand(), c.versionCommand())
	return root
}

// initConfig binds the executing command's flags to the configuration,
// reads the optional config file and builds the logger. Precedence, highest
// first: flags, MUSTACHE_* environment, config file, flag defaults.
func (c *cli) initConfig(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(c.config, cmd.Flags()); err != nil {
		return newCLIError(ExitCodeUsageError, ErrMsgUsage, err)
	}

	c.config.SetEnvPrefix(ConfigEnvPrefix)
	c.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.config.AutomaticEnv()

	if c.configFile != "" {
		c.config.SetConfigFile(c.configFile)
	} else {
		c.config.AddConfigPath(ConfigFilePath)
		c.config.SetConfigName(ConfigFileName)
		c.config.SetConfigType(ConfigFileType)
	}
	if err := c.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.configFile != "" || !errors.As(err, &notFound) {
			return newCLIError(ExitCodeInputError, ErrMsgReadConfigFailed, err)
		}
	}

	logger, err := newLogger(c.config.GetString(FlagLogLevel), c.stderr)
	if err != nil {
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidLogLevel, err)
	}
	c.logger = logger
	return nil
}

// bindFlags registers every flag of the set under its own name
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		if bindErr == nil && flag.Name != FlagConfig {
			bindErr = v.BindPFlag(flag.Name, flag)
		}
	})
	return bindErr
}

// newLogger builds a console logger on w at the named level
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)), nil
}

// newEngine builds an engine from the configuration
func (c *cli) newEngine() (*mustache.Engine, error) {
	engine, err := mustache.New(
		mustache.WithLogger(c.logger),
		mustache.WithMaxDepth(c.config.GetInt(FlagMaxDepth)),
	)
	if err != nil {
		return nil, newCLIError(ExitCodeUsageError, ErrMsgEngineFailed, err)
	}
	return engine, nil
}
