package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/exceptional/pkg/exceptional"
)

var (
	cfgFile string
	logger  = logrus.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Run may-fail operations under a failure policy",
	Long: `attempt runs file reads and integer parsing through the exceptional library.
Failures are handled by the configured policy: ignore, print, rethrow or sneaky.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return configureLogger() },
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.attempt.yaml)")
	rootCmd.PersistentFlags().String("policy", "print", "failure policy: ignore, print, rethrow or sneaky")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	for _, name := range []string{"policy", "log-level", "log-format"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".attempt")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("attempt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.WithField("config", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func configureLogger() error {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	switch viper.GetString("log-format") {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", viper.GetString("log-format"))
	}
	return nil
}

func policyCatcher(name string) (exceptional.Catcher, error) {
	switch strings.ToLower(name) {
	case "ignore":
		return exceptional.Ignore, nil
	case "print":
		return exceptional.Printing(logger), nil
	case "rethrow":
		return exceptional.Rethrowing, nil
	case "sneaky":
		return exceptional.Sneaky, nil
	}
	return nil, fmt.Errorf("unknown policy %q", name)
}

// guarded turns anything fn raises into the command's error.
func guarded(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return exceptional.Capture(func() error { return fn(cmd, args) })
	}
}
