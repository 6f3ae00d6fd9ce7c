package cli

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/funnel"
	"github.com/Clare-zewei/clickengineA-sub000/internal/logger"
)

const envPrefix = "FUNNELCTL"

// ErrInvalidTemplate is returned by validate when the template has rule violations
var ErrInvalidTemplate = errors.New("template is invalid")

type app struct {
	cfgFile string
	verbose bool
	v       *viper.Viper
	log     *zap.Logger
}

// NewRootCommand builds the funnelctl command tree
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "funnelctl",
		Short: "Validate and analyze funnel templates offline",
		Long: `funnelctl runs the funnel template calculator on template files.

Flags can also be set with FUNNELCTL_* environment variables or in $HOME/.funnelctl.yaml.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.funnelctl.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")
	root.PersistentFlags().Float64("threshold", funnel.DefaultDropOffThreshold, "drop-off threshold in percent")
	root.PersistentFlags().Float64("base-cost", funnel.DefaultBaseCostPerStep, "base acquisition cost per step")
	root.PersistentFlags().Float64("revenue", funnel.DefaultAvgRevenuePerCustomer, "average revenue per customer")

	for _, name := range []string{"threshold", "base-cost", "revenue"} {
		_ = a.v.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}

	root.AddCommand(
		newValidateCommand(a),
		newAnalyzeCommand(a),
		newDefaultsCommand(),
	)
	return root
}

// initConfig reads in config file and ENV variables if set
func (a *app) initConfig() error {
	if a.verbose {
		log, err := logger.New("development", "debug")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.log = log
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".funnelctl")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
		a.log.Debug("No config file found")
	} else {
		a.log.Debug("Using config file", zap.String("path", a.v.ConfigFileUsed()))
	}
	return nil
}

func (a *app) options() funnel.Options {
	return funnel.Options{
		DropOffThreshold:      a.v.GetFloat64("threshold"),
		BaseCostPerStep:       a.v.GetFloat64("base-cost"),
		AvgRevenuePerCustomer: a.v.GetFloat64("revenue"),
	}
}
