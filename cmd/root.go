package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tedjoin",
	Short: "tedjoin computes tree similarity joins by tree edit distance",
}

// Execute runs the CLI. It is the only exported entry point; cmd/tedjoin's
// main calls it directly.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .tedjoin.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "wall-clock timeout for the join")

	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(goldenCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tedjoin")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.AutomaticEnv()
	// A missing config file is not an error: every setting it could
	// provide also has a command-line default.
	_ = viper.ReadInConfig()
}
