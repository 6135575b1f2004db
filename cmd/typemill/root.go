package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "typemill",
	Short: "Metadata-driven model and front-end code generator",
	Long: `typemill turns exported type metadata into transmission models and
front-end interfaces and services, preserving hand-written custom
regions across regenerations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default typemill.yaml in working directory)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.String("metadata", "metadata.json", "type metadata file")
	pf.String("settings", "", "generation settings file")
	pf.String("dto-out", "out/dto", "transmission model output directory")
	pf.String("web-out", "out/web", "front-end output directory")
	for _, key := range []string{"metadata", "settings", "dto-out", "web-out"} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("typemill")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("TYPEMILL")
	viper.AutomaticEnv()
	// Missing config files are fine, flags and env cover everything.
	_ = viper.ReadInConfig()
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
