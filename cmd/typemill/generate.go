package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/typemill/typemill"
	"github.com/typemill/typemill/compiler/gen"
	"github.com/typemill/typemill/compiler/gen/dto"
	"github.com/typemill/typemill/compiler/gen/web"
	"github.com/typemill/typemill/settings"
	"github.com/typemill/typemill/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate all artifacts from the configured metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()
		report, err := runGeneration(cmd.Context(), log)
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGeneration(ctx context.Context, log *zap.Logger) (*gen.Report, error) {
	opts, err := generationOptions(log)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, opts...)
}

// generationOptions assembles the run configuration from viper-resolved
// flags, environment and config file.
func generationOptions(log *zap.Logger) ([]gen.Option, error) {
	metaPath := viper.GetString("metadata")
	f, err := os.Open(metaPath)
	if err != nil {
		return nil, fmt.Errorf("open metadata %s: %w", metaPath, err)
	}
	defer f.Close()
	doc, err := source.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode metadata %s: %w", metaPath, err)
	}
	var store typemill.SettingsSource = typemill.NoSettings{}
	if path := viper.GetString("settings"); path != "" {
		s, err := settings.Load(afero.NewOsFs(), path)
		if err != nil {
			return nil, err
		}
		store = s
	}
	return []gen.Option{
		gen.WithSource(doc),
		gen.WithSettings(store),
		gen.WithTargets(dto.New(), web.New()),
		gen.WithOutDir(gen.UnitDto, viper.GetString("dto-out")),
		gen.WithOutDir(gen.UnitWeb, viper.GetString("web-out")),
		gen.WithLogger(log),
	}, nil
}

func printReport(report *gen.Report) {
	fmt.Printf("%s %d artifacts, %d skipped, %d bytes\n",
		color.GreenString("generated:"), report.Artifacts, report.Skipped, report.Bytes)
	for _, w := range report.Warnings {
		fmt.Printf("%s %s\n", color.YellowString("warning:"), w)
	}
}
