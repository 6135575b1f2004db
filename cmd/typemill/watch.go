package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/typemill/typemill/compiler/gen"
	"github.com/typemill/typemill/internal/watch"
)

const snapshotPath = ".typemill.snapshot"

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever metadata or settings change",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		fs := afero.NewOsFs()
		last, err := gen.LoadSnapshot(fs, snapshotPath)
		if err != nil {
			log.Warn("snapshot cache unreadable, regenerating", zap.Error(err))
		}
		run := func() error {
			opts, err := generationOptions(log)
			if err != nil {
				return err
			}
			c, err := gen.NewConfig(opts...)
			if err != nil {
				return err
			}
			g, err := gen.NewGraph(c)
			if err != nil {
				return err
			}
			var extra [][]byte
			if path := viper.GetString("settings"); path != "" {
				if data, err := afero.ReadFile(fs, path); err == nil {
					extra = append(extra, data)
				}
			}
			snap, err := gen.TakeSnapshot(g, extra...)
			if err != nil {
				return err
			}
			if snap.Matches(last) {
				fmt.Printf("%s graph unchanged, skipping\n", color.CyanString("watch:"))
				return nil
			}
			report, err := gen.NewGenerator(g).Run(cmd.Context())
			if err != nil {
				return err
			}
			last = snap
			if err := snap.Save(fs, snapshotPath); err != nil {
				log.Warn("snapshot cache not saved", zap.Error(err))
			}
			printReport(report)
			return nil
		}

		files := []string{viper.GetString("metadata")}
		if path := viper.GetString("settings"); path != "" {
			files = append(files, path)
		}
		w, err := watch.New(log, run, files...)
		if err != nil {
			return err
		}
		defer w.Stop()
		if err := w.Start(); err != nil {
			return err
		}
		fmt.Printf("%s watching %v\n", color.CyanString("watch:"), files)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
