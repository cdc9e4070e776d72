package main

import (
	"fmt"
	"os"

	"cpd/internal/di"
	"cpd/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:          "cpd",
		Short:        "Content publication daemon: library, notifications and view revenue",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(flags)
		},
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to stdout")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the retention scheduler",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(flags)
			},
		},
		&cobra.Command{
			Use:   "cleanup",
			Short: "Apply retention once and print what was removed",
			RunE: func(cmd *cobra.Command, args []string) error {
				return cleanup(cmd, flags)
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(flags *structures.CliFlags) error {
	app, release, err := di.InitApp(flags)
	if err != nil {
		return err
	}
	defer release()
	return app.Run()
}

func cleanup(cmd *cobra.Command, flags *structures.CliFlags) error {
	job, release, err := di.InitCleanup(flags)
	if err != nil {
		return err
	}
	defer release()

	report, err := job.RunCleanup()
	if report != nil {
		out, mErr := json.MarshalIndent(report, "", "  ")
		if mErr != nil {
			return mErr
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	return err
}
