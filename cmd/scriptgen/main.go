// Command scriptgen generates build scripts from a YAML project
// descriptor.
//
//	scriptgen generate project.yaml --target ./out --dialect groovy --dialect kotlin
//	scriptgen watch project.yaml --target ./out
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/syssam/scriptgen/compiler/gen"
	"github.com/syssam/scriptgen/compiler/load"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		verbose  bool
		target   string
		dialects []string
		stdout   bool
	)
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	root := &cobra.Command{
		Use:          "scriptgen",
		Short:        "scriptgen generates build scripts from project descriptors",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&target, "target", "t", ".", "output directory")
	root.PersistentFlags().StringArrayVarP(&dialects, "dialect", "d", nil, "dialect to generate (repeatable)")

	generateCmd := &cobra.Command{
		Use:   "generate <descriptor>",
		Short: "Generate build scripts once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("descriptor loaded", "project", d.Name)
			g, err := gen.New(d, options(target, dialects)...)
			if err != nil {
				return err
			}
			if stdout {
				for _, name := range g.Dialects() {
					text, err := g.Render(name)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), text)
				}
				return nil
			}
			written, err := g.Generate(cmd.Context())
			if err != nil {
				return err
			}
			for _, path := range written {
				logger.Info("wrote", "path", path)
			}
			return nil
		},
	}
	generateCmd.Flags().BoolVar(&stdout, "stdout", false, "print scripts to stdout instead of writing files")

	watchCmd := &cobra.Command{
		Use:   "watch <descriptor>",
		Short: "Regenerate build scripts whenever the descriptor changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("watching", "descriptor", args[0])
			notify := func(written []string, err error) {
				if err != nil {
					logger.Error("generation failed", "err", err)
					return
				}
				for _, path := range written {
					logger.Info("wrote", "path", path)
				}
			}
			return gen.Watch(cmd.Context(), args[0], notify, options(target, dialects)...)
		},
	}

	root.AddCommand(generateCmd)
	root.AddCommand(watchCmd)
	return root.ExecuteContext(ctx)
}

func options(target string, dialects []string) []gen.Option {
	opts := []gen.Option{gen.WithTarget(target)}
	if len(dialects) > 0 {
		opts = append(opts, gen.WithDialects(dialects...))
	}
	return opts
}
