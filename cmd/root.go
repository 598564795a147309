// Package cmd provides the root command and CLI setup for traitpack.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"traitpack.dev/pkg/traitpack/internal/adapter"
	"traitpack.dev/pkg/traitpack/internal/controller"
	"traitpack.dev/pkg/traitpack/internal/domain"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

var traitFSAdapter adapter.TraitFSAdapter
var traitStore adapter.TraitStore
var scanner domain.Scanner
var encoder domain.Encoder
var processor domain.Processor
var workflow domain.Workflow
var ui controller.UI

var pathFlag string
var outputFlag string
var formatFlag string
var parallelFlag int
var verboseFlag bool
var logFileFlag string

// excludePatterns is a root-level flag that filters trait files for applicable commands.
var excludePatterns []string

var errMissingPath = errors.New("required flag \"path\" not set")

func init() {
	configureRootFlags(rootCmd)
	configureExportFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	traitFSAdapter = adapter.NewLocalTraitFSAdapter()
	traitStore = adapter.NewJSONTraitStore(traitFSAdapter)
	scanner = domain.NewScanner(traitFSAdapter)
	encoder = domain.NewEncoder(traitFSAdapter)
	processor = domain.NewProcessor(traitFSAdapter, encoder)
	workflow = domain.NewWorkflow(
		traitStore,
		ui,
		scanner,
		processor,
	)
}

const rootLongDescription = `Traitpack exports a directory of generative-art trait images into a
single JSON document.

Every direct subfolder of --path is a trait category. Supported images
(svg, png, jpg, jpeg, gif, webp, avif) anywhere below a category become
traits. A filename such as "gold_crown.0.5.png" yields the name
"Gold Crown.0" and rarity 5; a leading number on the category folder
("03_hats") sets its order.`

const listLongDescription = `List trait categories, their trait counts and total file sizes without
encoding anything or writing output.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "traitpack",
		Short:        "Export trait images into a JSON document",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := exportArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Export(cmd.Context(), args)
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	configureExportFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&pathFlag, pathFlagName, "p", viper.GetString(pathConfigKey), "traits directory whose subfolders are categories")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(pathFlagName), pathConfigKey)

	cmd.PersistentFlags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "JSON document to write (or read with view)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude paths matching a glob relative to --path (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

func configureExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "image encoding: raw or base64")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "j", viper.GetInt(parallelConfigKey), "number of files encoded concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func traitsRootFromConfig() (m.Path, error) {
	root := strings.TrimSpace(viper.GetString(pathConfigKey))
	if root == "" {
		return "", errMissingPath
	}

	return m.Path(root), nil
}

func excludeFromConfig() ([]string, error) {
	exclude := viper.GetStringSlice(excludeConfigKey)
	if err := domain.ValidateExcludePatterns(exclude); err != nil {
		return nil, err
	}

	return exclude, nil
}

func exportArgsFromConfig() (domain.ExportArgs, error) {
	root, err := traitsRootFromConfig()
	if err != nil {
		return domain.ExportArgs{}, err
	}

	format, err := m.ParseImageFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return domain.ExportArgs{}, err
	}

	exclude, err := excludeFromConfig()
	if err != nil {
		return domain.ExportArgs{}, err
	}

	return domain.ExportArgs{
		Root:    root,
		Output:  m.Path(viper.GetString(outputConfigKey)),
		Format:  format,
		Exclude: exclude,
		Threads: viper.GetInt(parallelConfigKey),
	}, nil
}
