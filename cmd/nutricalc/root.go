package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/nutricalc/internal/app"
	"github.com/ykvlv/nutricalc/internal/config"
	"github.com/ykvlv/nutricalc/internal/domain"
	"github.com/ykvlv/nutricalc/internal/logger"
	"github.com/ykvlv/nutricalc/internal/render"
)

// errSetup marks failures that happen before a logger exists.
var errSetup = errors.New("setup")

func exitCode(err error) int {
	if errors.Is(err, errSetup) {
		return 2
	}
	return 1
}

type rootOptions struct {
	profile     string
	format      string
	logLevel    string
	noColor     bool
	useDefaults bool
}

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, o *rootOptions) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("%w: config: %v", errSetup, err)
	}
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.ProfilePath = o.profile
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	log, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("%w: logger: %v", errSetup, err)
	}
	return log, nil
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "nutricalc",
		Short: "Estimate daily energy, macronutrient and micronutrient needs",
		Long: `nutricalc estimates BMR and TDEE (Mifflin-St Jeor), splits the energy
into protein, fat and carbohydrate targets, and lists adult reference
intakes for 26 vitamins and minerals adjusted for menstruation,
pregnancy and breastfeeding.

Without --profile or --defaults it asks the questions interactively.
Values are approximate and not medical advice.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			source := app.SourceFor(cfg, o.useDefaults, cmd.InOrStdin(), cmd.ErrOrStderr(), log)
			a, err := app.New(cfg, log, source, cmd.OutOrStdout())
			if err != nil {
				log.Error("app init failed", zap.Error(err))
				return err
			}
			if err := a.Run(cmd.Context()); err != nil {
				log.Error("run failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.format, "format", render.FormatTable, "output format: table, plain or json")
	f.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	f.BoolVar(&o.noColor, "no-color", false, "disable colors in table output")
	cmd.Flags().StringVar(&o.profile, "profile", "", "read the profile from a YAML file instead of prompting")
	cmd.Flags().BoolVar(&o.useDefaults, "defaults", false, "skip the questions and use every default answer")

	cmd.AddCommand(newReferenceCmd(o))
	return cmd
}

type referenceOptions struct {
	sex    string
	age    int
	status domain.ReproductiveStatus
}

func newReferenceCmd(root *rootOptions) *cobra.Command {
	o := &referenceOptions{}
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Print the micronutrient reference table for a demographic",
		Example: `  nutricalc reference --sex female --pregnant
  nutricalc reference --sex male --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			sex := domain.ParseSex(o.sex)
			if sex != domain.Female && o.status != (domain.ReproductiveStatus{}) {
				log.Warn("reproductive flags ignored for non-female reference", zap.String("sex", o.sex))
			}
			tbl := domain.BuildTable(sex, o.age, o.status)
			if err := render.Reference(cmd.OutOrStdout(), tbl, cfg.Format, render.Options{NoColor: cfg.NoColor}); err != nil {
				log.Error("render failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.sex, "sex", "male", "male or female")
	f.IntVar(&o.age, "age", 30, "age in years")
	f.BoolVar(&o.status.Menstruating, "menstruating", false, "apply the menstruation override")
	f.BoolVar(&o.status.Pregnant, "pregnant", false, "apply the pregnancy override")
	f.BoolVar(&o.status.Breastfeeding, "breastfeeding", false, "apply the lactation override")
	return cmd
}
