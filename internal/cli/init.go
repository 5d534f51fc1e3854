package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/mqttdash/internal/config"
	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/metrics"
	"github.com/rileyhilliard/mqttdash/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// DefaultSampleFile is where init writes sample data.
const DefaultSampleFile = "metrics.yaml"

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write into (default: current)
	Title          string // Dashboard title
	DataFile       string // data.file value; relative paths resolve against Dir
	WithSample     bool   // Write the sample data set to DataFile
	Watch          bool   // Set data.watch
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
	Out            io.Writer
}

var initOpts InitOptions

// initCmd creates a new .mqttdash.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .mqttdash.yaml configuration",
	Long: `Create a .mqttdash.yaml file in the current directory.

Prompts for a dashboard title, an optional sample data file and the layout
breakpoint. With --sample, also writes the built-in sample data to the data
file so it can be edited and watched.

Examples:
  mqttdash init
  mqttdash init --sample --watch
  mqttdash init --non-interactive --title "Broker A" --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		opts.Out = cmd.OutOrStdout()
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			opts.NonInteractive = true
		}
		return Init(opts)
	},
}

func init() {
	initCmd.Flags().StringVar(&initOpts.Title, "title", "", "dashboard title")
	initCmd.Flags().StringVar(&initOpts.DataFile, "data-file", "", "sample data file to chart")
	initCmd.Flags().BoolVar(&initOpts.WithSample, "sample", false, "write sample data to the data file")
	initCmd.Flags().BoolVar(&initOpts.Watch, "watch", false, "reload when the data file changes")
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "skip prompts and use flags/defaults")
	rootCmd.AddCommand(initCmd)
}

// Init creates a new .mqttdash.yaml configuration file.
func Init(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	cfg.Data.File = opts.DataFile
	cfg.Data.Watch = opts.Watch
	withSample := opts.WithSample

	if !opts.NonInteractive {
		if err := promptInit(cfg, &withSample); err != nil {
			return err
		}
	}

	if (withSample || cfg.Data.Watch) && cfg.Data.File == "" {
		cfg.Data.File = DefaultSampleFile
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if withSample {
		if err := writeSampleData(opts.Out, config.ResolvePath(cfg.Data.File, opts.Dir)); err != nil {
			return err
		}
	}

	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}

	ui.PrintSuccess(opts.Out, "Created "+configPath)
	fmt.Fprintln(opts.Out)
	fmt.Fprintln(opts.Out, ui.MutedStyle().Render("Next: run 'mqttdash' to open the dashboard, or 'mqttdash snapshot' to print it once."))
	return nil
}

// promptInit asks for the values flags did not settle.
func promptInit(cfg *config.Config, withSample *bool) error {
	breakpoint := strconv.Itoa(cfg.Layout.Breakpoint)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dashboard title").
				Description("Shown in the dashboard header").
				Placeholder(config.DefaultTitle).
				Value(&cfg.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					if len(s) > config.MaxTitleLength {
						return fmt.Errorf("title must be %d characters or fewer", config.MaxTitleLength)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sample data file (optional)").
				Description("YAML series to chart; leave empty for the built-in sample data").
				Placeholder(DefaultSampleFile).
				Value(&cfg.Data.File),
			huh.NewConfirm().
				Title("Write the built-in sample data to that file?").
				Value(withSample),
			huh.NewConfirm().
				Title("Reload the dashboard when the file changes?").
				Value(&cfg.Data.Watch),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Two-column breakpoint").
				Description("Terminal width in columns at which panels sit side by side").
				Placeholder(strconv.Itoa(config.DefaultBreakpoint)).
				Value(&breakpoint).
				Validate(validateBreakpoint),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.Title = strings.TrimSpace(cfg.Title)
	cfg.Data.File = strings.TrimSpace(cfg.Data.File)
	cfg.Layout.Breakpoint, _ = strconv.Atoi(strings.TrimSpace(breakpoint))
	return nil
}

// validateBreakpoint accepts a column count within config limits.
func validateBreakpoint(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("breakpoint must be a whole number")
	}
	if n < config.MinBreakpoint || n > config.MaxBreakpoint {
		return fmt.Errorf("breakpoint must be between %d and %d", config.MinBreakpoint, config.MaxBreakpoint)
	}
	return nil
}

// writeSampleData writes the sample series to path unless a file is
// already there.
func writeSampleData(out io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		ui.PrintWarning(out, "Keeping existing data file "+path)
		return nil
	}
	if err := metrics.WriteFile(path, metrics.SampleData()); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write sample data",
			"Check the directory exists and is writable")
	}
	ui.PrintSuccess(out, "Wrote sample data to "+path)
	return nil
}

// writeConfig marshals cfg to path with a short header.
func writeConfig(path string, cfg *config.Config) error {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is a bug; please report it")
	}

	content := "# mqttdash configuration\n# Paths support ~, ${HOME}, ${USER} and ${PROJECT}.\n\n" + string(body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check the directory is writable")
	}
	return nil
}
