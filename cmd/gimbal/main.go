package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/gimbal/internal/config"
	"github.com/ensigniasec/gimbal/internal/tui"
	"github.com/ensigniasec/gimbal/internal/validate"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	profileFile = "~/.config/gimbal/profile.yaml"
	verbose     bool

	axisFlag       string
	minPx          int
	minPercent     float64
	maxPx          int
	maxPercent     float64
	defaultPx      int
	defaultPercent float64
	timeoutMS      int
	cursorFlag     string

	rootCmd = &cobra.Command{
		Use:   "gimbal",
		Short: "A draggable divider that resizes two adjacent terminal regions along one axis.",
		Long:  `Gimbal hosts a draggable split divider between two regions. The handle position is constrained by configurable minimum/maximum bounds expressed in pixels or percentages, supports reversed axes, and double-click resets to a default position.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so they never land in the alternate screen.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", profileFile, "Path to the gimbal profile file")

	demoCmd.Flags().StringVar(&axisFlag, "axis", "", "Axis orientation: horizontal, horizontal-reverse, vertical, vertical-reverse")
	demoCmd.Flags().IntVar(&minPx, "min-px", 0, "Minimum region size in pixels")
	demoCmd.Flags().Float64Var(&minPercent, "min-percent", 0, "Minimum region size as a percentage of the container")
	demoCmd.Flags().IntVar(&maxPx, "max-px", 0, "Maximum region size in pixels")
	demoCmd.Flags().Float64Var(&maxPercent, "max-percent", 0, "Maximum region size as a percentage of the container")
	demoCmd.Flags().IntVar(&defaultPx, "default-px", 0, "Double-click reset position in pixels")
	demoCmd.Flags().Float64Var(&defaultPercent, "default-percent", 0, "Double-click reset position as a percentage")
	demoCmd.Flags().IntVar(&timeoutMS, "timeout-ms", 0, "Click/drag debounce window in milliseconds")
	demoCmd.Flags().StringVar(&cursorFlag, "cursor", "", "Cursor override string reported while dragging")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(profileCmd)

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileSetAxisCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive split-pane demo",
	Long:  "Run a full-screen demo hosting one gimbal between two panes. The profile file supplies defaults; flags override individual settings for this run.",
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		profile := loadProfile()
		applyFlagOverrides(cmd, &profile)

		if err := tui.Run(profile); err != nil {
			logrus.Fatalf("demo failed: %v", err)
		}
	},
}

// loadProfile reads the profile file, falling back to defaults when it does
// not exist.
func loadProfile() config.Profile {
	s, err := config.NewStore(profileFile)
	if err != nil {
		logrus.Fatalf("Unable to read profile: %v", err)
	}
	return s.Profile
}

// applyFlagOverrides merges explicitly set demo flags over the profile.
func applyFlagOverrides(cmd *cobra.Command, p *config.Profile) {
	flags := cmd.Flags()
	if flags.Changed("axis") {
		if err := validate.Var(axisFlag, "orientation"); err != nil {
			logrus.Fatalf("Invalid axis %q. Expected one of: horizontal, horizontal-reverse, vertical, vertical-reverse.", axisFlag)
		}
		p.Orientation = axisFlag
	}
	if flags.Changed("timeout-ms") {
		p.MouseTimeoutMS = timeoutMS
	}
	if flags.Changed("cursor") {
		p.Cursor = cursorFlag
	}
	p.Minimum = overrideRule(flags.Changed("min-px"), minPx, flags.Changed("min-percent"), minPercent, p.Minimum)
	p.Maximum = overrideRule(flags.Changed("max-px"), maxPx, flags.Changed("max-percent"), maxPercent, p.Maximum)
	p.Default = overrideRule(flags.Changed("default-px"), defaultPx, flags.Changed("default-percent"), defaultPercent, p.Default)
}

// overrideRule replaces rule sources that were explicitly set on the command
// line, leaving the rest of the rule as the profile configured it.
func overrideRule(pxSet bool, px int, pctSet bool, pct float64, prev *config.Rule) *config.Rule {
	if !pxSet && !pctSet {
		return prev
	}
	out := &config.Rule{}
	if prev != nil {
		*out = *prev
	}
	if pxSet {
		out.Pixels = &px
	}
	if pctSet {
		out.Percent = &pct
	}
	return out
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the persisted gimbal profile",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current profile",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := config.NewStore(profileFile)
		if err != nil {
			logrus.Fatal(err)
		}
		out, err := yaml.Marshal(s.Profile)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprint(os.Stdout, string(out))
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default profile file if none exists",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := config.NewOrExistingStore(profileFile)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Profile written to %s\n", s.Path)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var profileSetAxisCmd = &cobra.Command{
	Use:   "set-axis [ORIENTATION]",
	Short: "Set and persist the axis orientation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := config.NewOrExistingStore(profileFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := validate.Var(args[0], "orientation"); err != nil {
			logrus.Fatalf(
				"Invalid orientation: %q. Expected one of: horizontal, horizontal-reverse, vertical, vertical-reverse.",
				args[0],
			)
		}
		s.Profile.Orientation = args[0]
		if err := s.Save(); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Orientation set to %s\n", s.Profile.Orientation)
	},
}

func main() {
	Execute()
}
