package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/l0lsec/datadogenumerator/pkg/config"
	"github.com/l0lsec/datadogenumerator/pkg/enum"
	"github.com/l0lsec/datadogenumerator/pkg/report"
	"github.com/l0lsec/datadogenumerator/pkg/telemetry"
	"github.com/l0lsec/datadogenumerator/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     = config.DefaultConfig()
	region  = newRegionFlag(config.DefaultRegion)
)

var rootCmd = &cobra.Command{
	Use:   "ddenum [API_KEY] [APP_KEY]",
	Short: "Enumerate what a Datadog API key can access",
	Long: `DDENUM - Datadog API Key Enumeration

Probes the Datadog API with a credential pair and reports which
resource categories the key can read. Useful for determining the
blast radius of a leaked or newly issued key.`,
	Version:       version.Current,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEnumeration,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.ddenum.yaml)")
	rootCmd.PersistentFlags().VarP(region, "region", "r", fmt.Sprintf("Datadog region (%s)", strings.Join(config.Regions(), "|")))
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cfg.JsonLogs, "json-logs", false, "Emit logs as JSON")

	// Report Flags
	rootCmd.Flags().BoolVar(&cfg.JSONOutput, "json", false, "Emit the report as JSON events")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	// Hidden Flags
	rootCmd.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", "", "Override the API base URL")
	rootCmd.PersistentFlags().MarkHidden("base-url")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})
}

func runEnumeration(cmd *cobra.Command, args []string) error {
	resolveCredentials(args)

	cfg.Region = region.String()
	if cfg.BaseURL == "" {
		// Region values are validated at flag-parse time.
		cfg.BaseURL, _ = config.BaseURLFor(cfg.Region)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w (pass it as the first argument or set DD_API_KEY)", err)
	}

	logger := buildLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.JsonLogs)
	cfg.Logger = logger
	slog.SetDefault(logger)

	// Telemetry comes up only after the credential check, so a
	// configuration error exits without touching the network.
	shutdown, err := telemetry.Init(cmd.Context(), version.AppName, version.Current, "")
	if err != nil {
		logger.Warn("Telemetry failed", "error", err)
	} else {
		defer func() { _ = shutdown(context.Background()) }()
	}

	out := cmd.OutOrStdout()
	var sink enum.Sink
	if cfg.JSONOutput {
		sink = report.NewJSONSink(out)
	} else {
		fmt.Fprintln(out, report.Banner(version.Current, cfg.Region, cfg.NoColor))
		sink = report.NewConsoleSink(out, cfg.NoColor)
	}

	e := enum.New(cfg, enum.WithSink(sink))
	_, err = e.Run(cmd.Context())
	return err
}

// resolveCredentials applies the precedence chain: positional arguments
// first, then DD_API_KEY / DD_APP_KEY, then the config file.
func resolveCredentials(args []string) {
	if len(args) > 0 && args[0] != "" {
		cfg.APIKey = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		cfg.AppKey = args[1]
	}
	if cfg.APIKey == "" {
		cfg.APIKey = viper.GetString("api_key")
	}
	if cfg.AppKey == "" {
		cfg.AppKey = viper.GetString("app_key")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".ddenum.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	// Automatic env lookups are namespaced under DDENUM_ so a generic
	// API_KEY in the shell never becomes a credential source.
	viper.SetEnvPrefix("DDENUM")
	viper.AutomaticEnv()
	viper.BindEnv("api_key", "DD_API_KEY")
	viper.BindEnv("app_key", "DD_APP_KEY")
	viper.ReadInConfig()
}

// regionFlag is a pflag.Value that rejects unknown regions at parse time.
type regionFlag struct {
	value string
}

func newRegionFlag(def string) *regionFlag {
	return &regionFlag{value: def}
}

func (r *regionFlag) String() string {
	return r.value
}

func (r *regionFlag) Set(v string) error {
	if _, err := config.BaseURLFor(v); err != nil {
		return err
	}
	r.value = v
	return nil
}

func (r *regionFlag) Type() string {
	return "region"
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("DDENUM %s", version.Current)))
	fmt.Println("Datadog API key enumeration and access reporting.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("EXAMPLES"))
	fmt.Println("  ddenum <API_KEY>                    # Probe with the API key only")
	fmt.Println("  ddenum <API_KEY> <APP_KEY> -r eu    # Full credential pair, EU region")
	fmt.Println("  ddenum endpoints                    # List every endpoint this tool touches")
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
