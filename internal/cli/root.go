package cli

import (
    "os"

    "github.com/charmbracelet/lipgloss"
    "github.com/muesli/termenv"
    "github.com/spf13/cobra"

    "venus/internal/config"
    "venus/internal/console"
    "venus/internal/system"
)

var (
    noColor bool
    verbose bool
)

// Messages printed by the bare `venus` invocation.
const (
    demoInfo = "Venus Console initialized successfully."
    demoWarn = "OPENAI API key is not set. Some features may not work as expected."
    demoKill = "Module raised an exception. Please check the logs for details."
)

var rootCmd = &cobra.Command{
    Use:   "venus",
    Short: "venus – colored console log lines",
    Long:  "venus prints leveled (INFO/WARN/KILL) and timestamped status lines to the terminal.",
    PersistentPreRun: func(cmd *cobra.Command, args []string) {
        system.SetVerbose(verbose)
    },
    RunE: func(cmd *cobra.Command, args []string) error {
        // Default action: one line per level
        p := newPrinter(cmd)
        if err := p.Info(demoInfo); err != nil {
            return err
        }
        if err := p.Warn(demoWarn); err != nil {
            return err
        }
        return p.Critical(demoKill)
    },
    SilenceUsage:  true,
    SilenceErrors: true,
}

func init() {
    rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and bold text")
    rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug diagnostics on stderr")
}

// newPrinter builds a Printer on the command's stdout from env config and flags.
func newPrinter(cmd *cobra.Command) *console.Printer {
    cfg := config.Load()
    opts := []console.PrinterOption{console.WithTimeFormat(cfg.TimeFormat)}
    switch {
    case noColor || cfg.NoColor:
        opts = append(opts, console.WithProfile(termenv.Ascii))
    case cfg.ForceColor:
        opts = append(opts, console.WithProfile(termenv.ANSI))
    }
    system.Logger.Debug("printer", "noColor", noColor || cfg.NoColor, "forceColor", cfg.ForceColor, "timeFormat", cfg.TimeFormat)
    return console.New(cmd.OutOrStdout(), opts...)
}

var namedColors = map[string]lipgloss.Color{
    "black":   lipgloss.Color("0"),
    "red":     console.Red,
    "green":   console.Green,
    "yellow":  console.Yellow,
    "blue":    lipgloss.Color("4"),
    "magenta": lipgloss.Color("5"),
    "cyan":    lipgloss.Color("6"),
    "white":   lipgloss.Color("7"),
}

// parseColor accepts a basic color name, an ANSI index or a #hex value.
// Empty means "use the default".
func parseColor(s string) (lipgloss.Color, bool) {
    if s == "" {
        return "", false
    }
    if c, ok := namedColors[s]; ok {
        return c, true
    }
    return lipgloss.Color(s), true
}

// lineOptions turns the shared --color/--bold flags into console options.
func lineOptions(cmd *cobra.Command, color string, bold bool) []console.Option {
    var opts []console.Option
    if c, ok := parseColor(color); ok {
        opts = append(opts, console.Color(c))
    }
    if cmd.Flags().Changed("bold") {
        opts = append(opts, console.Bold(bold))
    }
    return opts
}

// Execute runs the CLI.
func Execute() {
    if err := rootCmd.Execute(); err != nil {
        system.Logger.Error("command failed", "err", err)
        os.Exit(1)
    }
}
