package cli

import (
    "strings"

    "github.com/spf13/cobra"
)

var (
    logBold  bool
    logColor string
)

func init() {
    rootCmd.AddCommand(logCmd)
    logCmd.Flags().BoolVar(&logBold, "bold", false, "bold message")
    logCmd.Flags().StringVar(&logColor, "color", "", "message color (name, ANSI index or #hex; default green)")
}

var logCmd = &cobra.Command{
    Use:   "log MESSAGE...",
    Short: "Print a status line prefixed with the current time",
    Args:  cobra.MinimumNArgs(1),
    RunE: func(cmd *cobra.Command, args []string) error {
        return newPrinter(cmd).Log(strings.Join(args, " "), lineOptions(cmd, logColor, logBold)...)
    },
}
