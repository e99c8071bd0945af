package cli

import (
    "strings"

    "github.com/spf13/cobra"

    "venus/internal/console"
)

var (
    printLevel string
    printBold  bool
    printColor string
)

func init() {
    rootCmd.AddCommand(printCmd)
    printCmd.Flags().StringVarP(&printLevel, "level", "l", "INFO", "level label (INFO, WARN, KILL; others print green)")
    printCmd.Flags().BoolVar(&printBold, "bold", true, "bold message")
    printCmd.Flags().StringVar(&printColor, "color", "", "message color (name, ANSI index or #hex; default follows level)")
}

var printCmd = &cobra.Command{
    Use:   "print [MESSAGE...]",
    Short: "Print one leveled line",
    Long:  "Print one leveled line. Without a message a blank line is printed.",
    RunE: func(cmd *cobra.Command, args []string) error {
        return newPrinter(cmd).Leveled(console.ParseLevel(printLevel), strings.Join(args, " "), lineOptions(cmd, printColor, printBold)...)
    },
}
