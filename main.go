package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/envdrop/cmd"
	"github.com/PolarWolf314/envdrop/internal/ui"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "envdrop",
	Short: "envdrop - drop pipeline secrets into a .env file at your package root.",
	Long: `envdrop filters a JSON object of secrets by name, writes the matches to
a .env file and moves it next to the nearest package manifest.

It runs as a GitHub Actions step, reading INPUT_* variables and masking
every value in the job log, or locally from a shell.

Usage:
  envdrop <command> [flags]

Available Commands:
  create     Write filtered secrets to a .env file
  config     Manage .envdrop.toml

Run 'envdrop help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	Run: func(c *cobra.Command, args []string) {
		fmt.Print(figure.NewFigure("envdrop", "", true).String())
		fmt.Println("Run 'envdrop --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.CreateCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		os.Exit(1)
	}
}
