package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var cfgFile string

	root := &cobra.Command{
		Use:   "gradctl",
		Short: "gradctl — interactive shell for the degree-fulfillment engine (spec §6.4)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initViper(cfgFile); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			app := NewApp(loadConfig(), slog.Default())
			return runShell(cmd, app)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a gradctl.yaml config file")
	bindConfigFlags(root)

	if err := root.Execute(); err != nil {
		slog.Error("gradctl: fatal", "error", err)
		os.Exit(1)
	}
}

// runShell reads comma-delimited commands one per line from stdin,
// dispatching each through App.Dispatch until EOF (spec §6.4). This is
// the whole of the "interactive command shell" spec §1 names as a
// peripheral collaborator — nothing here touches the core packages
// directly except through App's already-validated calls into them.
func runShell(cmd *cobra.Command, app *App) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for scanner.Scan() {
		if reply := app.Dispatch(scanner.Text()); reply != "" {
			fmt.Fprintln(out, reply)
		}
	}
	return scanner.Err()
}
