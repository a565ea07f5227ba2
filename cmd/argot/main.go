// Package main provides the Argot CLI application entry point.
// Argot is a miniature command interpreter: commands declare their argument
// grammar as compact template strings, and input lines are parsed, typed,
// and dispatched against them.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"argot/internal/builtin"
	"argot/internal/commands"
	"argot/internal/dispatch"
	"argot/internal/logger"
	"argot/internal/output"
	"argot/internal/shell"
	"argot/internal/version"
)

var (
	logLevel string
	logFile  string
	testMode bool
	plain    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "argot",
	Short: "Argot - a miniature command interpreter",
	Long: `Argot is a miniature command-line interpreter. Commands declare their
argument grammar as compact template strings (e.g. "&int count
&array<count,string> names"), and input lines of the form "keyword:tokens"
are parsed into typed values and dispatched to the matching command.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd is the explicit version of the default behavior.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Long:  `Start the interactive Argot shell.`,
	Run:   runShell,
}

// batchCmd executes a .argot script file without entering interactive mode.
var batchCmd = &cobra.Command{
	Use:   "batch <script.argot>",
	Short: "Execute a .argot script file in batch mode",
	Long: `Execute a .argot script file directly without entering interactive mode.
Each non-blank, non-comment line is dispatched as one input line; a failing
line is reported and execution continues with the next line.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("test-mode", rootCmd.PersistentFlags().Lookup("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding test-mode flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding plain flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env file in the working directory may carry ARGOT_* settings;
	// a missing file is fine.
	_ = godotenv.Load()

	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newDispatcher assembles the registry, printer, and dispatcher, with all
// built-in commands registered.
func newDispatcher() *dispatch.Dispatcher {
	mode := output.ModeAuto
	if plain || os.Getenv("ARGOT_PLAIN") != "" {
		mode = output.ModePlain
	}
	printer := output.NewPrinter(output.WithMode(mode))

	registry := commands.NewRegistry()
	builtin.RegisterAll(registry, printer)

	return dispatch.New(registry, printer)
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting Argot", "version", version.GetVersion())

	sh := shell.New(newDispatcher())
	sh.Run()
}

func runBatch(_ *cobra.Command, args []string) {
	scriptPath := args[0]

	logger.Info("Starting Argot batch mode", "version", version.GetVersion(), "script", scriptPath)

	if err := validateScriptFile(scriptPath); err != nil {
		logger.Fatal("Script validation failed", "error", err)
	}

	if err := shell.RunScript(scriptPath, newDispatcher()); err != nil {
		logger.Fatal("Script execution failed", "error", err)
	}

	logger.Info("Script executed successfully", "script", scriptPath)
}

func validateScriptFile(scriptPath string) error {
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return fmt.Errorf("script file does not exist: %s", scriptPath)
	}
	if ext := filepath.Ext(scriptPath); ext != ".argot" {
		return fmt.Errorf("script file must have .argot extension, got: %s", ext)
	}
	return nil
}
