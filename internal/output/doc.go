// Package output provides structured output handling for the rescuetime-mcp CLI.
//
// This package handles both human-readable and JSON output formats so every
// command works for human users and for scripts alike.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.WriteJSON(result)        // JSON mode
//	printer.KeyValue("Pulse", "82")  // human mode
//	printer.Error(err)
//
// # Exit Codes
//
// The package defines standard exit codes and an error type carrying them:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, missing API key)
//	output.ExitSystemError // 2: System error (API failure, I/O error)
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("RESCUETIME_API_KEY environment variable not set")
//	output.NewSystemErrorWithCause("health check failed", err)
package output
