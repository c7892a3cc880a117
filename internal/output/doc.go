// Package output provides structured output handling for the autotag CLI.
//
// Every command can print for a person at a terminal or, with --json, for a
// script. The Printer switches between the two:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Tagged v1.4.0", "tag": "v1.4.0"})
//	printer.Error(err)
//
// In JSON mode a success is the data map itself and an error is
// {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, missing or unreadable manifest
//	output.ExitSystemError // 2: git missing or failing, I/O errors
//	output.ExitConflict    // 3: dirty working tree, tag already exists
//
// Errors built with NewUserError, NewSystemError and NewConflictError carry
// their code; GetExitCode recovers it at the process boundary.
package output
