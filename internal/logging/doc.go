// Package logger provides leveled logging for shush commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. All output goes to stderr so that stdout only ever carries cipher
// text, plaintext or the output of the command started by exec.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Secret values must never be passed to the logger. Variable names and key
// references are fine.
package logger
