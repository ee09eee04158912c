// Package logx configures the runner's structured logging.
//
// It is a small wrapper (logx.Logger) on top of zerolog that keeps:
//   - Console output readable (short timestamp + short caller)
//   - Console output on stderr, so stdout stays clean for reports
//   - Optional JSON-structured file output
package logx
