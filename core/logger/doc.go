// Package logger builds the zap logger used by every command.
//
// The CLI defaults to console encoding; the HTTP server usually runs with
// json. Two helpers attach correlation fields:
//
//   - WithRayID copies the request ray id from a Fiber context.
//   - WithRun tags import output with the run id and dry-run flag.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log = logger.WithRun(log, runID, whatIf)
//	log.Info("Import finished")
package logger
