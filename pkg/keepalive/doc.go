// Package keepalive periodically pings the service's own health endpoint so
// hosts that suspend idle services keep it awake.
//
// The ping runs on a robfig/cron schedule of the form "@every <interval>",
// independent of request handling. Failures are logged and counted; they
// never reach a caller.
package keepalive
