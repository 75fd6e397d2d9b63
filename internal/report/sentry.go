// Package report wires panic and structural-error reporting shared by
// bptreebench and bptreecli.
package report

import (
	"context"
	"log"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/kvindex/bptree/bptree"
)

// InitSentry configures the global sentry-go client. dsn may be empty, in
// which case events are dropped locally instead of sent anywhere — useful
// for running the commands without a Sentry project configured.
func InitSentry(dsn string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
	})
}

// Flush blocks for up to the given timeout, giving any queued event a
// chance to leave before the process exits.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// CapturePanic recovers from a panic (if any is in flight), reports it to
// Sentry, logs it locally, and re-panics so the caller's own cleanup still
// runs. Structural errors from bptree get a dedicated tag so they're easy
// to filter from ordinary crashes.
func CapturePanic() {
	r := recover()
	if r == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		var structuralErr *bptree.StructuralError
		if err, ok := r.(error); ok && errors.As(err, &structuralErr) {
			scope.SetTag("bptree.error_kind", "structural")
		}
		sentry.CurrentHub().RecoverWithContext(context.Background(), r)
	})
	Flush(2 * time.Second)
	log.Printf("recovered panic after reporting to sentry: %v", r)
	panic(r)
}
