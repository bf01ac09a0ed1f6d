package logs

import "context"

type sourceKeyType struct{}

var SourceKey sourceKeyType

// WithSource tags the context with the name of the program text being
// scanned; the handler attaches it to every record.
func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, SourceKey, name)
}
