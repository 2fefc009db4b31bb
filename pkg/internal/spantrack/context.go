package spantrack

import "context"

type stackKey struct{}

// ContextWithStack returns a context carrying the given span stack. This is
// the supported way for a logical task to keep its span context across a
// suspension point or a goroutine hand-off.
func ContextWithStack(ctx context.Context, stack *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, stack)
}

// StackFromContext returns the span stack carried by ctx, if any.
func StackFromContext(ctx context.Context) (*Stack, bool) {
	stack, ok := ctx.Value(stackKey{}).(*Stack)
	return stack, ok
}
