package logs

import (
	"context"
	"crypto/rand"
)

type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		var args []any
		if parent, ok := ctx.Value(SpanKey).(Span); ok {
			args = append(args, "parent", parent)
		}
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		logger.DebugContext(ctx, "span: "+what, args...)
		return ctx, span
	}
}
