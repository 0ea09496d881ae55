package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const serviceName = "rewards-indexer"

type traceID struct{}

// InjectTraceID attaches a fresh run identity to the context: a traceId and
// service field on the zerolog logger, plus the raw id retrievable through
// TraceID.
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	logger := log.With().
		Str("service", serviceName).
		Str("traceId", id).
		Logger()
	return logger.WithContext(context.WithValue(ctx, traceID{}, id))
}

// TraceID returns the identifier injected by InjectTraceID, or an empty
// string when the context carries none.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceID{}).(string)
	return id
}
