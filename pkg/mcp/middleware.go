package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gtarraga/linear-mcp/pkg/mcp"

// toolCallMiddleware wraps every tool handler with a per-invocation id,
// timing logs and an OpenTelemetry span. The span is recorded through the
// global tracer provider, so it is a no-op unless the embedding process
// installs one.
func toolCallMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		toolName := request.Params.Name
		invocationID := uuid.NewString()

		ctx, span := otel.Tracer(tracerName).Start(ctx, "tools/call "+toolName,
			trace.WithAttributes(
				attribute.String("mcp.tool.name", toolName),
				attribute.String("mcp.tool.invocation_id", invocationID),
			),
		)
		defer span.End()

		slog.Debug("Tool call started", "tool", toolName, "invocation_id", invocationID)
		start := time.Now()
		result, err := next(ctx, request)
		duration := time.Since(start)

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration.Seconds()))
		switch {
		case err != nil:
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Tool call failed", "tool", toolName, "invocation_id", invocationID, "duration", duration, "error", err)
		case result != nil && result.IsError:
			span.SetStatus(codes.Error, "tool returned an error result")
			slog.Warn("Tool call returned an error result", "tool", toolName, "invocation_id", invocationID, "duration", duration)
		default:
			span.SetStatus(codes.Ok, "")
			slog.Info("Tool call completed", "tool", toolName, "invocation_id", invocationID, "duration", duration)
		}

		return result, err
	}
}
