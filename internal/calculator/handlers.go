package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-chi-calculator/internal/expression"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

const (
	codeInvalidRequest  = "invalid_request"
	codeRequestTooLarge = "request_too_large"
	codeInternal        = "internal_error"
)

// Handler serves the calculator endpoints.
type Handler struct {
	maxBodyBytes int64
}

// NewHandler returns a Handler that rejects request bodies larger than
// maxBodyBytes.
func NewHandler(maxBodyBytes int64) *Handler {
	return &Handler{maxBodyBytes: maxBodyBytes}
}

// Evaluate handles POST /calculator/evaluate
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req EvaluateRequest
	if err := h.decode(w, r, &req); err != nil {
		status, code := decodeFailure(err)
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", code, "invalid request body", err, status, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.expression", req.Expression))

	start := time.Now()
	res, err := expression.Evaluate(req.Expression)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		status, code := evaluationFailure(err)
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", code, err.Error(), err, status, w)
		return
	}

	recordResult(ctx, res, elapsed)

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.String("notation", string(res.Notation)),
		attribute.Float64("result", res.Value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("calculator.notation", string(res.Notation)),
		attribute.Float64("calculator.result", res.Value),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("expression evaluated",
		zap.String("expression", req.Expression),
		zap.String("notation", string(res.Notation)),
		zap.String("result", res.String()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Expression: req.Expression,
		Result:     res.String(),
		Value:      res.Value,
		Variable:   res.Variable,
		Notation:   string(res.Notation),
	})
}

// Batch handles POST /calculator/batch. Every expression is evaluated in its
// own child span; a failing expression is reported in its item and does not
// stop the rest.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.batch",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req BatchRequest
	if err := h.decode(w, r, &req); err != nil {
		status, code := decodeFailure(err)
		observability.RecordError(ctx, span, logger, errorCounter, "batch", code, "invalid request body", err, status, w)
		return
	}

	if len(req.Expressions) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", codeInvalidRequest, "no expressions provided", errors.New("expressions array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.size", len(req.Expressions)))
	batchSize.Record(ctx, int64(len(req.Expressions)))

	logger.Info("starting batch evaluation",
		zap.Int("expressions", len(req.Expressions)),
		zap.String("request_id", requestID),
	)

	resp := BatchResponse{Items: make([]BatchItem, 0, len(req.Expressions))}

	for i, input := range req.Expressions {
		_, itemSpan := tracer.Start(ctx, fmt.Sprintf("calculator.batch.item.%d", i),
			trace.WithAttributes(
				attribute.Int("batch.item.index", i),
				attribute.String("calculator.expression", input),
			),
		)

		start := time.Now()
		res, err := expression.Evaluate(input)
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0

		if err != nil {
			_, code := evaluationFailure(err)
			itemSpan.RecordError(err)
			itemSpan.SetStatus(codes.Error, err.Error())
			itemSpan.SetAttributes(attribute.String("error.code", code))
			itemSpan.End()

			errorCounter.Add(ctx, 1, metric.WithAttributes(
				attribute.String("operation", "batch"),
				attribute.String("code", code),
			))

			logger.Warn("batch item failed",
				zap.Int("index", i),
				zap.String("expression", input),
				zap.String("code", code),
				zap.Error(err),
			)

			resp.Items = append(resp.Items, BatchItem{Expression: input, Error: err.Error(), Code: code})
			resp.Failed++
			continue
		}

		recordResult(ctx, res, elapsed)

		itemSpan.AddEvent("evaluation.complete", trace.WithAttributes(
			attribute.Float64("result", res.Value),
		))
		itemSpan.SetAttributes(
			attribute.String("calculator.notation", string(res.Notation)),
			attribute.Float64("calculator.result", res.Value),
		)
		itemSpan.SetStatus(codes.Ok, "")
		itemSpan.End()

		logger.Debug("batch item evaluated",
			zap.Int("index", i),
			zap.String("expression", input),
			zap.String("result", res.String()),
			zap.Float64("duration_ms", elapsed),
		)

		value := res.Value
		resp.Items = append(resp.Items, BatchItem{
			Expression: input,
			Result:     res.String(),
			Value:      &value,
			Variable:   res.Variable,
			Notation:   string(res.Notation),
		})
		resp.Succeeded++
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("succeeded", resp.Succeeded),
		attribute.Int("failed", resp.Failed),
	))
	span.SetAttributes(
		attribute.Int("batch.succeeded", resp.Succeeded),
		attribute.Int("batch.failed", resp.Failed),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("batch evaluation completed",
		zap.Int("succeeded", resp.Succeeded),
		zap.Int("failed", resp.Failed),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// decode reads a single JSON object from the size-limited request body.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func decodeFailure(err error) (status int, code string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, codeRequestTooLarge
	}
	return http.StatusBadRequest, codeInvalidRequest
}

func evaluationFailure(err error) (status int, code string) {
	var coder expression.Coder
	if errors.As(err, &coder) {
		return http.StatusUnprocessableEntity, coder.Code()
	}
	return http.StatusInternalServerError, codeInternal
}

func recordResult(ctx context.Context, res expression.Result, elapsedMs float64) {
	attrs := metric.WithAttributes(attribute.String("notation", string(res.Notation)))
	evalCounter.Add(ctx, 1, attrs)
	evalHistogram.Record(ctx, elapsedMs, attrs)
	resultGauge.Record(ctx, res.Value, attrs)
}
