package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/go-preform/orderkitchen/stringMap"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	TraceIdGenerator = traceId
)

func traceId() int64 {
	return time.Now().UnixNano()
}

// traceInput flattens dishes so span attributes stay readable.
func traceInput(input any) any {
	if d, ok := input.(Dish); ok {
		return stringMap.FromStruct(d)
	}
	return input
}

type ChainTraceableKitchen []ITraceableKitchen

func NewChainTraceableKitchen(deps ...ITraceableKitchen) *ChainTraceableKitchen {
	var chain = ChainTraceableKitchen(deps)
	return &chain
}

func (d ChainTraceableKitchen) StartTrace(ctx context.Context, id string, spanName string, input any) (context.Context, ITraceSpan) {
	var (
		spans = make([]ITraceSpan, len(d))
		span  ITraceSpan
	)
	for i, dep := range d {
		ctx, span = dep.StartTrace(ctx, id, spanName, input)
		spans[i] = span
	}
	return ctx, &chainTraceSpan{spans: spans}
}

type chainTraceSpan struct {
	spans []ITraceSpan
}

func (c chainTraceSpan) logSideEffect(ctx context.Context, instanceName string, toLog []any) (context.Context, ITraceSpan) {
	var (
		subSpan = &chainTraceSpan{spans: make([]ITraceSpan, len(c.spans))}
	)
	for i, span := range c.spans {
		ctx, subSpan.spans[i] = span.logSideEffect(ctx, instanceName, toLog)
	}
	return ctx, subSpan
}

func (c chainTraceSpan) End(output any, err error) {
	for _, span := range c.spans {
		span.End(output, err)
	}
}

func (c chainTraceSpan) AddEvent(name string, attrSets ...map[string]any) {
	for _, span := range c.spans {
		span.AddEvent(name, attrSets...)
	}
}

func (c chainTraceSpan) SetAttributes(key string, value any) {
	for _, span := range c.spans {
		span.SetAttributes(key, value)
	}
}

type ZeroLogTraceableKitchen struct {
	Logger *zerolog.Logger
}

type zeroLogTraceSpan struct {
	logger *zerolog.Logger
}

func NewZeroLogTraceableKitchen(l *zerolog.Logger) *ZeroLogTraceableKitchen {
	return &ZeroLogTraceableKitchen{Logger: l}
}

func (d ZeroLogTraceableKitchen) StartTrace(ctx context.Context, id string, spanName string, input any) (context.Context, ITraceSpan) {
	if d.Logger.GetLevel() > zerolog.DebugLevel {
		return ctx, &zeroLogTraceSpan{d.Logger}
	}
	logger := d.Logger.With().Str("traceId", id).Str("op", spanName).Logger()
	logger.Debug().Interface("input", traceInput(input)).Msg("call")
	return ctx, &zeroLogTraceSpan{logger: &logger}
}

func (c zeroLogTraceSpan) logSideEffect(ctx context.Context, instanceName string, toLog []any) (context.Context, ITraceSpan) {
	if c.logger.GetLevel() > zerolog.DebugLevel {
		return ctx, &zeroLogTraceSpan{c.logger}
	}
	logger := c.logger.With().Str("sideEffect", instanceName).Logger()
	logger.Debug().Interface("desc", toLog).Msg("call")
	return ctx, &zeroLogTraceSpan{logger: &logger}
}

func (d zeroLogTraceSpan) End(output any, err error) {
	d.logger.Debug().Str("output", fmt.Sprintf("%v", output)).Err(err).Msg("return")
}

func (d zeroLogTraceSpan) AddEvent(name string, attrSets ...map[string]any) {
	d.logger.Debug().Interface("event", name).Interface("attrs", attrSets).Msg("event")
}

func (d zeroLogTraceSpan) SetAttributes(key string, value any) {
	d.logger.Debug().Interface(key, value).Msg("attrs")
}

type otelTraceableKitchen struct {
	t trace.Tracer
}

func NewOtelTraceableKitchen(t trace.Tracer) *otelTraceableKitchen {
	return &otelTraceableKitchen{t: t}
}

func (d otelTraceableKitchen) StartTrace(ctx context.Context, id string, spanName string, input any) (context.Context, ITraceSpan) {
	ctx, span := d.t.Start(ctx, spanName, trace.WithAttributes(attribute.String("traceId", id), attribute.String("input", fmt.Sprintf("%v", traceInput(input)))))
	return ctx, &otelTraceSpan{span: span, t: d.t}
}

type otelTraceSpan struct {
	span trace.Span
	t    trace.Tracer
}

func (o otelTraceSpan) logSideEffect(ctx context.Context, instanceName string, toLog []any) (context.Context, ITraceSpan) {
	ctx, span := o.t.Start(ctx, "sideEffect:"+instanceName, trace.WithAttributes(attribute.String("desc", fmt.Sprintf("%v", toLog))))
	return ctx, &otelTraceSpan{span: span, t: o.t}
}

func (o otelTraceSpan) End(output any, err error) {
	o.span.SetAttributes(attribute.String("output", fmt.Sprintf("%v", output)), attribute.String("error", fmt.Sprintf("%v", err)))
	o.span.End()
}

func (o otelTraceSpan) AddEvent(name string, attrSets ...map[string]any) {
	if len(attrSets) == 0 {
		o.span.AddEvent(name)
		return
	}
	o.span.AddEvent(name, trace.WithAttributes(makeAttr(attrSets...)...))
}

func (o otelTraceSpan) SetAttributes(key string, value any) {
	o.span.SetAttributes(makeKv(key, value))
}

func makeAttr(attrSets ...map[string]any) []attribute.KeyValue {
	var kvs []attribute.KeyValue
	for _, attrs := range attrSets {
		for k, v := range attrs {
			kvs = append(kvs, makeKv(k, v))
		}
	}
	return kvs
}

func makeKv(k string, v any) attribute.KeyValue {
	switch val := v.(type) {
	case string:
		return attribute.String(k, val)
	case uint:
		return attribute.Int64(k, int64(val))
	case uint32:
		return attribute.Int64(k, int64(val))
	case uint64:
		return attribute.Int64(k, int64(val))
	case int:
		return attribute.Int(k, val)
	case int32:
		return attribute.Int64(k, int64(val))
	case int64:
		return attribute.Int64(k, val)
	case float64:
		return attribute.Float64(k, val)
	case bool:
		return attribute.Bool(k, val)
	case CuisineType:
		return attribute.String(k, val.String())
	default:
		return attribute.String(k, fmt.Sprintf("%v", v))
	}
}
