package ir

import (
	"context"
	"log/slog"

	"github.com/bigH/sorbet/frontend/names"
)

// slogExpr wraps an Expr as a slog.LogValuer to not render expression
// strings unless they definitely need to be logged
func slogExpr(tbl *names.Table, expr Expr) slog.LogValuer {
	return exprLogValuer{tbl, expr}
}

type exprLogValuer struct {
	tbl *names.Table
	Expr
}

func (l exprLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", ExprString(l.tbl, l.Expr)),
		slog.String("kind", l.ExprName()),
		slog.String("pos", RangeOf(l).String()),
	)
}

// TreeSlogHandler is a slog.Handler capable of lazy-printing lowered
// expression trees.
func TreeSlogHandler(tbl *names.Table, underlying slog.Handler) slog.Handler {
	return &exprLogHandler{tbl: tbl, underlying: underlying}
}

type exprLogHandler struct {
	tbl        *names.Table
	underlying slog.Handler
}

func (l *exprLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *exprLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Value.Kind() == slog.KindAny {
			if value, ok := attr.Value.Any().(Expr); ok {
				newRecord.Add(attr.Key, slogExpr(l.tbl, value))
				return true
			}
		}
		newRecord.Add(attr)
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *exprLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for i, attr := range attrs {
		if attr.Value.Kind() == slog.KindAny {
			if value, ok := attr.Value.Any().(Expr); ok {
				attr.Value = slog.AnyValue(slogExpr(l.tbl, value))
				attrs[i] = attr
			}
		}
	}
	return TreeSlogHandler(l.tbl, l.underlying.WithAttrs(attrs))
}

func (l *exprLogHandler) WithGroup(name string) slog.Handler {
	return TreeSlogHandler(l.tbl, l.underlying.WithGroup(name))
}
