// Package errutil logs and inspects errors built with samber/oops.
package errutil

import (
	"context"
	"fmt"

	"github.com/samber/oops"

	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// LogError logs err at error level. For oops errors the code and context are
// logged as separate attributes.
func LogError(ctx context.Context, logger logging.Logger, msg string, err error) {
	attrs := []any{"error", err.Error()}
	if oopsErr, ok := oops.AsOops(err); ok {
		if code := codeOf(oopsErr); code != "" {
			attrs = append(attrs, "code", code)
		}
		if octx := oopsErr.Context(); len(octx) > 0 {
			attrs = append(attrs, "context", octx)
		}
	}
	logger.Error(ctx, msg, attrs...)
}

// LogWarn is LogError at warn level, for failures the caller recovers from.
func LogWarn(ctx context.Context, logger logging.Logger, msg string, err error) {
	attrs := []any{"error", err.Error()}
	if oopsErr, ok := oops.AsOops(err); ok {
		if code := codeOf(oopsErr); code != "" {
			attrs = append(attrs, "code", code)
		}
	}
	logger.Warn(ctx, msg, attrs...)
}

// codeOf returns the oops code of o as a string, or "" when unset.
func codeOf(o oops.OopsError) string {
	c := fmt.Sprint(o.Code())
	if c == "<nil>" {
		return ""
	}
	return c
}
