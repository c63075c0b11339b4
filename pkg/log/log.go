package log

import (
	"fmt"
	"log/slog"
)

func Error(err error) slog.Attr {
	return slog.Group("error",
		slog.String("message", err.Error()),
		slog.String("stacktrace", fmt.Sprintf("%+v", err)),
	)
}
