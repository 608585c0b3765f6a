package utils

import (
	"context"
	"log/slog"
)

func Check(e error) {
	if e != nil {
		slog.Error("Unexpected Error", "error", e)
		panic(e)
	}
}

func logAt(level slog.Level, e error, msg string, args ...any) {
	if e == nil {
		return
	}
	slog.Log(context.Background(), level, msg, append([]any{"error", e}, args...)...)
}

func Loge(e error, args ...any) {
	logAt(slog.LevelError, e, "", args...)
}

func Logwe(e error, args ...any) {
	logAt(slog.LevelWarn, e, "", args...)
}

func Logie(e error, args ...any) {
	logAt(slog.LevelInfo, e, "", args...)
}

func Logde(e error, args ...any) {
	logAt(slog.LevelDebug, e, "", args...)
}
