package commands

import (
	"io"
	"log/slog"
)

// buildLogger constructs the run logger. Logs go to stderr so stdout
// stays a clean report stream.
func buildLogger(out io.Writer, verbose bool, jsonLogs bool) *slog.Logger {
	var programLevel = new(slog.LevelVar)
	if verbose {
		programLevel.Set(slog.LevelDebug)
	} else {
		programLevel.Set(slog.LevelInfo)
	}

	options := &slog.HandlerOptions{
		Level:       programLevel,
		ReplaceAttr: redactSensitiveData,
	}
	if jsonLogs {
		return slog.New(slog.NewJSONHandler(out, options))
	}
	return slog.New(slog.NewTextHandler(out, options))
}

// redactSensitiveData scrubs credential material from log attributes.
func redactSensitiveData(groups []string, a slog.Attr) slog.Attr {
	sensitiveKeys := map[string]bool{
		"api_key": true, "app_key": true, "application_key": true,
		"token": true, "secret": true, "credential": true,
		"authorization": true, "password": true,
	}

	if sensitiveKeys[a.Key] {
		return slog.Attr{
			Key:   a.Key,
			Value: slog.StringValue("[REDACTED]"),
		}
	}
	return a
}
