package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger returns a logger writing text records to w and, when path is not
// empty, JSON records to the file at path. The returned function closes that
// file.
func newLogger(w io.Writer, path string, level *slog.LevelVar) (*slog.Logger, func() error, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
	}

	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
