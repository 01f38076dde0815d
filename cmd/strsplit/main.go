package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := command(logger).Execute(); err != nil {
		_ = level.Error(logger).Log("msg", "strsplit failed", "err", err)
		os.Exit(1)
	}
}
