// Command exportholidays writes the computed Turkish or TRNC holiday table
// for a range of years as CSV, JSON or CBOR.
//
// Lunar holidays come from the package's linear projection, so the table
// is only as accurate as that approximation.
//
// Usage:
//
//	go run ./cmd/exportholidays --region trnc --from 2024 --to 2026 --output holidays.csv
//	go run ./cmd/exportholidays --format csv --encoding iso-8859-9 > holidays.csv
package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// initLogger sends logs to stderr so exported data on stdout stays clean.
// LOG_LEVEL overrides the default info level.
func initLogger() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := logrus.ParseLevel(strings.ToLower(lvl))
		if err != nil {
			logger.Warnf("ignoring LOG_LEVEL %q: %v", lvl, err)
			return
		}
		logger.SetLevel(level)
	}
}

func main() {
	initLogger()

	if err := newRootCmd().Execute(); err != nil {
		logger.WithError(err).Error("export failed")
		os.Exit(1)
	}
}
