package util

import (
	"log/slog"
	"sync/atomic"
	"time"
)

var slogMeasureID = &atomic.Int64{}

// SLogSampleRepeated returns a function that logs the time since its previous call along with a running average. Each
// call counts as one sample of functionName.
func SLogSampleRepeated(functionName string, args ...any) func(args ...any) {
	var (
		sampleID = 1
		then     = time.Now()
		last     = then
	)

	return func(sampleArgs ...any) {
		var (
			now        = time.Now()
			timingArgs = []any{
				slog.String("fn", functionName),
				slog.Int("sample_id", sampleID),
				slog.Duration("elapsed", now.Sub(last)),
				slog.Duration("avg_elapsed", now.Sub(then)/time.Duration(sampleID)),
				slog.Duration("total_elapsed", now.Sub(then)),
			}
		)

		allArgs := append(append(append([]any{}, args...), sampleArgs...), timingArgs...)
		slog.Info("SLogSampleRepeated", allArgs...)

		last = now
		sampleID += 1
	}
}

// SLogMeasureFunction logs an enter record immediately and returns a function that logs the matching exit record
// with the elapsed time.
func SLogMeasureFunction(functionName string, args ...any) func(args ...any) {
	var (
		then          = time.Now()
		measurementID = slogMeasureID.Add(1)
		allArgs       = append(append([]any{}, args...), slog.String("fn", functionName), slog.Int64("measurement_id", measurementID))
	)

	slog.Info("SLogMeasureFunction", append(allArgs, slog.String("state", "enter"))...)

	return func(exitArgs ...any) {
		record := append(append([]any{}, allArgs...), slog.Duration("elapsed", time.Since(then)), slog.String("state", "exit"))
		slog.Info("SLogMeasureFunction", append(record, exitArgs...)...)
	}
}

func SLogError(msg string, err error, args ...any) {
	allArgs := append([]any{slog.String("err", err.Error())}, args...)
	slog.Error(msg, allArgs...)
}
