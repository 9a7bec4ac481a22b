package convert

// Package convert runs video conversions on top of the ffmpeg CLI. A Worker
// executes one job at a time in its own goroutine, streams normalized progress
// to a sink and hands back a single immutable model.Result.
