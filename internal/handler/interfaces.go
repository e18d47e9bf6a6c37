package handler

//go:generate go tool mockery

import (
	"context"

	"sampleapp/internal/downstream"
	"sampleapp/internal/sample"
)

type SampleService interface {
	Users(ctx context.Context) ([]sample.User, error)
	Simulate() (sample.Message, error)
}

type ExternalChecker interface {
	CheckHealth(ctx context.Context) (*downstream.Result, error)
	URL() string
}

type MetricsSnapshotter interface {
	Snapshot() ([]byte, string, error)
}

type OperationRecorder interface {
	RecordUserOperation(operation, status string)
}

type ErrorReporter interface {
	Handle(ctx context.Context, err error)
}
