package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/student-management-api/internal/repository"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

// mutationRecorder is satisfied by *MetricsService.
type mutationRecorder interface {
	RecordMutation(entity, operation string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMutation(string, string) {}

// storeFailure maps an unexpected repository error. A rejected sort field is the
// caller's fault; anything else is logged and reported as internal.
func storeFailure(logger *zap.Logger, err error, message string) *appErrors.Error {
	if errors.Is(err, repository.ErrInvalidSort) {
		return appErrors.Clone(appErrors.ErrBadRequest, err.Error())
	}
	logger.Error(message, zap.Error(err))
	return appErrors.Internal(err, message)
}
