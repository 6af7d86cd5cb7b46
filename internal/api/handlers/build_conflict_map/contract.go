package build_conflict_map

import (
	"context"

	buildConflictMap "github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
)

type BuildConflictMapUseCase interface {
	Execute(ctx context.Context, req *buildConflictMap.Request) (*buildConflictMap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
