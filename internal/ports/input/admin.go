package input

import "context"

// AdminUseCase is ungated; the transport checks ownership before calling it.
type AdminUseCase interface {
	InitService(ctx context.Context) error
	ResetService(ctx context.Context) error
}
