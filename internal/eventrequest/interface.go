package eventrequest

import (
	"context"

	"event-approval/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Decide records the caller's decision as an approver.
	Decide(ctx context.Context, sc model.Scope, input DecideInput) (DecideOutput, error)
	ExportICS(ctx context.Context, sc model.Scope, id string) (ExportICSOutput, error)
}
