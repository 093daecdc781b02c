package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

type GetRun interface {
	Query(ctx context.Context, id uuid.UUID) (domain.RunRecord, error)
}

type GetRunImpl struct {
	runRepo domain.RunRepository
}

func NewGetRunImpl(r domain.RunRepository) GetRunImpl {
	return GetRunImpl{
		runRepo: r,
	}
}

func (gr GetRunImpl) Query(ctx context.Context, id uuid.UUID) (domain.RunRecord, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	record, found, err := gr.runRepo.GetRun(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RunRecord{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("run %s not found", id))
		return domain.RunRecord{}, err
	}

	return record, nil
}

type InitGetRun struct {
	RunRepo domain.RunRepository `resolve:""`
}

func (igr InitGetRun) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetRun](NewGetRunImpl(igr.RunRepo))

	return ctx, nil
}
