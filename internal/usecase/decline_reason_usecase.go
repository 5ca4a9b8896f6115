package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidDeclineReason = errors.New("invalid decline reason")

// defaultDeclineReasons are seeded when the table is empty.
var defaultDeclineReasons = []entities.DeclineReason{
	{Reason: "Too expensive"},
	{Reason: "Will do it later"},
	{Reason: "Going elsewhere"},
	{Reason: "Other", RequiresNotes: true},
}

type CreateDeclineReasonInput struct {
	Reason        string
	RequiresNotes bool
	SortOrder     int
}

type IDeclineReasonUseCase interface {
	List(ctx context.Context) ([]entities.DeclineReason, error)
	Create(ctx context.Context, in CreateDeclineReasonInput) (entities.DeclineReason, error)
	EnsureDefaults(ctx context.Context) error
}

type DeclineReasonUseCase struct {
	repo interfaces.IDeclineReasonRepository
	now  func() time.Time
}

var _ IDeclineReasonUseCase = (*DeclineReasonUseCase)(nil)

func NewDeclineReasonUseCase(repo interfaces.IDeclineReasonRepository) *DeclineReasonUseCase {
	return &DeclineReasonUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *DeclineReasonUseCase) List(ctx context.Context) ([]entities.DeclineReason, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].Reason < list[j].Reason
	})
	return list, nil
}

func (u *DeclineReasonUseCase) Create(ctx context.Context, in CreateDeclineReasonInput) (entities.DeclineReason, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return entities.DeclineReason{}, ErrInvalidDeclineReason
	}
	return u.repo.Create(ctx, entities.DeclineReason{
		ID:            uuid.NewString(),
		Reason:        reason,
		RequiresNotes: in.RequiresNotes,
		SortOrder:     in.SortOrder,
		CreatedAt:     u.now(),
	})
}

// EnsureDefaults seeds the system reasons on an empty table.
func (u *DeclineReasonUseCase) EnsureDefaults(ctx context.Context) error {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i, r := range defaultDeclineReasons {
		r.ID = uuid.NewString()
		r.IsSystem = true
		r.SortOrder = i
		r.CreatedAt = u.now()
		if _, err := u.repo.Create(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
