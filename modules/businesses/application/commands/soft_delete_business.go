package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// SoftDeleteBusinessCommand marks a business deleted without removing it.
type SoftDeleteBusinessCommand struct {
	BusinessID types.BusinessID
}

type SoftDeleteBusinessHandler struct {
	repo      domain.BusinessRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewSoftDeleteBusinessHandler(repo domain.BusinessRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *SoftDeleteBusinessHandler {
	return &SoftDeleteBusinessHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *SoftDeleteBusinessHandler) Handle(ctx context.Context, cmd SoftDeleteBusinessCommand) (*domain.Business, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Business, error) {
		business, err := load(ctx, h.repo, cmd.BusinessID)
		if err != nil {
			return nil, err
		}

		business.SoftDelete()

		if err := saveAndPublish(ctx, h.repo, h.publisher, business); err != nil {
			return nil, err
		}
		return business, nil
	})
}

// RestoreBusinessCommand clears a soft delete.
type RestoreBusinessCommand struct {
	BusinessID types.BusinessID
}

type RestoreBusinessHandler struct {
	repo      domain.BusinessRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewRestoreBusinessHandler(repo domain.BusinessRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *RestoreBusinessHandler {
	return &RestoreBusinessHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *RestoreBusinessHandler) Handle(ctx context.Context, cmd RestoreBusinessCommand) (*domain.Business, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Business, error) {
		business, err := load(ctx, h.repo, cmd.BusinessID)
		if err != nil {
			return nil, err
		}

		business.Restore()

		if err := saveAndPublish(ctx, h.repo, h.publisher, business); err != nil {
			return nil, err
		}
		return business, nil
	})
}
