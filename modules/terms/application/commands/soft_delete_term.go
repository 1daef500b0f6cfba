package commands

import (
	"context"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// SoftDeleteTermCommand marks a term deleted without removing it.
type SoftDeleteTermCommand struct {
	TermID types.TermID
}

type SoftDeleteTermHandler struct {
	repo      domain.TermRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewSoftDeleteTermHandler(repo domain.TermRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *SoftDeleteTermHandler {
	return &SoftDeleteTermHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *SoftDeleteTermHandler) Handle(ctx context.Context, cmd SoftDeleteTermCommand) (*domain.Term, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Term, error) {
		term, err := load(ctx, h.repo, cmd.TermID)
		if err != nil {
			return nil, err
		}

		term.SoftDelete()

		if err := saveAndPublish(ctx, h.repo, h.publisher, term); err != nil {
			return nil, err
		}
		return term, nil
	})
}

// RestoreTermCommand clears a soft delete.
type RestoreTermCommand struct {
	TermID types.TermID
}

type RestoreTermHandler struct {
	repo      domain.TermRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewRestoreTermHandler(repo domain.TermRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *RestoreTermHandler {
	return &RestoreTermHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

func (h *RestoreTermHandler) Handle(ctx context.Context, cmd RestoreTermCommand) (*domain.Term, error) {
	return transaction.ExecuteWithResult(ctx, h.txScope, func(ctx context.Context) (*domain.Term, error) {
		term, err := load(ctx, h.repo, cmd.TermID)
		if err != nil {
			return nil, err
		}

		term.Restore()

		if err := saveAndPublish(ctx, h.repo, h.publisher, term); err != nil {
			return nil, err
		}
		return term, nil
	})
}
