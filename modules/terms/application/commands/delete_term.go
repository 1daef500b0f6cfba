package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// DeleteTermCommand removes a term permanently.
type DeleteTermCommand struct {
	TermID types.TermID
}

// DeleteTermHandler handles the DeleteTermCommand.
type DeleteTermHandler struct {
	repo      domain.TermRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewDeleteTermHandler(repo domain.TermRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *DeleteTermHandler {
	return &DeleteTermHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the hard delete use case. TermDeleted carries the
// version the term had when it was removed.
func (h *DeleteTermHandler) Handle(ctx context.Context, cmd DeleteTermCommand) error {
	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		term, err := load(ctx, h.repo, cmd.TermID)
		if err != nil {
			return err
		}

		if err := h.repo.Delete(ctx, term.ID()); err != nil {
			return fmt.Errorf("deleting term: %w", err)
		}

		return publish(ctx, h.publisher, domain.NewTermDeleted(term.ID(), term.Version()))
	})
}
