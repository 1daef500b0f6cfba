package commands

import (
	"context"
	"fmt"

	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/events"
	"github.com/rai/clean-directory-go/modules/shared/transaction"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// DeleteBusinessCommand removes a business permanently.
type DeleteBusinessCommand struct {
	BusinessID types.BusinessID
}

// DeleteBusinessHandler handles the DeleteBusinessCommand.
type DeleteBusinessHandler struct {
	repo      domain.BusinessRepository
	txScope   transaction.Scope
	publisher events.Publisher[domain.Event]
}

func NewDeleteBusinessHandler(repo domain.BusinessRepository, txScope transaction.Scope, publisher events.Publisher[domain.Event]) *DeleteBusinessHandler {
	return &DeleteBusinessHandler{
		repo:      repo,
		txScope:   txScope,
		publisher: publisher,
	}
}

// Handle executes the hard delete use case. BusinessDeleted carries the
// version the business had when it was removed.
func (h *DeleteBusinessHandler) Handle(ctx context.Context, cmd DeleteBusinessCommand) error {
	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		business, err := load(ctx, h.repo, cmd.BusinessID)
		if err != nil {
			return err
		}

		if err := h.repo.Delete(ctx, business.ID()); err != nil {
			return fmt.Errorf("deleting business: %w", err)
		}

		return publish(ctx, h.publisher, domain.NewBusinessDeleted(business.ID(), business.Version()))
	})
}
