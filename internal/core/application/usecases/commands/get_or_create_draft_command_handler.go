package commands

import (
	"context"
	"errors"
	"sync"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

// GetOrCreateDraftCommandHandler handles the business logic for obtaining the
// current draft order.
//
// At most one order may be in Draft status at any time. The check-then-create
// sequence is serialized by a handler-scoped mutex so two concurrent requests
// cannot both observe "no draft" and both create one. The repository backs
// this up with a uniqueness constraint: if another process wins the race, the
// insert reports errs.ErrObjectAlreadyExists and the handler falls back to
// re-reading the draft that won.
//
// Example:
//
//	handler := NewGetOrCreateDraftCommandHandler(uowFactory)
//	draft, err := handler.Handle(ctx, NewGetOrCreateDraftCommand())
//	if err != nil {
//	    return fmt.Errorf("failed to obtain draft: %w", err)
//	}
type GetOrCreateDraftCommandHandler struct {
	uowFactory   UoWFactory
	draftFactory services.DraftFactory

	// createMu serializes the check-then-create sequence within this process.
	createMu *sync.Mutex
}

// NewGetOrCreateDraftCommandHandler creates a handler for draft retrieval/creation.
// Requires a UoWFactory for transactional persistence and catalog access.
func NewGetOrCreateDraftCommandHandler(uowFactory UoWFactory) GetOrCreateDraftCommandHandler {
	return GetOrCreateDraftCommandHandler{
		uowFactory:   uowFactory,
		draftFactory: services.NewDraftFactory(),
		createMu:     &sync.Mutex{},
	}
}

// Handle processes the command.
// Returns the existing draft when one exists; otherwise creates, persists,
// and returns a draft with the default composition.
func (h *GetOrCreateDraftCommandHandler) Handle(
	ctx context.Context,
	cmd GetOrCreateDraftCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.createMu.Lock()
	defer h.createMu.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	draft, err := orderRepo.GetDraft(ctx)
	if err == nil {
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return nil, commitErr
		}
		return draft, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	sizes, err := uow.CatalogReader().ListSizes(ctx)
	if err != nil {
		return nil, err
	}

	draft, err = h.draftFactory.CreateDraft(sizes)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, draft); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Another writer created the draft first; surrender and read theirs.
			_ = uow.Rollback(ctx)
			return h.readExistingDraft(ctx)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return draft, nil
}

// readExistingDraft re-reads the draft created by a concurrent writer.
func (h *GetOrCreateDraftCommandHandler) readExistingDraft(ctx context.Context) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draft, err := uow.OrderRepository().GetDraft(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return draft, nil
}
