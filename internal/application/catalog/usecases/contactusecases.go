package usecases

import (
	"context"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/domain/subscription"
	apperrors "github.com/subflow-io/subflow/internal/shared/errors"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type CreateContactCommand struct {
	Name   string
	Email  string
	Phone  string
	UserID *uint
}

type CreateContactUseCase struct {
	contactRepo catalog.ContactRepository
	logger      logger.Interface
}

func NewCreateContactUseCase(
	contactRepo catalog.ContactRepository,
	logger logger.Interface,
) *CreateContactUseCase {
	return &CreateContactUseCase{contactRepo: contactRepo, logger: logger}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, cmd CreateContactCommand) (*catalog.Contact, error) {
	contact := &catalog.Contact{
		Name:   cmd.Name,
		Email:  cmd.Email,
		Phone:  cmd.Phone,
		UserID: cmd.UserID,
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, apperrors.NewInternalError("failed to create contact")
	}

	uc.logger.Infow("contact created", "id", contact.ID, "name", contact.Name)
	return contact, nil
}

type UpdateContactCommand struct {
	ContactID uint
	Name      *string
	Email     *string
	Phone     *string
	UserID    **uint
}

type UpdateContactUseCase struct {
	contactRepo catalog.ContactRepository
	logger      logger.Interface
}

func NewUpdateContactUseCase(
	contactRepo catalog.ContactRepository,
	logger logger.Interface,
) *UpdateContactUseCase {
	return &UpdateContactUseCase{contactRepo: contactRepo, logger: logger}
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, cmd UpdateContactCommand) (*catalog.Contact, error) {
	contact, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "error", err, "id", cmd.ContactID)
		return nil, apperrors.NewInternalError("failed to get contact")
	}
	if contact == nil {
		return nil, apperrors.NewNotFoundError("contact not found")
	}

	if cmd.Name != nil {
		contact.Name = *cmd.Name
	}
	if cmd.Email != nil {
		contact.Email = *cmd.Email
	}
	if cmd.Phone != nil {
		contact.Phone = *cmd.Phone
	}
	if cmd.UserID != nil {
		contact.UserID = *cmd.UserID
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, apperrors.NewInternalError("failed to update contact")
	}

	uc.logger.Infow("contact updated", "id", contact.ID, "name", contact.Name)
	return contact, nil
}

type DeleteContactCommand struct {
	ContactID uint
}

type DeleteContactUseCase struct {
	contactRepo      catalog.ContactRepository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewDeleteContactUseCase(
	contactRepo catalog.ContactRepository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *DeleteContactUseCase {
	return &DeleteContactUseCase{
		contactRepo:      contactRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeleteContactUseCase) Execute(ctx context.Context, cmd DeleteContactCommand) error {
	contact, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "error", err, "id", cmd.ContactID)
		return apperrors.NewInternalError("failed to get contact")
	}
	if contact == nil {
		return apperrors.NewNotFoundError("contact not found")
	}

	_, total, err := uc.subscriptionRepo.List(ctx, subscription.ListFilter{ContactID: cmd.ContactID, Limit: 1})
	if err != nil {
		return apperrors.NewInternalError("failed to check contact usage")
	}
	if total > 0 {
		return apperrors.NewInvalidStateError("cannot delete contact with linked subscriptions")
	}

	if err := uc.contactRepo.Delete(ctx, cmd.ContactID); err != nil {
		return apperrors.NewInternalError("failed to delete contact")
	}

	uc.logger.Infow("contact deleted", "id", cmd.ContactID)
	return nil
}

type GetContactCommand struct {
	ContactID uint
	// ScopeContactID limits the read to one contact; the handler sets it for
	// portal callers. Nil reads any contact.
	ScopeContactID *uint
}

type GetContactUseCase struct {
	contactRepo catalog.ContactRepository
	logger      logger.Interface
}

func NewGetContactUseCase(
	contactRepo catalog.ContactRepository,
	logger logger.Interface,
) *GetContactUseCase {
	return &GetContactUseCase{contactRepo: contactRepo, logger: logger}
}

func (uc *GetContactUseCase) Execute(ctx context.Context, cmd GetContactCommand) (*catalog.Contact, error) {
	contact, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "error", err, "id", cmd.ContactID)
		return nil, apperrors.NewInternalError("failed to get contact")
	}
	if contact == nil {
		return nil, apperrors.NewNotFoundError("contact not found")
	}

	if cmd.ScopeContactID != nil && contact.ID != *cmd.ScopeContactID {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	return contact, nil
}

type ListContactsCommand struct {
	Pagination utils.Pagination
}

type ListContactsUseCase struct {
	contactRepo catalog.ContactRepository
	logger      logger.Interface
}

func NewListContactsUseCase(
	contactRepo catalog.ContactRepository,
	logger logger.Interface,
) *ListContactsUseCase {
	return &ListContactsUseCase{contactRepo: contactRepo, logger: logger}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, cmd ListContactsCommand) ([]*catalog.Contact, int64, error) {
	contacts, total, err := uc.contactRepo.List(ctx, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list contacts", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list contacts")
	}

	return contacts, total, nil
}
