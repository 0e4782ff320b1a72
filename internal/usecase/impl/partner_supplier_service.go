package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type partnerSupplierService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	repo       repository.PartnerSupplierRepository
	hasher     service.PasswordHasher
	mailSender service.MailSender
	logger     *slog.Logger
}

// PartnerSupplierServiceParams holds dependencies for PartnerSupplierService, injected by Fx.
type PartnerSupplierServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Repo       repository.PartnerSupplierRepository
	Hasher     service.PasswordHasher
	MailSender service.MailSender
	Logger     *slog.Logger
}

// NewPartnerSupplierService is the constructor for partnerSupplierService.
func NewPartnerSupplierService(params PartnerSupplierServiceParams) usecase.PartnerSupplierUsecase {
	return &partnerSupplierService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		repo:       params.Repo,
		hasher:     params.Hasher,
		mailSender: params.MailSender,
		logger:     params.Logger,
	}
}

func (srv *partnerSupplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *partnerSupplierService) Create(
	ctx context.Context,
	profileInput *usecase.CreatePartnerSupplierInput,
	userInput *usecase.CreateUserInput,
) (*usecase.PartnerSupplierRegistration, error) {
	exists, err := srv.userRepo.ExistsByEmail(ctx, userInput.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}

	passwordHash, err := hashPassword(srv.hasher, userInput.Password)
	if err != nil {
		return nil, err
	}

	partner := profileInput.ToEntity()
	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPartnerSupplierRepository().Create(ctx, partner); err != nil {
			return err
		}

		linked, err := newLinkedUser(userInput, passwordHash, entity.ProfileLink{
			Kind: entity.ProfileKindPartnerSupplier,
			ID:   partner.ID,
		})
		if err != nil {
			return err
		}
		if err := repoFactory.NewUserRepository().Create(ctx, linked); err != nil {
			return err
		}
		user = linked

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register partner supplier")
	}

	srv.log(ctx).Info("Partner supplier registered",
		slog.String("partner_supplier_id", partner.ID.String()),
		slog.String("user_id", user.ID.String()),
	)
	srv.sendMail(ctx, registrationReceivedMail(user.Email, partner))

	return &usecase.PartnerSupplierRegistration{PartnerSupplier: partner, User: user}, nil
}

func (srv *partnerSupplierService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePartnerSupplierInput) (*entity.PartnerSupplier, error) {
	var updated *entity.PartnerSupplier

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPartnerSupplierRepository()

		partner, err := repo.FindByID(ctx, id)
		if err != nil {
			return translateNotFound(err, repository.ErrPartnerSupplierNotFound, domainerrors.ErrPartnerSupplierNotFound)
		}

		input.ApplyTo(partner)
		if err := repo.Update(ctx, partner); err != nil {
			return translateNotFound(err, repository.ErrPartnerSupplierNotFound, domainerrors.ErrPartnerSupplierNotFound)
		}

		if input.Address != nil {
			if err := replaceAddress(ctx, repoFactory.NewAddressRepository(), partner.Address, input.Address); err != nil {
				return err
			}
		}
		updated = partner

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update partner supplier")
	}

	return updated, nil
}

// UpdateStatus is a no-op when the partner already has status.
func (srv *partnerSupplierService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) (*entity.PartnerSupplier, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidPartnerStatus
	}

	partner, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrPartnerSupplierNotFound, domainerrors.ErrPartnerSupplierNotFound)
	}
	if partner.Status == status {
		return partner, nil
	}

	if err := srv.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, translateNotFound(err, repository.ErrPartnerSupplierNotFound, domainerrors.ErrPartnerSupplierNotFound)
	}

	previous := partner.Status
	partner.Status = status
	srv.log(ctx).Info("Partner supplier status changed",
		slog.String("partner_supplier_id", id.String()),
		slog.String("from", previous.String()),
		slog.String("to", status.String()),
	)

	srv.notifyStatus(ctx, partner)

	return partner, nil
}

func (srv *partnerSupplierService) FindAll(ctx context.Context) ([]*entity.PartnerSupplier, error) {
	partners, err := srv.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partner suppliers")
	}

	return partners, nil
}

func (srv *partnerSupplierService) FindOne(ctx context.Context, id uuid.UUID) (*entity.PartnerSupplier, error) {
	partner, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrPartnerSupplierNotFound, domainerrors.ErrPartnerSupplierNotFound)
	}

	return partner, nil
}

func (srv *partnerSupplierService) notifyStatus(ctx context.Context, partner *entity.PartnerSupplier) {
	user, err := srv.userRepo.FindByPartnerSupplierID(ctx, partner.ID)
	if err != nil {
		srv.log(ctx).Warn("No account to notify of status change",
			slog.String("partner_supplier_id", partner.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	if mail := statusChangedMail(user.Email, partner); mail != nil {
		srv.sendMail(ctx, mail)
	}
}

// sendMail never fails the caller; the write it reports on is already committed.
func (srv *partnerSupplierService) sendMail(ctx context.Context, mail *service.Mail) {
	if err := srv.mailSender.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send mail",
			slog.String("subject", mail.Subject),
			slog.Any("error", err),
		)
	}
}
