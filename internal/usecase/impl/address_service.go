// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo    repository.AddressRepository
	TxManager      repository.TransactionManager
	Distance       service.DistanceCalculator
	Publisher      service.EventPublisher
	SearchRecorder service.SearchRecorder `optional:"true"`
	Logger         *slog.Logger
}

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo    repository.AddressRepository
	txManager      repository.TransactionManager
	distance       service.DistanceCalculator
	publisher      service.EventPublisher
	searchRecorder service.SearchRecorder
	logger         *slog.Logger
	now            func() time.Time
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo:    params.AddressRepo,
		txManager:      params.TxManager,
		distance:       params.Distance,
		publisher:      params.Publisher,
		searchRecorder: params.SearchRecorder,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *addressService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress validates and stores a new address.
func (srv *addressService) CreateAddress(ctx context.Context, input *usecase.CreateAddressInput) (*entity.Address, error) {
	address := &entity.Address{
		Name:      input.Name,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	if err := srv.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.getLogger(ctx).Info("Address created", slog.Uint64("address_id", address.ID))
	srv.publish(ctx, service.AddressCreated, address)

	return address, nil
}

// GetAddress retrieves an address by its ID.
func (srv *addressService) GetAddress(ctx context.Context, id uint64) (*entity.Address, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id, "failed to find address")
	}

	return address, nil
}

// ListAddresses retrieves one page of addresses in ID order.
func (srv *addressService) ListAddresses(ctx context.Context, input *usecase.ListAddressesInput) (*usecase.ListAddressesOutput, error) {
	if input.Skip < 0 || input.Limit < 0 {
		return nil, domainerrors.ErrInvalidPagination.WithDetails(
			fmt.Sprintf("skip=%d limit=%d", input.Skip, input.Limit))
	}

	addresses, err := srv.addressRepo.ListAddresses(ctx, input.Skip, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	total, err := srv.addressRepo.CountAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count addresses")
	}

	return &usecase.ListAddressesOutput{
		Addresses: addresses,
		Total:     total,
	}, nil
}

// UpdateAddress merges the supplied fields into the stored address.
// The merged address is validated before anything is written.
func (srv *addressService) UpdateAddress(ctx context.Context, id uint64, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindAddressByID(ctx, id)
		if err != nil {
			return translateNotFound(err, id, "failed to find address")
		}

		patch := entity.AddressPatch{
			Name:      input.Name,
			Street:    input.Street,
			City:      input.City,
			State:     input.State,
			Country:   input.Country,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		}
		patch.Apply(address)

		if err := address.Validate(); err != nil {
			return err
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return translateNotFound(err, id, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.getLogger(ctx).Info("Address updated", slog.Uint64("address_id", id))
	srv.publish(ctx, service.AddressUpdated, updated)

	return updated, nil
}

// DeleteAddress removes an address and returns the value it held.
func (srv *addressService) DeleteAddress(ctx context.Context, id uint64) (*entity.Address, error) {
	var deleted *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindAddressByID(ctx, id)
		if err != nil {
			return translateNotFound(err, id, "failed to find address")
		}

		if err := addressRepo.DeleteAddress(ctx, id); err != nil {
			return translateNotFound(err, id, "failed to delete address")
		}
		deleted = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.getLogger(ctx).Info("Address deleted", slog.Uint64("address_id", id))
	srv.publish(ctx, service.AddressDeleted, deleted)

	return deleted, nil
}

// SearchAddresses scans every stored address and keeps those within the radius.
func (srv *addressService) SearchAddresses(ctx context.Context, input *usecase.SearchAddressesInput) ([]*entity.Address, error) {
	if math.IsNaN(input.DistanceKm) || input.DistanceKm < 0 {
		return nil, domainerrors.ErrInvalidRadius.WithDetails(fmt.Sprintf("distance=%v", input.DistanceKm))
	}

	candidates, err := srv.addressRepo.FindAllAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses for search")
	}

	center := entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	matches := make([]*entity.Address, 0, len(candidates))
	for _, candidate := range candidates {
		if srv.distance.DistanceKm(center, candidate.Coordinate()) <= input.DistanceKm {
			matches = append(matches, candidate)
		}
	}

	if srv.searchRecorder != nil {
		srv.searchRecorder.ObserveSearch(len(candidates), len(matches))
	}

	srv.getLogger(ctx).Debug("Proximity search finished",
		slog.Float64("distance_km", input.DistanceKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
	)

	return matches, nil
}

// publish emits a change event once the write has committed. Failures are logged only.
func (srv *addressService) publish(ctx context.Context, eventType service.AddressEventType, address *entity.Address) {
	if srv.publisher == nil {
		return
	}

	event := &service.AddressEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		AddressID:  address.ID,
		Address:    address,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAddressEvent(ctx, event); err != nil {
		srv.getLogger(ctx).Warn("Failed to publish address event",
			slog.String("event_type", string(eventType)),
			slog.Uint64("address_id", address.ID),
			slog.Any("error", err),
		)
	}
}

// translateNotFound maps the repository sentinel onto the domain error.
func translateNotFound(err error, id uint64, message string) error {
	if errors.Is(err, repository.ErrAddressNotFound) {
		return domainerrors.ErrAddressNotFound.WithDetails(fmt.Sprintf("id=%d", id))
	}

	return errors.Wrap(err, message)
}
