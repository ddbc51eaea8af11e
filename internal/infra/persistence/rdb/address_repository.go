package rdb

import (
	"context"
	"math"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address and copies the generated ID back.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.ID = 0

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateWriteError(err, "failed to create address")
	}

	address.ID = addressM.ID

	return nil
}

// FindAddressByID retrieves an address by its ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uint64) (*entity.Address, error) {
	if !isStorableID(id) {
		return nil, repository.ErrAddressNotFound
	}

	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// ListAddresses retrieves one page of addresses in ID order.
func (repo *addressRepository) ListAddresses(ctx context.Context, offset, limit int) ([]*entity.Address, error) {
	if limit == 0 {
		return []*entity.Address{}, nil
	}

	var addressModels []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	return toAddressDomains(addressModels), nil
}

// FindAllAddresses retrieves every stored address in ID order.
func (repo *addressRepository) FindAllAddresses(ctx context.Context) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&addressModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load addresses")
	}

	return toAddressDomains(addressModels), nil
}

// CountAddresses returns the number of stored addresses.
func (repo *addressRepository) CountAddresses(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.AddressModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count addresses")
	}

	return count, nil
}

// UpdateAddress overwrites every column of an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	if !isStorableID(address.ID) {
		return repository.ErrAddressNotFound
	}

	addressM := fromAddressDomain(address)

	// An explicit column list writes zero values too, so clearing a text field persists.
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select("name", "street", "city", "state", "country", "latitude", "longitude", "updated_at").
		Updates(addressM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uint64) error {
	if !isStorableID(id) {
		return repository.ErrAddressNotFound
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// isStorableID reports whether id fits the signed BIGINT primary key.
// database/sql refuses uint64 arguments with the high bit set.
func isStorableID(id uint64) bool {
	return id <= math.MaxInt64
}

func translateWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidCoordinate.WrapMessage(details)
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		Name:      data.Name,
		Street:    data.Street,
		City:      data.City,
		State:     data.State,
		Country:   data.Country,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}

func toAddressDomains(models []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(models))
	for _, addressM := range models {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		Name:      data.Name,
		Street:    data.Street,
		City:      data.City,
		State:     data.State,
		Country:   data.Country,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}
