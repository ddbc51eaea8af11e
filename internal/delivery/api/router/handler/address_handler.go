package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"addressbook/config"
	"addressbook/internal/delivery/api/response"
	"addressbook/internal/domain/entity"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	headerTotalCount = "X-Total-Count"
	mimeGeoJSON      = "application/geo+json"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Config    *config.Config
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC        usecase.AddressUsecase
	defaultListLimit int
}

// NewAddressHandler is the constructor for AddressHandler.
// The default list page size is read from config, which fills it when unset.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC:        params.AddressUC,
		defaultListLimit: params.Config.Address.DefaultListLimit,
	}
}

// CreateAddressRequest represents the request body for creating an address.
// Pointers tell a missing field apart from a zero value.
type CreateAddressRequest struct {
	Name      *string  `json:"name" validate:"required"`
	Street    *string  `json:"street" validate:"required"`
	City      *string  `json:"city" validate:"required"`
	State     *string  `json:"state" validate:"required"`
	Country   *string  `json:"country" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// UpdateAddressRequest represents the request body for updating an address.
// Every field is optional; absent fields keep their stored value.
type UpdateAddressRequest struct {
	Name      *string  `json:"name"`
	Street    *string  `json:"street"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// searchQuery is the parsed query string of the search endpoints
type searchQuery struct {
	Latitude   float64
	Longitude  float64
	DistanceKm float64
}

// CreateAddress handles storing a new address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), &usecase.CreateAddressInput{
		Name:      *req.Name,
		Street:    *req.Street,
		City:      *req.City,
		State:     *req.State,
		Country:   *req.Country,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// ListAddresses handles retrieving one page of addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	input := usecase.ListAddressesInput{Limit: h.defaultListLimit}

	err := echo.QueryParamsBinder(c).
		Int("skip", &input.Skip).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return bindingFailure(c, err)
	}

	out, err := h.addressUC.ListAddresses(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(headerTotalCount, strconv.FormatInt(out.Total, 10))

	return response.Success(c, http.StatusOK, out.Addresses)
}

// GetAddress handles retrieving a single address
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, err := parseAddressID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// UpdateAddress handles partial and complete updates of an address
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, err := parseAddressID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), id, &usecase.UpdateAddressInput{
		Name:      req.Name,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress handles deleting an address and returns the deleted value
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, err := parseAddressID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.DeleteAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// SearchAddresses handles the proximity search
func (h *AddressHandler) SearchAddresses(c echo.Context) error {
	addresses, err := h.search(c)
	if err != nil {
		return searchFailure(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// SearchAddressesGeoJSON handles the proximity search and renders a GeoJSON FeatureCollection
func (h *AddressHandler) SearchAddressesGeoJSON(c echo.Context) error {
	addresses, err := h.search(c)
	if err != nil {
		return searchFailure(c, err)
	}

	body, err := toFeatureCollection(addresses).MarshalJSON()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

func (h *AddressHandler) search(c echo.Context) ([]*entity.Address, error) {
	var q searchQuery

	err := echo.QueryParamsBinder(c).
		MustFloat64("latitude", &q.Latitude).
		MustFloat64("longitude", &q.Longitude).
		MustFloat64("distance", &q.DistanceKm).
		BindError()
	if err != nil {
		return nil, err
	}

	// The use case trusts the center; it is range-checked here
	center := entity.Coordinate{Latitude: q.Latitude, Longitude: q.Longitude}
	if err := center.Validate(); err != nil {
		return nil, err
	}

	return h.addressUC.SearchAddresses(c.Request().Context(), &usecase.SearchAddressesInput{
		Latitude:   q.Latitude,
		Longitude:  q.Longitude,
		DistanceKm: q.DistanceKm,
	})
}

func searchFailure(c echo.Context, err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return bindingFailure(c, err)
	}

	return response.HandleAppError(c, err)
}

func parseAddressID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func bindingFailure(c echo.Context, err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid query parameter",
			fmt.Sprintf("%s: %v", bindErr.Field, bindErr.Message))
	}

	return response.BindingError(c, "INVALID_INPUT", "Invalid query parameter")
}

func toFeatureCollection(addresses []*entity.Address) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, address := range addresses {
		feature := geojson.NewFeature(address.Coordinate().Point())
		feature.ID = address.ID
		feature.Properties = geojson.Properties{
			"id":      address.ID,
			"name":    address.Name,
			"street":  address.Street,
			"city":    address.City,
			"state":   address.State,
			"country": address.Country,
		}
		fc.Append(feature)
	}

	return fc
}
