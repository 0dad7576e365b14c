package services

import (
	"context"
	"strings"

	"hotel-admin/backend"
	"hotel-admin/dto"
	"hotel-admin/errors"
	"hotel-admin/models"
	"hotel-admin/services/logger"
)

// SearchService fronts the backend's availability search. The matching
// itself (date overlap, price bands) is backend business logic; this
// side only shapes the filter and the booking that may follow a hit.
type SearchService struct {
	backend           *backend.Client
	log               logger.Logger
	defaultCustomerID string
}

func NewSearchService(b *backend.Client, defaultCustomerID string, log logger.Logger) *SearchService {
	if log == nil {
		log = logger.Nop{}
	}
	return &SearchService{backend: b, defaultCustomerID: defaultCustomerID, log: log}
}

// SearchRooms posts the filter and returns matching rooms. Dates are
// normalized to ISO-8601 instants before they leave the process.
func (s *SearchService) SearchRooms(ctx context.Context, filter dto.RoomSearchRequest) ([]models.Room, error) {
	var err error
	if filter.StartDate, err = normalizeDate("start_date", filter.StartDate); err != nil {
		return nil, err
	}
	if filter.EndDate, err = normalizeDate("end_date", filter.EndDate); err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.backend.PostJSON(ctx, backend.SearchPath, filter, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// HotelChains feeds the search form's chain selector.
func (s *SearchService) HotelChains(ctx context.Context) ([]models.HotelChain, error) {
	var chains []models.HotelChain
	if err := s.backend.GetJSON(ctx, backend.HotelChainsPath, &chains); err != nil {
		return nil, err
	}
	return chains, nil
}

// BookRoom creates a booking for a room found through search. With no
// authentication, a missing customer id falls back to the configured
// default identity.
func (s *SearchService) BookRoom(ctx context.Context, req dto.BookRoomRequest) (models.Booking, error) {
	if req.RoomNumber <= 0 {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeValidation, "roomnumber must be positive", nil)
	}
	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeValidation, "startdate and enddate are required", nil)
	}

	var err error
	if req.StartDate, err = normalizeDate("startdate", req.StartDate); err != nil {
		return models.Booking{}, err
	}
	if req.EndDate, err = normalizeDate("enddate", req.EndDate); err != nil {
		return models.Booking{}, err
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		req.CustomerID = s.defaultCustomerID
	}

	var booking models.Booking
	if err := s.backend.PostJSON(ctx, backend.CollectionPath(models.KindBooking), req, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func normalizeDate(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	coerced, err := models.CoerceField(field, raw)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	s, _ := coerced.(string)
	return s, nil
}
