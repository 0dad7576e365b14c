package services

import (
	"context"
	"sync"

	"hotel-admin/backend"
	"hotel-admin/dto"
	"hotel-admin/errors"
	"hotel-admin/models"
	"hotel-admin/services/logger"
	"hotel-admin/utils"
)

// ConversionState is the conversion flow's position: at most one
// booking is ever being converted at a time.
type ConversionState int

const (
	StateIdle ConversionState = iota
	StateAwaitingPayment
	StateSubmitting
)

// ConversionService turns a Booking into a Renting: it captures a card
// number, derives the masked payment label, and calls the backend
// conversion endpoint under the configured employee identity. The
// entered card number is cleared on every Confirm attempt, success or
// failure, so both outcomes behave identically and the raw number is
// never retained past a submission.
type ConversionService struct {
	backend     *backend.Client
	log         logger.Logger
	employeeSSN string

	mu        sync.Mutex
	state     ConversionState
	bookingID int
	cardInput string

	bookings []models.Booking
	rentings []models.Renting
}

func NewConversionService(b *backend.Client, employeeSSN string, log logger.Logger) *ConversionService {
	if log == nil {
		log = logger.Nop{}
	}
	return &ConversionService{backend: b, employeeSSN: employeeSSN, log: log}
}

// Refresh loads bookings and rentings in parallel. Either failure
// aborts the combined load: both lists fall back to empty rather than
// showing one fresh and one stale side.
func (s *ConversionService) Refresh(ctx context.Context) error {
	var (
		bookings []models.Booking
		rentings []models.Renting
		wg       sync.WaitGroup
		errs     = make([]error, 2)
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = s.backend.GetJSON(ctx, backend.CollectionPath(models.KindBooking), &bookings)
	}()
	go func() {
		defer wg.Done()
		errs[1] = s.backend.GetJSON(ctx, backend.CollectionPath(models.KindRenting), &rentings)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.log.Error("refresh bookings/rentings: %v", err)
			s.mu.Lock()
			s.bookings, s.rentings = nil, nil
			s.mu.Unlock()
			return err
		}
	}

	s.mu.Lock()
	s.bookings, s.rentings = bookings, rentings
	s.mu.Unlock()
	return nil
}

func (s *ConversionService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *ConversionService) Rentings() []models.Renting {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Renting, len(s.rentings))
	copy(out, s.rentings)
	return out
}

func (s *ConversionService) State() ConversionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectBooking opens payment capture for exactly one booking.
func (s *ConversionService) SelectBooking(bookingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return errors.NewAppError(errors.ErrCodeValidation, "a conversion is already in progress", nil)
	}
	if bookingID <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "booking id must be positive", nil)
	}
	s.state = StateAwaitingPayment
	s.bookingID = bookingID
	s.cardInput = ""
	return nil
}

// InputCard reformats the raw keystrokes into the grouped display
// string and keeps it as the pending payment input.
func (s *ConversionService) InputCard(raw string) string {
	formatted := utils.FormatCardNumber(raw)
	s.mu.Lock()
	s.cardInput = formatted
	s.mu.Unlock()
	return formatted
}

func (s *ConversionService) CardInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardInput
}

// CanSubmit gates the confirm control: exactly 16 digits entered.
func (s *ConversionService) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAwaitingPayment && utils.ValidCardNumber(s.cardInput)
}

// Cancel abandons the pending conversion.
func (s *ConversionService) Cancel() {
	s.mu.Lock()
	s.state = StateIdle
	s.bookingID = 0
	s.cardInput = ""
	s.mu.Unlock()
}

// Confirm re-validates the card (stale UI state is not trusted), then
// submits the conversion. Success lands back in Idle with both
// collections reloaded; failure returns to AwaitingPayment carrying
// the backend's detail message.
func (s *ConversionService) Confirm(ctx context.Context) (models.Renting, error) {
	s.mu.Lock()
	if s.state != StateAwaitingPayment {
		s.mu.Unlock()
		return models.Renting{}, errors.NewAppError(errors.ErrCodeValidation, errors.ErrConversionState.Error(), errors.ErrConversionState)
	}
	card := s.cardInput
	s.cardInput = ""
	if !utils.ValidCardNumber(card) {
		s.mu.Unlock()
		return models.Renting{}, errors.NewAppError(errors.ErrCodeValidation, errors.ErrInvalidCard.Error(), errors.ErrInvalidCard)
	}
	bookingID := s.bookingID
	s.state = StateSubmitting
	s.mu.Unlock()

	body := dto.ConvertToRentingWire{
		PaymentInfo: utils.PaymentLabel(card),
		EmployeeSSN: s.employeeSSN,
	}

	var renting models.Renting
	if err := s.backend.PostJSON(ctx, backend.ConvertPath(bookingID), body, &renting); err != nil {
		s.mu.Lock()
		s.state = StateAwaitingPayment
		s.mu.Unlock()
		return models.Renting{}, err
	}

	s.mu.Lock()
	s.state = StateIdle
	s.bookingID = 0
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.log.Error("post-conversion refresh: %v", err)
	}
	return renting, nil
}

// ConvertBooking is the one-shot form of the flow used by the HTTP and
// CLI surfaces: select, capture, confirm. The raw card is checked
// before capture: InputCard caps at the display width, which would
// silently truncate an overlong number into a passing one.
func (s *ConversionService) ConvertBooking(ctx context.Context, bookingID int, cardNumber string) (models.Renting, error) {
	if !utils.ValidCardNumber(cardNumber) {
		return models.Renting{}, errors.NewAppError(errors.ErrCodeValidation, errors.ErrInvalidCard.Error(), errors.ErrInvalidCard)
	}
	if err := s.SelectBooking(bookingID); err != nil {
		return models.Renting{}, err
	}
	s.InputCard(cardNumber)
	renting, err := s.Confirm(ctx)
	if err != nil {
		// One-shot callers have no modal to keep open.
		s.Cancel()
		return models.Renting{}, err
	}
	return renting, nil
}
