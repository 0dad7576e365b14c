package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin/errors"
	"hotel-admin/models"
)

const validCard = "4111 1111 1111 1111"

func newConversion(t *testing.T, handler http.Handler) *ConversionService {
	t.Helper()
	return NewConversionService(newBackend(t, handler), "100000001", nil)
}

func TestRefreshLoadsBothLists(t *testing.T) {
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bookings/":
			json.NewEncoder(w).Encode([]models.Booking{{BookingID: 1}})
		case "/rentings/":
			json.NewEncoder(w).Encode([]models.Renting{{RentingID: 3}, {RentingID: 4}})
		default:
			http.NotFound(w, r)
		}
	}))

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, svc.Bookings(), 1)
	assert.Len(t, svc.Rentings(), 2)
}

func TestRefreshEitherFailureEmptiesBoth(t *testing.T) {
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rentings/" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Booking{{BookingID: 1}})
	}))

	require.Error(t, svc.Refresh(context.Background()))
	assert.Empty(t, svc.Bookings())
	assert.Empty(t, svc.Rentings())
}

func TestSelectBooking(t *testing.T) {
	svc := newConversion(t, http.NotFoundHandler())

	require.NoError(t, svc.SelectBooking(7))
	assert.Equal(t, StateAwaitingPayment, svc.State())

	// a second selection while one is pending is refused
	assert.Error(t, svc.SelectBooking(8))

	svc.Cancel()
	assert.Equal(t, StateIdle, svc.State())
	assert.Error(t, svc.SelectBooking(0))
}

func TestCanSubmit(t *testing.T) {
	svc := newConversion(t, http.NotFoundHandler())

	assert.False(t, svc.CanSubmit())
	require.NoError(t, svc.SelectBooking(7))
	assert.False(t, svc.CanSubmit())

	assert.Equal(t, "4111 1111 1111 111", svc.InputCard("411111111111111"))
	assert.False(t, svc.CanSubmit())

	assert.Equal(t, validCard, svc.InputCard("4111111111111111"))
	assert.True(t, svc.CanSubmit())
}

func TestConfirmSendsMaskedLabel(t *testing.T) {
	var wire map[string]string
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			assert.Equal(t, "/bookings/7/convert-to-renting/", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&wire))
			json.NewEncoder(w).Encode(models.Renting{RentingID: 42, BookingID: 7})
			return
		}
		w.Write([]byte(`[]`))
	}))

	require.NoError(t, svc.SelectBooking(7))
	svc.InputCard("4111-1111-1111-1111")

	renting, err := svc.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, renting.RentingID)
	assert.Equal(t, "Credit Card 1111", wire["payment_info"])
	assert.Equal(t, "100000001", wire["employee_ssn"])
	assert.Equal(t, StateIdle, svc.State())
	assert.Empty(t, svc.CardInput())
}

func TestConfirmInvalidCardClearsInput(t *testing.T) {
	svc := newConversion(t, http.NotFoundHandler())

	require.NoError(t, svc.SelectBooking(7))
	svc.InputCard("4111")

	_, err := svc.Confirm(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	// failure clears the entry and stays on the payment step
	assert.Equal(t, StateAwaitingPayment, svc.State())
	assert.Empty(t, svc.CardInput())
}

func TestConfirmBackendFailureReturnsToAwaitingPayment(t *testing.T) {
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"booking already converted"}`))
	}))

	require.NoError(t, svc.SelectBooking(7))
	svc.InputCard(validCard)

	_, err := svc.Confirm(context.Background())
	require.Error(t, err)
	assert.Equal(t, "booking already converted", errors.UserMessage(err, "conversion failed"))
	assert.Equal(t, StateAwaitingPayment, svc.State())
	assert.Empty(t, svc.CardInput())
}

func TestConfirmWithoutSelection(t *testing.T) {
	svc := newConversion(t, http.NotFoundHandler())
	_, err := svc.Confirm(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestConvertBookingOneShot(t *testing.T) {
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(models.Renting{RentingID: 9})
			return
		}
		w.Write([]byte(`[]`))
	}))

	renting, err := svc.ConvertBooking(context.Background(), 7, "4111111111111111")
	require.NoError(t, err)
	assert.Equal(t, 9, renting.RentingID)
	assert.Equal(t, StateIdle, svc.State())
}

func TestConvertBookingRejectsOverlongCard(t *testing.T) {
	var hits int32
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))

	// 20 digits: the display cap must not truncate this into a valid 16
	_, err := svc.ConvertBooking(context.Background(), 7, "41111111111111112222")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, StateIdle, svc.State())
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestConvertBookingOneShotFailureResets(t *testing.T) {
	svc := newConversion(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"nope"}`))
	}))

	_, err := svc.ConvertBooking(context.Background(), 7, "4111111111111111")
	require.Error(t, err)
	// the one-shot flow never leaves a conversion pending
	assert.Equal(t, StateIdle, svc.State())

	_, err = svc.ConvertBooking(context.Background(), 7, "bad")
	require.Error(t, err)
	assert.Equal(t, StateIdle, svc.State())
}
