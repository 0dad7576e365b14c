package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin/backend"
	"hotel-admin/models"
	"hotel-admin/services"
)

func newSearchRouter(t *testing.T, handler http.Handler) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := backend.New(srv.URL, 2*time.Second, nil)
	require.NoError(t, err)

	sc := NewSearchController(services.NewSearchService(client, "TC001", nil))
	stc := NewStatsController(services.NewStatsService(client, nil))
	r := gin.New()
	r.POST("/api/search/rooms", sc.SearchRooms)
	r.GET("/api/search/hotel-chains", sc.HotelChains)
	r.POST("/api/search/book", sc.BookRoom)
	r.GET("/api/stats/overview", stc.Overview)
	return r
}

func TestSearchRoomsEndpoint(t *testing.T) {
	var filter map[string]any
	r := newSearchRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/rooms/search/", req.URL.Path)
		require.NoError(t, json.NewDecoder(req.Body).Decode(&filter))
		json.NewEncoder(w).Encode([]models.Room{{RoomNumber: 5, Price: 120}})
	}))

	w := doJSON(r, http.MethodPost, "/api/search/rooms",
		`{"area":"Downtown","capacity":2,"start_date":"2025-03-01","end_date":"2025-03-04"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Downtown", filter["area"])
	assert.Equal(t, "2025-03-01T00:00:00Z", filter["start_date"])
	assert.Contains(t, w.Body.String(), `"roomnumber":5`)
}

func TestSearchRoomsBadDate(t *testing.T) {
	r := newSearchRouter(t, http.NotFoundHandler())
	w := doJSON(r, http.MethodPost, "/api/search/rooms", `{"start_date":"whenever"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHotelChainsEndpoint(t *testing.T) {
	r := newSearchRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/hotel-chains/", req.URL.Path)
		json.NewEncoder(w).Encode([]models.HotelChain{{ChainName: "Hilton"}})
	}))

	w := doJSON(r, http.MethodGet, "/api/search/hotel-chains", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hilton")
}

func TestBookRoomEndpoint(t *testing.T) {
	var body map[string]any
	r := newSearchRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{BookingID: 11})
	}))

	w := doJSON(r, http.MethodPost, "/api/search/book",
		`{"roomnumber":5,"startdate":"2025-03-01","enddate":"2025-03-04"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "TC001", body["customerid"])
}

func TestBookRoomMissingDates(t *testing.T) {
	r := newSearchRouter(t, http.NotFoundHandler())
	w := doJSON(r, http.MethodPost, "/api/search/book", `{"roomnumber":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsOverviewEndpoint(t *testing.T) {
	r := newSearchRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/views/available-rooms-per-area/":
			w.Write([]byte(`[{"area":"Downtown","available_rooms":3}]`))
		case "/views/hotel-room-capacity/":
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, req)
		}
	}))

	w := doJSON(r, http.MethodGet, "/api/stats/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available_rooms":3`)
}
