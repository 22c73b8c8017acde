//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"booking-engine/internal/handler/api"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/common/testutil"
	"booking-engine/tests/mock/commandsmock"
	"booking-engine/tests/mock/queriesmock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:customer_id", s.handler.Get)
	s.router.DELETE("/bookings/:customer_id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func createBookingBody(muts ...func(map[string]any)) map[string]any {
	m := map[string]any{
		"customer_id": 1,
		"name":        "Lina",
		"phone":       "+970590000001",
		"service":     "haircut",
		"day":         "Monday",
		"slot_time":   "10:00 AM",
	}
	for _, f := range muts {
		f(m)
	}
	return m
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/bookings"

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(&commands.ReserveResult{AppointmentAt: "2025-03-10 10:00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(false, body["replaced"])
		s.Equal("2025-03-10 10:00", body["appointment_at"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing customer_id", mutate: testutil.Field("customer_id", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
			{name: "missing slot_time", mutate: testutil.Field("slot_time", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 101))},
			{name: "unknown urgency", mutate: testutil.Field("urgency", "whenever")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody(tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict when slot is taken", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot already taken")
	})

	s.Run("error: 409 Conflict when customer already booked", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCustomerHasActiveBooking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "active booking")
	})

	s.Run("error: 400 Bad Request for unknown day or slot", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUnknownSlot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown day or slot")
	})

	s.Run("error: 400 Bad Request for passed slot", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotInPast).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Slot already passed")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with booking", func() {
		s.mockQueries.EXPECT().GetByCustomer(gomock.Any(), int64(1)).
			Return(&queries.BookingView{CustomerID: 1, CustomerName: "Lina", Status: "pending"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Lina", body["customer_name"])
		s.Equal("pending", body["status"])
	})

	s.Run("error: 404 Not Found for unknown customer", func() {
		s.mockQueries.EXPECT().GetByCustomer(gomock.Any(), int64(404)).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/404", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking")
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer id")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown customer", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(404)).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/404", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking")
	})
}
