//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iwparking/internal/domain/user"
	"iwparking/internal/handler/api"
	resdto "iwparking/internal/handler/dto/response"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/usecase/commands"
	"iwparking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubReservationCommands struct {
	view *queries.ReservationView
	err  error
}

func (s *stubReservationCommands) Make(_ context.Context, _ commands.MakeReservationRequest, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.err
}

func (s *stubReservationCommands) Extend(_ context.Context, _ uuid.UUID, _ commands.ExtendReservationRequest, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.err
}

func (s *stubReservationCommands) Cancel(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.err
}

type stubReservationQueries struct {
	view  *queries.ReservationView
	items []*queries.ReservationListItem
	err   error
}

func (s *stubReservationQueries) GetByID(_ context.Context, _ uuid.UUID, _ string, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.err
}

func (s *stubReservationQueries) GetByIDSystem(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.err
}

func (s *stubReservationQueries) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.ReservationListItem, error) {
	return s.items, s.err
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubReservationCommands
	queries  *stubReservationQueries
	userID   uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &stubReservationCommands{}
	s.queries = &stubReservationQueries{}
	s.userID = uuid.New()

	handler := api.NewReservationHandler(s.commands, s.queries)

	// Stands in for RequireAuth.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleUser)
	})
	s.router.POST("/reservations", handler.MakeReservation)
	s.router.GET("/reservations", handler.GetUserReservations)
	s.router.GET("/reservations/:id", handler.GetReservation)
	s.router.POST("/reservations/:id/extend", handler.ExtendReservation)
	s.router.POST("/reservations/:id/cancel", handler.CancelReservation)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ReservationHandlerTestSuite) sampleView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             uuid.New(),
		ParkingLotID:   uuid.New(),
		ParkingLotName: "Central",
		UserID:         s.userID,
		VehicleID:      uuid.New(),
		PlateNumber:    "AB1234",
		VehicleType:    "car",
		StartTime:      time.Date(2026, time.May, 11, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, time.May, 11, 11, 0, 0, 0, time.UTC),
		AmountUnits:    20,
		Paid:           true,
		Status:         "successful",
		CreatedAt:      time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC),
		ModifiedAt:     time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC),
	}
}

func makeBody() map[string]any {
	return map[string]any{
		"parking_lot_id": uuid.New().String(),
		"plate_number":   "AB1234",
		"start_date":     "2026-05-11",
		"start_time":     "09:00",
		"end_date":       "2026-05-11",
		"end_time":       "11:00",
	}
}

func (s *ReservationHandlerTestSuite) TestMakeReservation() {
	s.Run("returns 201 with the created reservation", func() {
		view := s.sampleView()
		s.commands.view = view
		s.commands.err = nil

		rec := s.perform(http.MethodPost, "/reservations", makeBody())
		s.Equal(http.StatusCreated, rec.Code)

		var got resdto.ReservationResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		s.Empty(cmp.Diff(*resdto.FromReservationView(view), got))
	})

	s.Run("returns 400 on missing fields", func() {
		body := makeBody()
		delete(body, "plate_number")

		rec := s.perform(http.MethodPost, "/reservations", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 409 when capacity is exhausted", func() {
		s.commands.view = nil
		s.commands.err = errs.ErrCapacityExhausted

		rec := s.perform(http.MethodPost, "/reservations", makeBody())
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "No available parking spaces")
	})

	s.Run("returns 404 for an unknown vehicle", func() {
		s.commands.view = nil
		s.commands.err = errs.ErrVehicleNotFound

		rec := s.perform(http.MethodPost, "/reservations", makeBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestExtendReservation() {
	s.Run("returns 200 with the updated reservation", func() {
		view := s.sampleView()
		s.commands.view = view
		s.commands.err = nil

		body := map[string]any{"end_date": "2026-05-11", "end_time": "13:00"}
		rec := s.perform(http.MethodPost, "/reservations/"+view.ID.String()+"/extend", body)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("returns 400 for a malformed id", func() {
		body := map[string]any{"end_date": "2026-05-11", "end_time": "13:00"}
		rec := s.perform(http.MethodPost, "/reservations/not-a-uuid/extend", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("returns 404 when the query hides a foreign reservation", func() {
		s.queries.view = nil
		s.queries.err = errs.ErrReservationNotFound

		rec := s.perform(http.MethodGet, "/reservations/"+uuid.New().String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 200 for an owned reservation", func() {
		view := s.sampleView()
		s.queries.view = view
		s.queries.err = nil

		rec := s.perform(http.MethodGet, "/reservations/"+view.ID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	s.Run("returns the user's reservations", func() {
		s.queries.items = []*queries.ReservationListItem{
			{ID: uuid.New(), ParkingLotName: "Central", PlateNumber: "AB1234", AmountUnits: 20, Status: "successful"},
		}
		s.queries.err = nil

		rec := s.perform(http.MethodGet, "/reservations", nil)
		s.Equal(http.StatusOK, rec.Code)

		var got []*resdto.ReservationListResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		s.Len(got, 1)
		s.Equal("Central", got[0].ParkingLotName)
	})
}
