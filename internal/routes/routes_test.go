package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-queue/internal/config"
	"github.com/BruksfildServices01/salon-queue/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-queue/internal/dto"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/logging"
	"github.com/BruksfildServices01/salon-queue/internal/middleware"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	"github.com/BruksfildServices01/salon-queue/internal/routes"
)

// 2030-03-04 is a Monday.
const day = "2030-03-04"

type server struct {
	t  *testing.T
	r  *gin.Engine
	db *gorm.DB
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := dbtest.Open(t)
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		Timezone:    "UTC",
		AdminEmails: []string{"boss@salon.com"},
	}

	cur := time.Date(2030, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:     gdb,
		Config: cfg,
		Logger: logging.NewWithWriter(io.Discard, "error"),
		Clock:  clock,
	})

	return &server{t: t, r: r, db: gdb}
}

func (s *server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.r.ServeHTTP(rr, req)
	return rr
}

func (s *server) barber(name string) models.Barber {
	s.t.Helper()
	b := models.Barber{
		Name:          name,
		WorkingHours:  models.DefaultWorkingHours(),
		AvailableDays: models.DefaultAvailableDays(),
	}
	require.NoError(s.t, s.db.Create(&b).Error)
	return b
}

func (s *server) signup(email string) string {
	s.t.Helper()
	rr := s.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Someone",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(s.t, http.StatusCreated, rr.Code, rr.Body.String())

	var out dto.AuthDTO
	require.NoError(s.t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.NotEmpty(s.t, out.Token)
	return out.Token
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func booking(barberID uint, at string) gin.H {
	return gin.H{
		"customerName":    "Ana",
		"customerEmail":   "ana@example.com",
		"appointmentTime": at,
		"barberId":        barberID,
		"service":         "haircut",
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	rr := s.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestAppointments_BookAndConflict(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	rr := s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[dto.AppointmentCreatedDTO](t, rr)
	assert.Equal(t, 1, created.Position)
	assert.NotZero(t, created.ID)

	rr = s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z"))
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "slot_taken", decode[httperr.HTTPError](t, rr).Code)

	rr = s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:30:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 2, decode[dto.AppointmentCreatedDTO](t, rr).Position)
}

func TestAppointments_Validation(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	cases := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"missing time", booking(b.ID, ""), http.StatusBadRequest, "appointment_time_required"},
		{"bad time", booking(b.ID, "tomorrow"), http.StatusBadRequest, "invalid_appointment_time"},
		{"unknown barber", booking(b.ID+99, day+"T10:00:00Z"), http.StatusNotFound, "barber_not_found"},
		{"not json", "nope", http.StatusBadRequest, "invalid_request"},
		{"off grid", booking(b.ID, day+"T09:10:00Z"), http.StatusBadRequest, "slot_unavailable"},
		{"outside hours", booking(b.ID, day+"T03:00:00Z"), http.StatusBadRequest, "slot_unavailable"},
		{"day off", booking(b.ID, "2030-03-10T10:00:00Z"), http.StatusBadRequest, "slot_unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := s.do(http.MethodPost, "/api/appointments", "", tc.body)
			require.Equal(t, tc.status, rr.Code, rr.Body.String())
			assert.Equal(t, tc.code, decode[httperr.HTTPError](t, rr).Code)
		})
	}
}

func TestAppointments_CancelFreesSlot(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	first := decode[dto.AppointmentCreatedDTO](t, s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z")))

	rr := s.do(http.MethodPost, "/api/appointments/cancel/"+itoa(first.ID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodPost, "/api/appointments/cancel/"+itoa(first.ID), "", nil)
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "invalid_state", decode[httperr.HTTPError](t, rr).Code)

	rr = s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, decode[dto.AppointmentCreatedDTO](t, rr).Position)
}

func TestAppointments_ListByDate(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	rr := s.do(http.MethodGet, "/api/appointments/"+day, "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "no_appointments", decode[httperr.HTTPError](t, rr).Code)

	s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T11:00:00Z"))
	s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T09:00:00Z"))

	rr = s.do(http.MethodGet, "/api/appointments/"+day, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	apps := decode[[]models.Appointment](t, rr)
	require.Len(t, apps, 2)
	assert.Equal(t, "09:00", apps[0].SlotTime)
	assert.Equal(t, 2, apps[0].Position)
	assert.Equal(t, "11:00", apps[1].SlotTime)
	assert.Equal(t, 1, apps[1].Position)

	rr = s.do(http.MethodGet, "/api/appointments/03-04-2030", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAppointments_DetailAndDelete(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	created := decode[dto.AppointmentCreatedDTO](t, s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z")))

	rr := s.do(http.MethodGet, "/api/appointments/detail/"+itoa(created.ID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[models.Appointment](t, rr)
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, 1, got.Position)

	rr = s.do(http.MethodDelete, "/api/appointments/"+itoa(created.ID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/api/appointments/detail/"+itoa(created.ID), "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "appointment_not_found", decode[httperr.HTTPError](t, rr).Code)

	rr = s.do(http.MethodGet, "/api/appointments/detail/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_id", decode[httperr.HTTPError](t, rr).Code)
}

func TestAppointments_Reschedule(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	a := decode[dto.AppointmentCreatedDTO](t, s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z")))
	s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T11:00:00Z"))

	rr := s.do(http.MethodPost, "/api/appointments/reschedule/"+itoa(a.ID), "", gin.H{"newAppointmentTime": day + "T11:00:00Z"})
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(http.MethodPost, "/api/appointments/reschedule/"+itoa(a.ID), "", gin.H{"newAppointmentTime": day + "T12:00:00Z"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	out := decode[dto.AppointmentRescheduledDTO](t, rr)
	assert.Equal(t, a.ID, out.ID)
	assert.Equal(t, 12, out.AppointmentTime.UTC().Hour())
}

func TestSchedule_Availability(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z"))

	rr := s.do(http.MethodGet, "/api/schedule/"+itoa(b.ID)+"/"+day, "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	slots := decode[dto.AvailabilityDTO](t, rr).AvailableSlots
	assert.Contains(t, slots, "09:00")
	assert.NotContains(t, slots, "10:00")

	// 2030-03-09 is a Saturday.
	rr = s.do(http.MethodGet, "/api/schedule/"+itoa(b.ID)+"/2030-03-09", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[dto.AvailabilityDTO](t, rr).AvailableSlots)
}

func TestQueue_Flow(t *testing.T) {
	s := newServer(t)

	alice := decode[dto.QueuePositionDTO](t, s.do(http.MethodPost, "/api/queue", "", gin.H{"name": "Alice"}))
	bob := decode[dto.QueuePositionDTO](t, s.do(http.MethodPost, "/api/queue", "", gin.H{"name": "Bob"}))
	assert.Equal(t, 1, alice.Position)
	assert.Equal(t, 2, bob.Position)

	rr := s.do(http.MethodPost, "/api/queue/complete/"+itoa(alice.ID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/api/queue/search/"+itoa(bob.ID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decode[dto.QueuePositionDTO](t, rr).Position)

	rr = s.do(http.MethodGet, "/api/queue", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.QueueEntry](t, rr), 2)

	rr = s.do(http.MethodDelete, "/api/queue/"+itoa(bob.ID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/api/queue/search/"+itoa(bob.ID), "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "queue_entry_not_found", decode[httperr.HTTPError](t, rr).Code)

	rr = s.do(http.MethodPost, "/api/queue", "", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBarbers_AdminGate(t *testing.T) {
	s := newServer(t)
	body := gin.H{"name": "Dora", "experience": 3}

	rr := s.do(http.MethodPost, "/api/barbers", "", body)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing_authorization_header", decode[httperr.HTTPError](t, rr).Code)

	user := s.signup("someone@salon.com")
	rr = s.do(http.MethodPost, "/api/barbers", user, body)
	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "not_admin", decode[httperr.HTTPError](t, rr).Code)

	admin := s.signup("Boss@Salon.com")
	rr = s.do(http.MethodPost, "/api/barbers", admin, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	b := decode[models.Barber](t, rr)
	assert.Equal(t, "Dora", b.Name)
	assert.Equal(t, models.DefaultWorkingHours(), b.WorkingHours)

	rr = s.do(http.MethodGet, "/api/barbers", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodDelete, "/api/barbers/"+itoa(b.ID), admin, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBarbers_DeleteBlockedByPendingBooking(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")
	admin := s.signup("boss@salon.com")

	s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z"))

	rr := s.do(http.MethodDelete, "/api/barbers/"+itoa(b.ID), admin, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAuth_CheckAndUpdate(t *testing.T) {
	s := newServer(t)
	token := s.signup("someone@salon.com")

	rr := s.do(http.MethodPost, "/api/auth/check", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(http.MethodPost, "/api/auth/check", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPost, "/api/auth/update", token, gin.H{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "someone@salon.com", "password": "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid_credentials", decode[httperr.HTTPError](t, rr).Code)
}

func TestServices_PublicReadAdminWrite(t *testing.T) {
	s := newServer(t)
	admin := s.signup("boss@salon.com")

	rr := s.do(http.MethodPost, "/api/services", "", gin.H{"name": "Shave", "price": 20})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPost, "/api/services", admin, gin.H{"name": "Shave", "price": 20})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestReminders_AdminOnly(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")
	admin := s.signup("boss@salon.com")
	s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T10:00:00Z"))

	rr := s.do(http.MethodPost, "/api/appointments/reminders/"+day, "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPost, "/api/appointments/reminders/"+day, admin, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	out := decode[dto.RemindersDTO](t, rr)
	assert.Equal(t, day, out.Date)
}

func TestCORS_Preflight(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/queue", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	s.r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestAuditLogs_AdminOnly(t *testing.T) {
	s := newServer(t)
	user := s.signup("someone@salon.com")
	admin := s.signup("boss@salon.com")

	rr := s.do(http.MethodGet, "/api/audit-logs", user, nil)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = s.do(http.MethodGet, "/api/audit-logs?page=1&limit=10", admin, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	page := decode[dto.AuditPageDTO[models.AuditLog]](t, rr)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.NotNil(t, page.Logs)
}

func TestSchedule_OffGridBookingLeavesSlotFree(t *testing.T) {
	s := newServer(t)
	b := s.barber("Carlos")

	rr := s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T09:10:00Z"))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodGet, "/api/schedule/"+itoa(b.ID)+"/"+day, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	slots := decode[dto.AvailabilityDTO](t, rr).AvailableSlots
	assert.Equal(t, "09:00", slots[0])
	assert.NotContains(t, slots, "09:10")

	rr = s.do(http.MethodPost, "/api/appointments", "", booking(b.ID, day+"T09:00:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, decode[dto.AppointmentCreatedDTO](t, rr).Position)
}
