package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSaveShiftAppendsForResident(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/shifts", fiber.Map{
		"day":       "Fri",
		"startTime": "10:00",
		"endTime":   "18:00",
		"employer":  "Corner Store",
	}), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	user := decodeUserResponse(t, response.Body)
	if len(user.Schedule.Shifts) != 3 {
		t.Fatalf("expected 3 shifts in the response, got %d", len(user.Schedule.Shifts))
	}

	stored, _ := sessionStore.FindResident("res-1")
	if len(stored.Schedule.Shifts) != 3 {
		t.Fatalf("expected the store updated, got %d shifts", len(stored.Schedule.Shifts))
	}
	if stored.Schedule.Shifts[2].Employer != "Corner Store" {
		t.Fatalf("appended shift missing: %#v", stored.Schedule.Shifts)
	}
}

func TestSaveShiftEditKeepsIDAndPosition(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/shifts", fiber.Map{
		"day":       "Tue",
		"startTime": "12:00",
		"endTime":   "20:00",
		"employer":  "Night Diner",
		"editingId": "s1",
	}), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	stored, _ := sessionStore.FindResident("res-1")
	if len(stored.Schedule.Shifts) != 2 {
		t.Fatalf("edit must not grow the schedule, got %d", len(stored.Schedule.Shifts))
	}
	if stored.Schedule.Shifts[0].ID != "s1" || stored.Schedule.Shifts[0].Employer != "Night Diner" {
		t.Fatalf("expected s1 rewritten in place, got %#v", stored.Schedule.Shifts[0])
	}
}

func TestSaveShiftMissingEmployerRejected(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/shifts", fiber.Map{
		"day":       "Mon",
		"startTime": "09:00",
		"endTime":   "17:00",
		"employer":  "",
	}), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	stored, _ := sessionStore.FindResident("res-1")
	if len(stored.Schedule.Shifts) != 2 {
		t.Fatal("rejected shift must not reach the store")
	}
}

func TestSaveShiftUnknownDayRejected(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/shifts", fiber.Map{
		"day":       "Someday",
		"startTime": "09:00",
		"endTime":   "17:00",
		"employer":  "Cafe",
	}), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestDeleteShiftRequiresConfirmation(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")

	request := withAuthCookie(jsonRequest(t, http.MethodDelete, "/api/shifts/s1", nil), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusPreconditionRequired {
		t.Fatalf("expected status 428, got %d", response.StatusCode)
	}
	stored, _ := sessionStore.FindResident("res-1")
	if len(stored.Schedule.Shifts) != 2 {
		t.Fatal("unconfirmed delete must change nothing")
	}
}

func TestDeleteShiftWithConfirmation(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")

	request := withAuthCookie(jsonRequest(t, http.MethodDelete, "/api/shifts/s1?confirm=true", nil), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	stored, _ := sessionStore.FindResident("res-1")
	if len(stored.Schedule.Shifts) != 1 || stored.Schedule.Shifts[0].ID != "s2" {
		t.Fatalf("expected only s2 left, got %#v", stored.Schedule.Shifts)
	}
}

func TestManagerHasNoResidentRecordForShifts(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := managerCookie(t, app)

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/shifts", fiber.Map{
		"day":       "Mon",
		"startTime": "09:00",
		"endTime":   "17:00",
		"employer":  "Cafe",
	}), cookie)
	response := performRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
}
