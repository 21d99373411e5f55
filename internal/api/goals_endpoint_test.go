package api

import (
	"net/http"
	"reflect"
	"testing"
)

func TestToggleMilestoneFlipsAndRestores(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")
	original, _ := sessionStore.FindResident("res-1")

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/goals/g1/milestones/m2/toggle", nil), cookie)
	response := performRequest(t, app, request)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	toggled, _ := sessionStore.FindResident("res-1")
	if !toggled.Goals[0].Milestones[1].Completed {
		t.Fatal("expected m2 completed after one toggle")
	}

	request = withAuthCookie(jsonRequest(t, http.MethodPost, "/api/goals/g1/milestones/m2/toggle", nil), cookie)
	response = performRequest(t, app, request)
	response.Body.Close()

	restored, _ := sessionStore.FindResident("res-1")
	if !reflect.DeepEqual(restored, original) {
		t.Fatalf("double toggle must restore the record exactly:\n got %#v\nwant %#v", restored, original)
	}
}

func TestToggleMilestoneUnknownIDsAreNoOps(t *testing.T) {
	app, sessionStore := newTestApp(t)
	cookie := residentCookie(t, app, "john@example.com", "john123")
	original, _ := sessionStore.FindResident("res-1")

	request := withAuthCookie(jsonRequest(t, http.MethodPost, "/api/goals/g1/milestones/missing/toggle", nil), cookie)
	response := performRequest(t, app, request)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	after, _ := sessionStore.FindResident("res-1")
	if !reflect.DeepEqual(after, original) {
		t.Fatal("unknown milestone toggle must leave the record unchanged")
	}
}
