package greenhouse

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListOffices(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"offices":[{"id":1,"name":"Berlin","departments":[{"id":10,"name":"Engineering","jobs":[{"id":100,"title":"Backend Engineer","location":{"name":"Berlin, Germany"}}]}]}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	offices, err := client.ListOffices(context.Background(), "acme")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotPath != "/v1/boards/acme/offices" {
		t.Fatalf("expected offices path for the board token, got %q", gotPath)
	}
	if len(offices) != 1 || offices[0].Name != "Berlin" {
		t.Fatalf("expected one office named Berlin, got %+v", offices)
	}
	job := offices[0].Departments[0].Jobs[0]
	if job.ID != 100 || job.Location.Name != "Berlin, Germany" {
		t.Fatalf("expected nested job fields to decode, got %+v", job)
	}
}

func TestGetJobDetail_RequestsQuestions(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"id":100,"title":"Backend Engineer","content":"<p>Go</p>","questions":[{"label":"Resume","required":true}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	detail, err := client.GetJobDetail(context.Background(), "acme", 100)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotURL != "/v1/boards/acme/jobs/100?questions=true" {
		t.Fatalf("expected detail URL with questions=true, got %q", gotURL)
	}
	if detail.Title != "Backend Engineer" {
		t.Fatalf("expected title to decode, got %q", detail.Title)
	}
	if !strings.Contains(string(detail.Questions), "Resume") {
		t.Fatalf("expected raw questions to be kept, got %s", detail.Questions)
	}
}

func TestGetJobDetail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":404,"error":"no job found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	_, err := client.GetJobDetail(context.Background(), "acme", 999)
	if err == nil {
		t.Fatal("expected an error for 404")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !strings.Contains(apiErr.Body, "no job found") {
		t.Fatalf("expected upstream body to be carried, got %v", err)
	}
}

func TestListOffices_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid Basic Auth credentials"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	_, err := client.ListOffices(context.Background(), "acme")
	if !IsUnauthorized(err) {
		t.Fatalf("expected an unauthorized error, got %v", err)
	}
	if StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", StatusOf(err))
	}
}

func TestSubmitApplication(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":12345,"candidate_id":67890}`))
	}))
	defer srv.Close()

	client := NewClient("", srv.URL, nil)
	result, err := client.SubmitApplication(context.Background(), "harvest-key", 100, map[string]any{
		"first_name": "Ada",
		"email":      "ada@example.com",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// Basic auth is the key as username with an empty password.
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("harvest-key:"))
	if gotAuth != want {
		t.Fatalf("expected auth header %q, got %q", want, gotAuth)
	}
	if gotPayload["job_id"] != float64(100) {
		t.Fatalf("expected job_id to be injected into the payload, got %v", gotPayload["job_id"])
	}
	if gotPayload["first_name"] != "Ada" {
		t.Fatalf("expected form fields to pass through, got %v", gotPayload)
	}
	if result.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", result.StatusCode)
	}
	if !strings.Contains(string(result.Body), "12345") {
		t.Fatalf("expected upstream body to be returned, got %s", result.Body)
	}
}

func TestSubmitApplication_UpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"message":"email is required"}]}`))
	}))
	defer srv.Close()

	client := NewClient("", srv.URL, nil)
	_, err := client.SubmitApplication(context.Background(), "harvest-key", 100, nil)
	if err == nil {
		t.Fatal("expected an error for 422")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an upstream API error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "email is required") {
		t.Fatalf("expected the upstream body verbatim, got %q", apiErr.Body)
	}
}

func TestSubmitApplication_DoesNotMutateFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	fields := map[string]any{"first_name": "Ada"}
	client := NewClient("", srv.URL, nil)
	if _, err := client.SubmitApplication(context.Background(), "k", 1, fields); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := fields["job_id"]; ok {
		t.Fatal("expected the caller's field map to stay untouched")
	}
}
