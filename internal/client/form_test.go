package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// roundTripperFunc runs on the caller's goroutine, so it can observe the
// form's saving flag while the request is in flight.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestFormSaveCreateLifecycle(t *testing.T) {
	var form *Form[assignment]
	var gotMethod string
	var sawSavingInFlight bool

	hc := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotMethod = req.Method
		sawSavingInFlight = form.Saving()
		return jsonResponse(http.StatusCreated, `{"id":"NEW-1","dutyType":"MAIN"}`), nil
	})}
	res := NewResource[assignment](New("http://api.test", WithHTTPClient(hc)), "center-employees")
	nav := &fakeNavigator{}
	form = NewForm(res, nav)

	form.Init(&assignment{DutyType: "MAIN"})
	if err := form.Save(context.Background()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST for an identifier-less entity", gotMethod)
	}
	if !sawSavingInFlight {
		t.Error("saving flag was not raised synchronously before the call")
	}
	if form.Saving() {
		t.Error("saving flag still raised after the save completed")
	}
	if nav.backCalls != 1 {
		t.Errorf("Back calls = %d, want 1 on success", nav.backCalls)
	}
	if got := form.Entity(); got == nil || got.ID != "NEW-1" {
		t.Errorf("entity after save = %+v, want the server's representation", got)
	}
}

func TestFormSaveUpdateDispatch(t *testing.T) {
	var gotMethod, gotPath string
	hc := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotMethod = req.Method
		gotPath = req.URL.Path
		return jsonResponse(http.StatusOK, `{"id":"ID-1","dutyType":"ADDITIONAL"}`), nil
	})}
	res := NewResource[assignment](New("http://api.test", WithHTTPClient(hc)), "center-employees")
	nav := &fakeNavigator{}
	form := NewForm(res, nav)

	form.Init(&assignment{ID: "ID-1", DutyType: "ADDITIONAL"})
	if err := form.Save(context.Background()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/api/center-employees/ID-1" {
		t.Errorf("request = %s %s, want PUT /api/center-employees/ID-1", gotMethod, gotPath)
	}
}

func TestFormSaveFailureLeavesFormEditable(t *testing.T) {
	hc := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "boom"), nil
	})}
	res := NewResource[assignment](New("http://api.test", WithHTTPClient(hc)), "center-employees")
	nav := &fakeNavigator{}
	form := NewForm(res, nav)

	form.Init(&assignment{DutyType: "MAIN"})
	err := form.Save(context.Background())
	if err == nil {
		t.Fatal("expected the save failure to surface")
	}

	if form.Saving() {
		t.Error("saving flag must be cleared on failure")
	}
	if nav.backCalls != 0 {
		t.Error("no back navigation on failure")
	}
	if got := form.Entity(); got == nil || got.DutyType != "MAIN" {
		t.Errorf("entity after failed save = %+v, want the unchanged working copy", got)
	}
}

func TestFormDefaultsApplyOnlyToNewEntities(t *testing.T) {
	res := NewResource[assignment](New("http://unused.invalid"), "center-employees")
	today := domain.Today()
	newForm := func() *Form[assignment] {
		return NewForm(res, &fakeNavigator{}, WithDefaults(func(a *assignment) {
			if a.JoiningDate == nil {
				d := today
				a.JoiningDate = &d
			}
		}))
	}

	t.Run("new entity gets the default", func(t *testing.T) {
		form := newForm()
		form.Init(&assignment{})
		got := form.Entity()
		if got.JoiningDate == nil || !got.JoiningDate.Equal(today) {
			t.Errorf("joiningDate = %v, want today's date", got.JoiningDate)
		}
	})

	t.Run("existing entity is left alone", func(t *testing.T) {
		form := newForm()
		form.Init(&assignment{ID: "ID-1"})
		if got := form.Entity(); got.JoiningDate != nil {
			t.Errorf("joiningDate = %v, want unset when editing", got.JoiningDate)
		}
	})
}

func TestSharedCollectionLoadKeepsSelection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"a"},{"id":"b"}]`)
	}))
	defer srv.Close()
	res := NewResource[assignment](New(srv.URL), "center-employees")

	selected := &assignment{ID: "z", DutyType: "MAIN"}
	var shared SharedCollection[assignment]

	// Whichever of "apply resolved entity" and "apply option page" runs
	// first, the selection stays in the list exactly once.
	shared.Include(selected)
	if err := shared.LoadFrom(context.Background(), res, QueryOptions{}, selected); err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	shared.Include(selected)

	items := shared.Items()
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	count := 0
	for _, it := range items {
		if it.ID == "z" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("selection appears %d times, want exactly once", count)
	}
}

func TestSharedCollectionLoadTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()
	res := NewResource[assignment](New(srv.URL), "center-employees")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var shared SharedCollection[assignment]
	if err := shared.LoadFrom(ctx, res, QueryOptions{}); err == nil {
		t.Fatal("expected a context deadline error")
	}
	if len(shared.Items()) != 0 {
		t.Error("failed load must not mutate the collection")
	}
}
