package crud

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

type divisionPatch struct {
	PatchBase
	Name   *string `json:"name"`
	BnName *string `json:"bnName"`
}

func applyDivisionPatch(d *domain.Division, p divisionPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.BnName != nil {
		d.BnName = *p.BnName
	}
}

func newDivisionRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(newDivisionRepo(newTestDB(t)))
	handler := NewHandler("divisions", svc, applyDivisionPatch)

	router := gin.New()
	handler.Register(router.Group("/api"))
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createDivisionViaAPI(t *testing.T, router *gin.Engine, name string) domain.Division {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/divisions", `{"name":"`+name+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/divisions = %d, body %s", w.Code, w.Body.String())
	}
	var created domain.Division
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created division: %v", err)
	}
	return created
}

func TestHandlerCreate(t *testing.T) {
	router := newDivisionRouter(t)

	w := doJSON(router, http.MethodPost, "/api/divisions", `{"name":"Dhaka","bnName":"ঢাকা"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var created domain.Division
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("response is not an entity body: %v", err)
	}
	if created.ID == "" || created.Name != "Dhaka" {
		t.Errorf("created = %+v, want server-assigned id and fields echoed", created)
	}
	if loc := w.Header().Get("Location"); loc != "/api/divisions/"+created.ID {
		t.Errorf("Location = %q, want %q", loc, "/api/divisions/"+created.ID)
	}
}

func TestHandlerCreateRejectsPresentID(t *testing.T) {
	router := newDivisionRouter(t)

	w := doJSON(router, http.MethodPost, "/api/divisions", `{"id":"pre-set","name":"Dhaka"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandlerGet(t *testing.T) {
	router := newDivisionRouter(t)
	created := createDivisionViaAPI(t, router, "Dhaka")

	w := doJSON(router, http.MethodGet, "/api/divisions/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got domain.Division
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("id = %q, want %q", got.ID, created.ID)
	}
}

func TestHandlerGetMissingReturnsEmptyBody(t *testing.T) {
	router := newDivisionRouter(t)

	w := doJSON(router, http.MethodGet, "/api/divisions/no-such-id", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	// The admin client's resolver keys on the empty body.
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

func TestHandlerList(t *testing.T) {
	router := newDivisionRouter(t)
	for _, name := range []string{"Dhaka", "Khulna", "Sylhet"} {
		createDivisionViaAPI(t, router, name)
	}

	w := doJSON(router, http.MethodGet, "/api/divisions?page=1&page_size=2&sort=name:asc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("X-Total-Count"); got != "3" {
		t.Errorf("X-Total-Count = %q, want %q", got, "3")
	}

	var items []domain.Division
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("body is not a raw item array: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Dhaka" {
		t.Errorf("items = %+v, want first page of 2 sorted by name", items)
	}
}

func TestHandlerUpdate(t *testing.T) {
	router := newDivisionRouter(t)
	created := createDivisionViaAPI(t, router, "Dhaka")

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{
			name:     "full replace",
			path:     "/api/divisions/" + created.ID,
			body:     `{"id":"` + created.ID + `","name":"Dhaka Division"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "missing body id",
			path:     "/api/divisions/" + created.ID,
			body:     `{"name":"Dhaka Division"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "body and path disagree",
			path:     "/api/divisions/other-id",
			body:     `{"id":"` + created.ID + `","name":"Dhaka Division"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown id",
			path:     "/api/divisions/no-such-id",
			body:     `{"id":"no-such-id","name":"Dhaka Division"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPut, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestHandlerPatchMergesAbsentFields(t *testing.T) {
	router := newDivisionRouter(t)

	w := doJSON(router, http.MethodPost, "/api/divisions", `{"name":"Dhaka","bnName":"ঢাকা"}`)
	var created domain.Division
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	w = doJSON(router, http.MethodPatch, "/api/divisions/"+created.ID, `{"name":"Dhaka Division"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var patched domain.Division
	if err := json.Unmarshal(w.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode patched: %v", err)
	}
	if patched.Name != "Dhaka Division" {
		t.Errorf("Name = %q, want %q", patched.Name, "Dhaka Division")
	}
	if patched.BnName != "ঢাকা" {
		t.Errorf("BnName = %q, want unchanged by merge-patch", patched.BnName)
	}
}

func TestHandlerPatchUnknownID(t *testing.T) {
	router := newDivisionRouter(t)

	w := doJSON(router, http.MethodPatch, "/api/divisions/no-such-id", `{"name":"X"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandlerPatchIDDisagreement(t *testing.T) {
	router := newDivisionRouter(t)
	created := createDivisionViaAPI(t, router, "Dhaka")

	w := doJSON(router, http.MethodPatch, "/api/divisions/"+created.ID, `{"id":"other-id","name":"X"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandlerDelete(t *testing.T) {
	router := newDivisionRouter(t)
	created := createDivisionViaAPI(t, router, "Dhaka")

	w := doJSON(router, http.MethodDelete, "/api/divisions/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}

	w = doJSON(router, http.MethodDelete, "/api/divisions/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status after repeat delete = %d, want 404", w.Code)
	}
}
