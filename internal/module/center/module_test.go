package center

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

func newCenterRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	models := []any{
		&domain.Division{}, &domain.District{}, &domain.Upazila{},
		&domain.Center{}, &domain.CenterImage{}, &domain.CenterEmployee{},
		&domain.Designation{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router := gin.New()
	NewModule(db).RegisterRoutes(router.Group("/api"))
	return router, db
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestCenterImageLifecycle(t *testing.T) {
	router, db := newCenterRouter(t)

	parent := domain.Center{Name: "Dhaka Center"}
	if err := db.Create(&parent).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}

	w := do(t, router, http.MethodPost, "/api/center-images",
		`{"imageUrl":"https://cdn.example.org/front-gate.png","title":"Front gate","show":true,"center":{"id":"`+parent.ID+`"}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode[domain.CenterImage](t, w)
	if created.ImageURL != "https://cdn.example.org/front-gate.png" {
		t.Errorf("create: imageUrl = %q", created.ImageURL)
	}
	if created.Center == nil || created.Center.ID != parent.ID {
		t.Errorf("create: center not resolved: %+v", created.Center)
	}

	// Patching another field leaves the URL in place.
	w = do(t, router, http.MethodPatch, "/api/center-images/"+created.ID, `{"title":"Main entrance"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: status = %d, body %s", w.Code, w.Body.String())
	}
	patched := decode[domain.CenterImage](t, w)
	if patched.Title != "Main entrance" {
		t.Errorf("patch: title = %q", patched.Title)
	}
	if patched.ImageURL != created.ImageURL {
		t.Errorf("patch: imageUrl = %q, want unchanged", patched.ImageURL)
	}

	// Patching the URL itself only touches the URL.
	w = do(t, router, http.MethodPatch, "/api/center-images/"+created.ID,
		`{"imageUrl":"https://cdn.example.org/entrance.png"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch url: status = %d, body %s", w.Code, w.Body.String())
	}
	patched = decode[domain.CenterImage](t, w)
	if patched.ImageURL != "https://cdn.example.org/entrance.png" {
		t.Errorf("patch url: imageUrl = %q", patched.ImageURL)
	}
	if patched.Title != "Main entrance" || !patched.Show {
		t.Errorf("patch url: untouched fields changed: title=%q show=%v", patched.Title, patched.Show)
	}
}
