package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"k8s.io/client-go/kubernetes/fake"

	"chassisml.io/coreservice/internal/buildserver/config"
	"chassisml.io/coreservice/internal/buildserver/contextcache"
	"chassisml.io/coreservice/internal/buildserver/manager"
)

func newTestRouter(t *testing.T) (http.Handler, *manager.ServiceState) {
	t.Helper()
	state := &manager.ServiceState{
		Clientset: fake.NewSimpleClientset(),
		Namespace: "default",
		Cache:     contextcache.New(t.TempDir(), "pod-0", "build-svc", 8080, zap.NewNop()),
		Config: config.Config{
			BuildTimeout:          5 * time.Second,
			BuildTTLAfterFinished: 10 * time.Second,
			BuildResourcesJSON:    `{}`,
			BuilderImage:          "ghcr.io/chassisml/builder:latest",
		},
		Log: zap.NewNop(),
	}
	return NewRouter(state), state
}

func multipartBuildRequest(t *testing.T, config, context string) (*http.Request, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	cw, err := w.CreateFormField("build_config")
	if err != nil {
		t.Fatal(err)
	}
	cw.Write([]byte(config))

	xw, err := w.CreateFormField("build_context")
	if err != nil {
		t.Fatal(err)
	}
	xw.Write([]byte(context))

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/build", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, w.Boundary()
}

func TestLivenessRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "Alive!"},
		{"/version", http.StatusOK, "1.5.0"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.wantStatus {
			t.Errorf("%s: status = %d, want %d", tc.path, rec.Code, tc.wantStatus)
		}
		if rec.Body.String() != tc.wantBody {
			t.Errorf("%s: body = %q, want %q", tc.path, rec.Body.String(), tc.wantBody)
		}
	}
}

func TestGoneRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/test", "/job/abc/download-tar"} {
		method := http.MethodPost
		if path != "/test" {
			method = http.MethodGet
		}
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusGone {
			t.Errorf("%s: status = %d, want 410", path, rec.Code)
		}
	}
}

func TestBuildRejectsWrongUserAgent(t *testing.T) {
	router, _ := newTestRouter(t)

	req, _ := multipartBuildRequest(t, `{"image_name":"u/i","tag":"t"}`, "1234")
	req.Header.Set("User-Agent", "Other/1.0")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if rec.Body.String() != rejectedUserAgentBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), rejectedUserAgentBody)
	}
}

func TestBuildAcceptsValidRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	req, _ := multipartBuildRequest(t, `{"image_name":"u/i","tag":"t"}`, "1234")
	req.Header.Set("User-Agent", requiredUserAgent)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
}
