package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	imagepkg "github.com/DanLigairi1978/ProID/internal/image"
	"github.com/DanLigairi1978/ProID/internal/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	raster, err := imagepkg.NewRasterizer(imagepkg.NewSourceLoader())
	if err != nil {
		t.Fatal(err)
	}
	return &Server{
		Raster:   raster,
		Scale:    1,
		Defaults: cards.DefaultConfig(),
		Log:      log.New(io.Discard, "", 0),
	}
}

func routerFor(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, s)
	return r
}

func newTestRouter(t *testing.T, device delivery.Deliverer) *gin.Engine {
	t.Helper()
	s := newTestServer(t)
	s.Device = device
	return routerFor(s)
}

const cardBody = `{"player":{"full_name":"Jonathan Doe","dob":"1990-01-01","team_name":"Harbour RFC","position":"Fly-Half","twitter_handle":"@jdoe"}}`

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthSetsRequestID(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing request id header")
	}
}

func TestTemplates(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/templates", "")
	var out struct {
		Templates []cards.TemplateColor `json:"templates"`
		Formats   []struct {
			ID    string `json:"id"`
			Width int    `json:"width"`
		} `json:"formats"`
		Positions []string `json:"positions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Templates) != 4 || len(out.Formats) != 3 || len(out.Positions) != 14 {
		t.Fatalf("unexpected catalogue: %+v", out)
	}
	if out.Templates[0].Primary.Hex() != "#002D62" {
		t.Fatalf("template A primary = %s", out.Templates[0].Primary.Hex())
	}
}

func TestLayout(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/layout", cardBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	body := w.Body.String()
	for _, id := range []string{`"front.name"`, `"back.marker"`, `"back.contact.twitter"`} {
		if !strings.Contains(body, id) {
			t.Fatalf("layout missing %s", id)
		}
	}
}

func TestExportPdfStreams(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/export/pdf", cardBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %s", ct)
	}
	if got := w.Header().Get(StatusHeader); got != "PDF download started. Check your browser downloads." {
		t.Fatalf("status header = %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "Jonathan_Doe_ID_Card.pdf") {
		t.Fatalf("disposition = %s", w.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("body is not a PDF")
	}
}

func TestExportJpegZip(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/export/jpeg", cardBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	if strings.Join(names, ",") != "Jonathan_Doe_ID_Front.jpg,Jonathan_Doe_ID_Back.jpg" {
		t.Fatalf("zip entries = %v", names)
	}
}

func TestExportInvalidConfig(t *testing.T) {
	body := `{"player":{"full_name":"A B","position":"Hooker"},"config":{"card_format":"CR80","template":"E","primary_color":"#000000","secondary_color":"#FFFFFF"}}`
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/export/pdf", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var out map[string]string
	json.Unmarshal(w.Body.Bytes(), &out)
	if out["message"] != pipeline.MsgInvalidConfig {
		t.Fatalf("message = %q", out["message"])
	}
}

func TestExportToDevice(t *testing.T) {
	root := t.TempDir()
	sink := &delivery.DirSink{GalleryDir: filepath.Join(root, "gallery"), DownloadsDir: filepath.Join(root, "downloads")}
	w := do(newTestRouter(t, sink), http.MethodPost, "/api/export/pdf", cardBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var out map[string]string
	json.Unmarshal(w.Body.Bytes(), &out)
	if out["message"] != "PDF saved to Downloads folder." {
		t.Fatalf("message = %q", out["message"])
	}
	if _, err := os.Stat(filepath.Join(root, "downloads", "Jonathan_Doe_ID_Card.pdf")); err != nil {
		t.Fatal(err)
	}
}

func TestQR(t *testing.T) {
	r := newTestRouter(t, nil)
	if w := do(r, http.MethodGet, "/api/qr", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status without text = %d", w.Code)
	}
	w := do(r, http.MethodGet, "/api/qr?text=PROID&size=128", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("status = %d type = %s", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestPreviewSocket(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/preview"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(cardBody)); err != nil {
		t.Fatal(err)
	}
	var frame previewFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Error != "" || !strings.HasPrefix(frame.Front, "data:image/png;base64,") || frame.Back == "" {
		t.Fatalf("unexpected frame: error=%q front=%.30q", frame.Error, frame.Front)
	}

	bad := `{"player":{"full_name":"","position":"Hooker"}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(bad)); err != nil {
		t.Fatal(err)
	}
	frame = previewFrame{}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Message != pipeline.MsgInvalidConfig {
		t.Fatalf("message = %q", frame.Message)
	}
}

func TestExportRejectsHostFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.New(8, 8, color.NRGBA{R: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newTestRouter(t, nil)

	var bodies []string
	for _, ref := range []string{path, "/no/such/file.png"} {
		body := `{"player":{"full_name":"Jonathan Doe","position":"Hooker","player_image":` + strconv.Quote(ref) + `}}`
		w := do(r, http.MethodPost, "/api/export/pdf", body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status = %d, want 422", ref, w.Code)
		}
		if bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Fatalf("%s: a PDF was returned", ref)
		}
		var out map[string]string
		json.Unmarshal(w.Body.Bytes(), &out)
		if out["message"] != pipeline.MsgPdfFailed {
			t.Fatalf("%s: message = %q", ref, out["message"])
		}
		bodies = append(bodies, out["error"])
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("existing and missing files answer differently: %q vs %q", bodies[0], bodies[1])
	}
}

func TestBodyLimit(t *testing.T) {
	s := newTestServer(t)
	s.MaxBodyBytes = 1024
	r := routerFor(s)

	big := `{"player":{"full_name":"Jonathan Doe","position":"Hooker","player_image":"data:image/png;base64,` +
		strings.Repeat("A", 4096) + `"}}`
	w := do(r, http.MethodPost, "/api/export/pdf", big)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/layout", cardBody); w.Code != http.StatusOK {
		t.Fatalf("small body status = %d", w.Code)
	}
}

func TestPreviewSocketLimit(t *testing.T) {
	s := newTestServer(t)
	s.MaxBodyBytes = 1024
	srv := httptest.NewServer(routerFor(s))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws/preview", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	big := `{"player":{"full_name":"` + strings.Repeat("A", 4096) + `","position":"Hooker"}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(big)); err != nil {
		t.Fatal(err)
	}
	var frame previewFrame
	if err := conn.ReadJSON(&frame); err == nil {
		t.Fatalf("oversized message was answered: %+v", frame)
	}
}
