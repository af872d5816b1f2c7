package api

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	"github.com/DanLigairi1978/ProID/internal/export"
	imagepkg "github.com/DanLigairi1978/ProID/internal/image"
	"github.com/DanLigairi1978/ProID/internal/layout"
	"github.com/DanLigairi1978/ProID/internal/pipeline"
)

// StatusHeader carries the user-facing status message on file responses.
const StatusHeader = "X-ProID-Status"

// cardRequest is the body of layout and export calls. A missing config
// falls back to the server defaults.
type cardRequest struct {
	Player cards.PlayerData  `json:"player"`
	Config *cards.CardConfig `json:"config"`
}

func (s *Server) bind(c *gin.Context) (cardRequest, cards.CardConfig, bool) {
	var req cardRequest
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.bodyLimit())
	if err := c.ShouldBindJSON(&req); err != nil {
		code := http.StatusBadRequest
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			code = http.StatusRequestEntityTooLarge
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return req, cards.CardConfig{}, false
	}
	cfg := s.Defaults
	if req.Config != nil {
		cfg = *req.Config
	}
	return req, cfg, true
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// templates lists the selectable templates, formats and positions.
func templatesHandler(c *gin.Context) {
	type format struct {
		ID     cards.Format `json:"id"`
		Label  string       `json:"label"`
		Width  int          `json:"width"`
		Height int          `json:"height"`
	}
	formats := make([]format, 0, len(cards.Formats))
	for _, f := range cards.Formats {
		size, _ := f.Dimensions()
		formats = append(formats, format{ID: f, Label: f.Label(), Width: size.Width, Height: size.Height})
	}
	c.JSON(http.StatusOK, gin.H{
		"templates": cards.TemplateColors,
		"formats":   formats,
		"positions": cards.Positions,
	})
}

// layoutHandler returns both resolved layout trees without rasterizing.
func (s *Server) layoutHandler(c *gin.Context) {
	req, cfg, ok := s.bind(c)
	if !ok {
		return
	}
	front, err := layout.ResolveFront(req.Player, cfg)
	if err != nil {
		c.JSON(statusCode(err), gin.H{"error": err.Error(), "message": pipeline.MsgInvalidConfig})
		return
	}
	back, err := layout.ResolveBack(req.Player, cfg)
	if err != nil {
		c.JSON(statusCode(err), gin.H{"error": err.Error(), "message": pipeline.MsgInvalidConfig})
		return
	}
	c.JSON(http.StatusOK, gin.H{"front": front, "back": back})
}

func (s *Server) exportJpegHandler(c *gin.Context) {
	req, cfg, ok := s.bind(c)
	if !ok {
		return
	}
	if s.Device != nil {
		st := s.pipeline(c, s.Device).RenderAndExportImages(c.Request.Context(), req.Player, cfg)
		respondStatus(c, st)
		return
	}

	sink := &delivery.MemorySink{}
	st := s.pipeline(c, sink).RenderAndExportImages(c.Request.Context(), req.Player, cfg)
	if !st.OK() {
		respondStatus(c, st)
		return
	}
	body, err := zipArtifacts(sink.Artifacts())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "message": pipeline.MsgImagesNotSave})
		return
	}
	name := export.BaseName(req.Player.FullName) + "_ID_JPEGs.zip"
	c.Header(StatusHeader, st.Message)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/zip", body)
}

func (s *Server) exportPdfHandler(c *gin.Context) {
	req, cfg, ok := s.bind(c)
	if !ok {
		return
	}
	if s.Device != nil {
		st := s.pipeline(c, s.Device).RenderAndExportPdf(c.Request.Context(), req.Player, cfg)
		respondStatus(c, st)
		return
	}

	sink := &delivery.MemorySink{}
	st := s.pipeline(c, sink).RenderAndExportPdf(c.Request.Context(), req.Player, cfg)
	if !st.OK() {
		respondStatus(c, st)
		return
	}
	doc := sink.Artifacts()[0]
	c.Header(StatusHeader, st.Message)
	c.Header("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func respondStatus(c *gin.Context, st pipeline.Status) {
	if st.OK() {
		c.JSON(http.StatusOK, gin.H{"message": st.Message})
		return
	}
	c.JSON(statusCode(st.Err), gin.H{"message": st.Message, "error": st.Err.Error()})
}

func statusCode(err error) int {
	var cerr *cards.ConfigurationError
	var rerr *imagepkg.RasterizationError
	switch {
	case errors.As(err, &cerr):
		return http.StatusBadRequest
	case errors.As(err, &rerr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func zipArtifacts(arts []export.Artifact) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, a := range arts {
		w, err := zw.Create(a.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(a.Data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 256
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
