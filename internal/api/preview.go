package api

import (
	"bytes"
	"encoding/base64"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/DanLigairi1978/ProID/internal/export"
	"github.com/DanLigairi1978/ProID/internal/pipeline"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// previewFrame is sent for every edit received on the preview socket.
type previewFrame struct {
	Front   string `json:"front,omitempty"` // data URI, PNG
	Back    string `json:"back,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// previewHandler re-renders both faces at base resolution each time the
// client sends a card request, so an editor can show a live preview.
func (s *Server) previewHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger(c).Println("ws upgrade:", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.bodyLimit())

	p := s.pipeline(c, nil)
	p.Scale = 1
	for {
		var req cardRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger(c).Println("ws read:", err)
			}
			return
		}
		cfg := s.Defaults
		if req.Config != nil {
			cfg = *req.Config
		}

		var out previewFrame
		faces, err := p.Render(c.Request.Context(), req.Player, cfg)
		if err != nil {
			out.Message = pipeline.Message(export.KindImage, err)
			out.Error = err.Error()
		} else if out.Front, err = pngDataURI(faces.Front.Image); err == nil {
			out.Back, err = pngDataURI(faces.Back.Image)
		}
		if err != nil && out.Error == "" {
			out.Message = pipeline.MsgImagesFailed
			out.Error = err.Error()
		}

		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(out); err != nil {
			s.logger(c).Println("ws write:", err)
			return
		}
	}
}

func pngDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
