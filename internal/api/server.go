package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	"github.com/DanLigairi1978/ProID/internal/pipeline"
)

// Server serves card exports over HTTP.
type Server struct {
	Raster      pipeline.Rasterizer
	Scale       float64
	JPEGQuality int
	// Defaults fills in requests that omit the card config.
	Defaults cards.CardConfig
	// Device, when set, receives exports instead of streaming them back to
	// the caller.
	Device delivery.Deliverer
	Log    *log.Logger
	// MaxBodyBytes caps a request body or preview message. Zero means
	// DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes fits a base64 data URI of the largest accepted photo.
const DefaultMaxBodyBytes = 28 << 20

func (s *Server) bodyLimit() int64 {
	if s.MaxBodyBytes > 0 {
		return s.MaxBodyBytes
	}
	return DefaultMaxBodyBytes
}

const requestIDHeader = "X-Request-ID"

// requestID tags every request so log lines of one export can be matched.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) logger(c *gin.Context) *log.Logger {
	base := s.Log
	if base == nil {
		base = log.Default()
	}
	return log.New(base.Writer(), base.Prefix()+"["+c.GetString("request_id")+"] ", base.Flags())
}

func (s *Server) pipeline(c *gin.Context, sink delivery.Deliverer) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Raster:      s.Raster,
		Delivery:    sink,
		Scale:       s.Scale,
		JPEGQuality: s.JPEGQuality,
		Log:         s.logger(c),
	}
}
