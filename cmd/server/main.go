package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanLigairi1978/ProID/internal/api"
	"github.com/DanLigairi1978/ProID/internal/config"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	imagepkg "github.com/DanLigairi1978/ProID/internal/image"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	defaults, err := cfg.CardConfig()
	if err != nil {
		log.Fatal("config: ", err)
	}
	raster, err := imagepkg.NewRasterizer(imagepkg.NewSourceLoader())
	if err != nil {
		log.Fatal(err)
	}

	srv := &api.Server{
		Raster:      raster,
		Scale:       cfg.Render.Scale,
		JPEGQuality: cfg.Render.JPEGQuality,
		Defaults:    defaults,
	}
	// The server streams exports back by default. Only an explicit device
	// mode saves them on the host.
	if cfg.Delivery.Mode == string(delivery.ModeDevice) {
		sink, err := delivery.Probe(cfg.DeliveryOptions())
		if err != nil {
			log.Fatal("delivery: ", err)
		}
		srv.Device = sink
	}

	r := gin.Default()
	api.RegisterRoutes(r, srv)

	log.Println("starting server on http://localhost" + cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
