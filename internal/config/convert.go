package config

import (
	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/delivery"
)

// CardConfig builds the default card configuration from [render], with the
// template's recommended colours.
func (c *Config) CardConfig() (cards.CardConfig, error) {
	format, err := cards.ParseFormat(c.Render.Format)
	if err != nil {
		return cards.CardConfig{}, err
	}
	tmpl, err := cards.ParseTemplate(c.Render.Template)
	if err != nil {
		return cards.CardConfig{}, err
	}
	return cards.ApplyTemplateDefaults(cards.CardConfig{Format: format}, tmpl), nil
}

func (c *Config) DeliveryOptions() delivery.Options {
	return delivery.Options{
		Mode:         delivery.Mode(c.Delivery.Mode),
		GalleryDir:   c.Delivery.GalleryDir,
		DownloadsDir: c.Delivery.DownloadsDir,
	}
}
