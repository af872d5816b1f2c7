package cli

import (
	"github.com/spf13/cobra"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/config"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	imagepkg "github.com/DanLigairi1978/ProID/internal/image"
	"github.com/DanLigairi1978/ProID/internal/pipeline"
)

// cardFlags are the presentation flags shared by every rendering command.
type cardFlags struct {
	format    string
	template  string
	primary   string
	secondary string
}

func (f *cardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "card format: CR79, CR80 or CR100")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "template style: A, B, C or D")
	cmd.Flags().StringVar(&f.primary, "primary", "", "primary colour as #RRGGBB (default: template colour)")
	cmd.Flags().StringVar(&f.secondary, "secondary", "", "secondary colour as #RRGGBB (default: template colour)")
}

// cardConfig starts from the configured defaults. A template flag switches
// to that template's colours; explicit colours win over both.
func (f *cardFlags) cardConfig(cfg *config.Config) (cards.CardConfig, error) {
	cc, err := cfg.CardConfig()
	if err != nil {
		return cards.CardConfig{}, err
	}
	if f.format != "" {
		if cc.Format, err = cards.ParseFormat(f.format); err != nil {
			return cards.CardConfig{}, err
		}
	}
	if f.template != "" {
		t, err := cards.ParseTemplate(f.template)
		if err != nil {
			return cards.CardConfig{}, err
		}
		cc = cards.ApplyTemplateDefaults(cc, t)
	}
	if f.primary != "" {
		if cc.PrimaryColor, err = cards.ParseHex(f.primary); err != nil {
			return cards.CardConfig{}, err
		}
	}
	if f.secondary != "" {
		if cc.SecondaryColor, err = cards.ParseHex(f.secondary); err != nil {
			return cards.CardConfig{}, err
		}
	}
	return cc, nil
}

// playerFlags describe a single player on the command line.
type playerFlags struct {
	name      string
	dob       string
	team      string
	address   string
	position  string
	twitter   string
	instagram string
	photo     string
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "player full name (required)")
	cmd.Flags().StringVar(&f.dob, "dob", "", "date of birth")
	cmd.Flags().StringVar(&f.team, "team", "", "team name")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
	cmd.Flags().StringVarP(&f.position, "position", "p", "", "playing position, e.g. \"Fly-Half\"")
	cmd.Flags().StringVar(&f.twitter, "twitter", "", "Twitter handle")
	cmd.Flags().StringVar(&f.instagram, "instagram", "", "Instagram handle")
	cmd.Flags().StringVar(&f.photo, "photo", "", "photo file, URL or data URI")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("position")
}

func (f *playerFlags) player() (cards.PlayerData, error) {
	pos, err := cards.ParsePosition(f.position)
	if err != nil {
		return cards.PlayerData{}, err
	}
	return cards.PlayerData{
		PlayerImage:     f.photo,
		FullName:        f.name,
		DOB:             f.dob,
		TeamName:        f.team,
		Address:         f.address,
		Position:        pos,
		TwitterHandle:   f.twitter,
		InstagramHandle: f.instagram,
	}, nil
}

// outputFlags pick where exports go.
type outputFlags struct {
	pdf  bool
	mode string
	out  string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.pdf, "pdf", false, "export a single-page PDF instead of two JPEGs")
	cmd.Flags().StringVar(&f.mode, "mode", "", "delivery mode: device, browser or auto (default from config)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "save every artifact into this directory")
}

func (f *outputFlags) deliveryOptions(cfg *config.Config) delivery.Options {
	opts := cfg.DeliveryOptions()
	if f.mode != "" {
		opts.Mode = delivery.Mode(f.mode)
	}
	if f.out != "" {
		opts.Mode = delivery.ModeDevice
		opts.GalleryDir = f.out
		opts.DownloadsDir = f.out
	}
	return opts
}

func newPipeline(cfg *config.Config, sink delivery.Deliverer) (*pipeline.Pipeline, error) {
	loader := imagepkg.NewSourceLoader()
	loader.AllowFiles = true
	raster, err := imagepkg.NewRasterizer(loader)
	if err != nil {
		return nil, err
	}
	return &pipeline.Pipeline{
		Raster:      raster,
		Delivery:    sink,
		Scale:       cfg.Render.Scale,
		JPEGQuality: cfg.Render.JPEGQuality,
	}, nil
}
