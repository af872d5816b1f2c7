package cli

import (
	"context"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	"github.com/DanLigairi1978/ProID/internal/pipeline"
	"github.com/DanLigairi1978/ProID/internal/util"
)

var (
	renderCard   cardFlags
	renderPlayer playerFlags
	renderOut    outputFlags
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one player's card and export it",
	Long: `Render lays out both faces of a player's card, rasterizes them and exports
either two JPEGs (front and back) or a single-page PDF.

Examples:
  proid render -n "Jonathan Doe" -p Fly-Half --team "Harbour RFC" --dob 1990-01-01
  proid render -n "Jonathan Doe" -p Hooker -t C --pdf -o ./cards`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		player, err := renderPlayer.player()
		if err != nil {
			return err
		}
		cc, err := renderCard.cardConfig(cfg)
		if err != nil {
			return err
		}
		sink, err := delivery.Probe(renderOut.deliveryOptions(cfg))
		if err != nil {
			return err
		}
		p, err := newPipeline(cfg, sink)
		if err != nil {
			return err
		}

		st := export(cmd.Context(), p, player, cc, renderOut.pdf)
		printStatus(st)
		if !st.OK() {
			return fmt.Errorf("export failed")
		}
		return saveHeld(sink)
	},
}

func init() {
	renderCard.register(renderCmd)
	renderPlayer.register(renderCmd)
	renderOut.register(renderCmd)
}

func export(ctx context.Context, p *pipeline.Pipeline, player cards.PlayerData, cc cards.CardConfig, pdf bool) pipeline.Status {
	if ctx == nil {
		ctx = context.Background()
	}
	if pdf {
		return p.RenderAndExportPdf(ctx, player, cc)
	}
	return p.RenderAndExportImages(ctx, player, cc)
}

func printStatus(st pipeline.Status) {
	if st.OK() {
		fmt.Println(colorize.GreenString("✔ ") + st.Message)
		return
	}
	fmt.Fprintln(os.Stderr, colorize.RedString("✘ ")+st.Message)
	fmt.Fprintln(os.Stderr, colorize.HiBlackString("  %v", st.Err))
}

// saveHeld drops artifacts kept by the in-memory sink into the working
// directory, where a terminal user expects a "download" to land.
func saveHeld(sink delivery.Deliverer) error {
	mem, ok := sink.(*delivery.MemorySink)
	if !ok {
		return nil
	}
	for _, a := range mem.Artifacts() {
		if err := util.WriteFileAtomic(a.Name, a.Data); err != nil {
			return err
		}
		fmt.Println(colorize.CyanString("  saved ") + a.Name)
	}
	return nil
}
