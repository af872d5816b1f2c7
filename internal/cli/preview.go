package cli

import (
	"context"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DanLigairi1978/ProID/internal/pipeline"
)

var (
	previewCard   cardFlags
	previewPlayer playerFlags
	previewWidth  int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show both faces of a card in the terminal",
	Long: `Preview renders a card at base resolution and prints both faces as
true-colour ANSI art. Nothing is exported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		player, err := previewPlayer.player()
		if err != nil {
			return err
		}
		cc, err := previewCard.cardConfig(cfg)
		if err != nil {
			return err
		}
		p, err := newPipeline(cfg, nil)
		if err != nil {
			return err
		}
		p.Scale = 1

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		faces, err := p.Render(ctx, player, cc)
		if err != nil {
			printStatus(pipeline.Status{Message: pipeline.MsgImagesFailed, Err: err})
			return fmt.Errorf("preview failed")
		}

		width := previewWidth
		if width <= 0 {
			width = 64
			if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 && tw-4 < width {
				width = tw - 4
			}
		}
		if colorize.NoColor {
			fmt.Println("colour output is disabled; preview needs a true-colour terminal")
			return nil
		}

		fmt.Println()
		fmt.Println(colorize.CyanString("Front ") + colorize.HiWhiteString("%s · %s · %s", cc.Format.Label(), cc.Template.Label(), player.DisplayName()))
		fmt.Print(imageToANSI(faces.Front.Image, width))
		fmt.Println(colorize.CyanString("Back"))
		fmt.Print(imageToANSI(faces.Back.Image, width))
		fmt.Println()
		return nil
	},
}

func init() {
	previewCard.register(previewCmd)
	previewPlayer.register(previewCmd)
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 0, "width in terminal columns (default: fit the terminal, at most 64)")
}
