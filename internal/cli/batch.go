package cli

import (
	"fmt"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/deck"
	"github.com/DanLigairi1978/ProID/internal/delivery"
	"github.com/DanLigairi1978/ProID/internal/util"
)

var (
	batchCard cardFlags
	batchOut  outputFlags

	batchPositions []string
	batchTeams     []string
	batchQuery     string
	batchPhoto     string
	batchManifest  string
)

var batchCmd = &cobra.Command{
	Use:   "batch [roster.csv]",
	Short: "Export a card for every player in a roster CSV",
	Long: `Batch reads a roster CSV (header row with full_name, position, team_name,
dob, address, twitter, instagram and photo columns), filters it and exports
one card per selected player. A failed card does not stop the batch.

Examples:
  proid batch team.csv --pdf -o ./cards
  proid batch team.csv --position Hooker --position "Fly-Half" --photo with`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		roster, err := cards.LoadRosterFile(args[0])
		if err != nil {
			return err
		}
		opt := cards.FilterOptions{Teams: batchTeams, FreeWords: batchQuery, PhotoMode: batchPhoto}
		for _, s := range batchPositions {
			pos, err := cards.ParsePosition(s)
			if err != nil {
				return err
			}
			opt.Positions = append(opt.Positions, pos)
		}
		selected := cards.Filter(roster, opt)
		if len(selected) == 0 {
			return fmt.Errorf("no players in %s match the filters", args[0])
		}

		cc, err := batchCard.cardConfig(cfg)
		if err != nil {
			return err
		}
		sink, err := delivery.Probe(batchOut.deliveryOptions(cfg))
		if err != nil {
			return err
		}
		p, err := newPipeline(cfg, sink)
		if err != nil {
			return err
		}

		d := deck.Deck{Name: filepath.Base(args[0])}
		for _, player := range selected {
			st := export(cmd.Context(), p, player, cc, batchOut.pdf)
			d.Add(player, st.OK(), st.Message)
			mark := colorize.GreenString("✔")
			if !st.OK() {
				mark = colorize.RedString("✘")
				fmt.Fprintf(os.Stderr, "  %s: %v\n", player.FullName, st.Err)
			}
			fmt.Printf("%s %s %s\n", mark, colorize.HiWhiteString(player.FullName), st.Message)
		}
		if err := saveHeld(sink); err != nil {
			return err
		}

		manifest := deck.ExportDeckText(d)
		if batchManifest != "" {
			if err := util.WriteFileAtomic(batchManifest, []byte(manifest+"\n")); err != nil {
				return err
			}
		}
		fmt.Println()
		fmt.Println(manifest)
		if n := d.Failed(); n > 0 {
			return fmt.Errorf("%d of %d cards failed", n, len(d.Cards))
		}
		return nil
	},
}

func init() {
	batchCard.register(batchCmd)
	batchOut.register(batchCmd)
	batchCmd.Flags().StringArrayVar(&batchPositions, "position", nil, "only players in this position (repeatable)")
	batchCmd.Flags().StringArrayVar(&batchTeams, "team", nil, "only players whose team contains this text (repeatable)")
	batchCmd.Flags().StringVarP(&batchQuery, "query", "q", "", "only players matching every word")
	batchCmd.Flags().StringVar(&batchPhoto, "photo", "any", "photo filter: any, with or without")
	batchCmd.Flags().StringVar(&batchManifest, "manifest", "", "also write the batch manifest to this file")
}
