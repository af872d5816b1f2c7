package cli

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DanLigairi1978/ProID/internal/cards"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List templates, card formats and positions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(colorize.CyanString("Templates:"))
		for _, tc := range cards.TemplateColors {
			fmt.Printf("  %s %s%s %s  %s\n",
				colorize.HiWhiteString("%-8s", tc.Template.Label()),
				swatch(tc.Primary), swatch(tc.Secondary),
				tc.Name, colorize.HiBlackString("%s / %s", tc.Primary.Hex(), tc.Secondary.Hex()))
		}
		fmt.Println(colorize.CyanString("Formats:"))
		for _, f := range cards.Formats {
			size, _ := f.Dimensions()
			fmt.Printf("  %s %s\n", colorize.HiWhiteString("%-18s", f.Label()), size)
		}
		fmt.Println(colorize.CyanString("Positions:"))
		for i, p := range cards.Positions {
			fmt.Printf("  %2d %s\n", i+1, p)
		}
	},
}
