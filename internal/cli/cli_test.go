package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/DanLigairi1978/ProID/internal/cards"
	"github.com/DanLigairi1978/ProID/internal/config"
	"github.com/DanLigairi1978/ProID/internal/delivery"
)

func TestImageToANSI(t *testing.T) {
	img := imaging.New(100, 60, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	out := imageToANSI(img, 20)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("rows = %d, want 6", len(lines))
	}
	for i, l := range lines {
		if n := strings.Count(l, "▀"); n != 20 {
			t.Fatalf("row %d has %d cells, want 20", i, n)
		}
		if !strings.HasPrefix(l, "\x1b[38;2;") || !strings.HasSuffix(l, "\x1b[0m") {
			t.Fatalf("row %d is not true-colour ANSI: %q", i, l)
		}
	}
	if imageToANSI(img, 0) != "" {
		t.Fatal("zero width should render nothing")
	}
}

func TestCardFlags(t *testing.T) {
	cfg := config.Default()
	cases := []struct {
		name    string
		flags   cardFlags
		want    cards.CardConfig
		wantErr bool
	}{
		{"defaults", cardFlags{}, cards.DefaultConfig(), false},
		{"template colours", cardFlags{template: "Style D", format: "CR79"}, cards.ApplyTemplateDefaults(cards.CardConfig{Format: cards.FormatCR79}, cards.TemplateD), false},
		{"explicit colour wins", cardFlags{template: "B", primary: "#112233"}, cards.CardConfig{
			Format: cards.FormatCR80, Template: cards.TemplateB,
			PrimaryColor: cards.MustHex("#112233"), SecondaryColor: cards.MustHex("#FFFFFF"),
		}, false},
		{"bad format", cardFlags{format: "CR90"}, cards.CardConfig{}, true},
		{"bad colour", cardFlags{secondary: "gold"}, cards.CardConfig{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.flags.cardConfig(cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tc.wantErr && got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPlayerFlags(t *testing.T) {
	f := playerFlags{name: "Jonathan Doe", position: "fly half", twitter: "@jdoe"}
	p, err := f.player()
	if err != nil {
		t.Fatal(err)
	}
	if p.Position != cards.FlyHalf || p.TwitterHandle != "@jdoe" {
		t.Fatalf("player = %+v", p)
	}
	f.position = "Striker"
	if _, err := f.player(); err == nil {
		t.Fatal("expected an error for an unknown position")
	}
}

func TestOutputFlags(t *testing.T) {
	cfg := config.Default()
	opts := (&outputFlags{out: "/tmp/cards"}).deliveryOptions(cfg)
	if opts.Mode != delivery.ModeDevice || opts.GalleryDir != "/tmp/cards" || opts.DownloadsDir != "/tmp/cards" {
		t.Fatalf("options = %+v", opts)
	}
	opts = (&outputFlags{mode: "browser"}).deliveryOptions(cfg)
	if opts.Mode != delivery.ModeBrowser {
		t.Fatalf("mode = %s", opts.Mode)
	}
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	c := config.Default()
	c.Render.Scale = 1
	if err := config.Save(path, c); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	out := t.TempDir()
	RootCmd.SetArgs([]string{"render", "--config", writeTestConfig(t),
		"-n", "Jonathan Doe", "-p", "Fly-Half", "--team", "Harbour RFC", "--pdf", "-o", out})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "Jonathan_Doe_ID_Card.pdf")); err != nil {
		t.Fatal(err)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	roster := filepath.Join(dir, "team.csv")
	csv := "name,position,team\nAl Prop,Loosehead Prop,Harbour RFC\nZed Wing,Fullback,Harbour RFC\nBo Lock,Lock,Harbour RFC\n"
	if err := os.WriteFile(roster, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "cards")
	manifest := filepath.Join(dir, "manifest.txt")
	RootCmd.SetArgs([]string{"batch", roster, "--config", writeTestConfig(t),
		"--position", "Loosehead Prop", "--position", "fullback", "-o", out, "--manifest", manifest})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Al_Prop_ID_Front.jpg", "Al_Prop_ID_Back.jpg", "Zed_Wing_ID_Front.jpg", "Zed_Wing_ID_Back.jpg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "Bo_Lock_ID_Front.jpg")); err == nil {
		t.Fatal("filtered player was exported")
	}
	b, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(b), "2 cards, 0 failed\n") {
		t.Fatalf("manifest = %q", b)
	}
}
