package delivery

import (
	"fmt"
	"log"

	"github.com/DanLigairi1978/ProID/internal/util"
)

type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeDevice  Mode = "device"
	ModeBrowser Mode = "browser"
)

type Options struct {
	Mode         Mode
	GalleryDir   string
	DownloadsDir string
}

// Probe picks the sink once at startup. Auto selects device storage when
// both directories are writable and falls back to the in-memory sink.
func Probe(opts Options) (Deliverer, error) {
	switch opts.Mode {
	case ModeDevice:
		if opts.GalleryDir == "" || opts.DownloadsDir == "" {
			return nil, fmt.Errorf("device delivery needs gallery and downloads directories")
		}
		return &DirSink{GalleryDir: opts.GalleryDir, DownloadsDir: opts.DownloadsDir}, nil
	case ModeBrowser:
		return &MemorySink{}, nil
	case ModeAuto, "":
		if opts.GalleryDir != "" && opts.DownloadsDir != "" &&
			util.Writable(opts.GalleryDir) && util.Writable(opts.DownloadsDir) {
			return &DirSink{GalleryDir: opts.GalleryDir, DownloadsDir: opts.DownloadsDir}, nil
		}
		log.Println("delivery: storage not writable, keeping artifacts in memory")
		return &MemorySink{}, nil
	}
	return nil, fmt.Errorf("unknown delivery mode %q", opts.Mode)
}
