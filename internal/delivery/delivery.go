// Package delivery hands finished artifacts to their destination: device
// storage or the caller's browser.
package delivery

import (
	"context"
	"fmt"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/DanLigairi1978/ProID/internal/export"
	"github.com/DanLigairi1978/ProID/internal/util"
)

// Deliverer is the artifact sink. Notice is the user-facing success message
// for a completed export of the given kind.
type Deliverer interface {
	Deliver(ctx context.Context, a export.Artifact) error
	Notice(kind export.Kind) string
}

// Retractor is implemented by sinks that can take back an artifact they
// already accepted, so a failed multi-file export leaves nothing behind.
type Retractor interface {
	Retract(ctx context.Context, a export.Artifact) error
}

// DeliveryError reports that an artifact was produced but could not be
// saved.
type DeliveryError struct {
	Name string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver %s: %v", e.Name, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// DirSink stores images in a gallery directory and PDFs in a downloads
// directory, the way a device build saves to Photos and Downloads.
type DirSink struct {
	GalleryDir   string
	DownloadsDir string
}

func (s *DirSink) dirFor(kind export.Kind) string {
	if kind == export.KindPDF {
		return s.DownloadsDir
	}
	return s.GalleryDir
}

func (s *DirSink) Deliver(ctx context.Context, a export.Artifact) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Name: a.Name, Err: err}
	}
	if len(a.Data) == 0 {
		return &DeliveryError{Name: a.Name, Err: fmt.Errorf("empty artifact")}
	}
	dir := s.dirFor(a.Kind)
	if dir == "" {
		return &DeliveryError{Name: a.Name, Err: fmt.Errorf("no directory configured for %s artifacts", a.Kind)}
	}
	path := filepath.Join(dir, filepath.Base(a.Name))
	if err := util.WriteFileAtomic(path, a.Data); err != nil {
		return &DeliveryError{Name: a.Name, Err: err}
	}
	log.Printf("delivery: saved %s (%d bytes)", path, len(a.Data))
	return nil
}

// Retract removes a previously saved artifact. A file that is already gone
// is not an error.
func (s *DirSink) Retract(ctx context.Context, a export.Artifact) error {
	path := filepath.Join(s.dirFor(a.Kind), filepath.Base(a.Name))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	log.Printf("delivery: removed %s", path)
	return nil
}

func (s *DirSink) Notice(kind export.Kind) string {
	if kind == export.KindPDF {
		return "PDF saved to Downloads folder."
	}
	return "JPEGs saved to device Gallery."
}

// MemorySink keeps artifacts for the caller to stream, e.g. as an HTTP
// download.
type MemorySink struct {
	mu        sync.Mutex
	artifacts []export.Artifact
}

func (s *MemorySink) Deliver(ctx context.Context, a export.Artifact) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Name: a.Name, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts = append(s.artifacts, a)
	return nil
}

func (s *MemorySink) Retract(ctx context.Context, a export.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.artifacts) - 1; i >= 0; i-- {
		if s.artifacts[i].Name == a.Name {
			s.artifacts = append(s.artifacts[:i], s.artifacts[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemorySink) Notice(kind export.Kind) string {
	if kind == export.KindPDF {
		return "PDF download started. Check your browser downloads."
	}
	return "JPEG downloads started. Check your browser downloads."
}

// Artifacts returns a copy of what has been delivered so far.
func (s *MemorySink) Artifacts() []export.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]export.Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out
}
