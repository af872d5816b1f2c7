package imagepkg

import (
	"fmt"

	"github.com/DanLigairi1978/ProID/internal/layout"
)

// RasterizationError reports the node that could not be drawn. A face that
// fails is never returned partially drawn.
type RasterizationError struct {
	Face layout.Face
	Node string
	Err  error
}

func (e *RasterizationError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("rasterize %s face: %v", e.Face, e.Err)
	}
	return fmt.Sprintf("rasterize %s face: node %s: %v", e.Face, e.Node, e.Err)
}

func (e *RasterizationError) Unwrap() error {
	return e.Err
}
