package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/DanLigairi1978/ProID/internal/util"
)

// Loader resolves an opaque image reference into a decoded image.
type Loader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// ErrFileSource is returned for local file references when AllowFiles is off.
var ErrFileSource = errors.New("local file references are not allowed")

// SourceLoader understands data URIs and http(s) URLs, plus local file paths
// when AllowFiles is set. Servers leave it off.
type SourceLoader struct {
	Client     *http.Client
	AllowFiles bool
}

func NewSourceLoader() *SourceLoader {
	return &SourceLoader{Client: &http.Client{Timeout: 10 * time.Second}}
}

func (l *SourceLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	var (
		body []byte
		err  error
	)
	switch {
	case strings.HasPrefix(ref, "data:"):
		body, err = decodeDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		body, err = util.GetBytes(ctx, l.Client, ref)
	case !l.AllowFiles:
		return nil, ErrFileSource
	default:
		body, err = os.ReadFile(ref)
	}
	if err != nil {
		return nil, err
	}
	return DecodeImage(body)
}

// DecodeImage decodes any registered format, honouring EXIF orientation.
func DecodeImage(b []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// decodeDataURI returns the payload of "data:[<type>][;base64],<data>".
func decodeDataURI(ref string) ([]byte, error) {
	meta, data, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			// some encoders drop the padding
			b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("data URI: %w", err)
		}
		return b, nil
	}
	s, err := url.PathUnescape(data)
	if err != nil {
		return nil, fmt.Errorf("data URI: %w", err)
	}
	return []byte(s), nil
}
