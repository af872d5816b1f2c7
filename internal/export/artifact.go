package export

// Kind tells delivery sinks where an artifact belongs.
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// Artifact is a finished, in-memory export file.
type Artifact struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// JpegPair holds the two faces exported as separate images.
type JpegPair struct {
	Front Artifact
	Back  Artifact
}

// Artifacts returns the pair in delivery order.
func (p JpegPair) Artifacts() []Artifact {
	return []Artifact{p.Front, p.Back}
}
