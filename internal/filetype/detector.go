package filetype

import (
    "fmt"

    "github.com/gabriel-vasile/mimetype"
    "github.com/rs/zerolog/log"
)

// Info contains the detected type of an uploaded file.
type Info struct {
    MIMEType  string
    Extension string
    IsPDF     bool
}

// Detector identifies uploads by magic bytes, never by filename.
type Detector struct{}

func New() *Detector { return &Detector{} }

// Detect sniffs the file's real type.
func (d *Detector) Detect(path string) (*Info, error) {
    mtype, err := mimetype.DetectFile(path)
    if err != nil {
        return nil, fmt.Errorf("failed to detect file type: %w", err)
    }

    info := &Info{
        MIMEType:  mtype.String(),
        Extension: mtype.Extension(),
        IsPDF:     mtype.Is("application/pdf"),
    }

    log.Debug().Str("mime", info.MIMEType).Str("ext", info.Extension).Str("file", path).Msg("detected file type")
    return info, nil
}
