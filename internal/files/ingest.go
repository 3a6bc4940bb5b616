// Package files turns user-supplied blobs into self-contained attachments: a
// data URL embedding the MIME type and a base64 payload, decodable for
// download without any external fetch.
package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dental-center-management/internal/metrics"
	"dental-center-management/internal/model"
)

var ErrNotDataURL = errors.New("content is not a data url")

// Input is one blob to ingest. Type may be empty; it is then guessed from the
// file extension.
type Input struct {
	Name   string
	Type   string
	Reader io.Reader
}

// Result is the settled outcome of one ingestion.
type Result struct {
	Attachment *model.FileAttachment
	Err        error
}

type Ingestor struct {
	log *logrus.Logger
	met *metrics.Metrics
}

func New(log *logrus.Logger, met *metrics.Metrics) *Ingestor {
	return &Ingestor{log: log, met: met}
}

// Upload reads the blob to completion and encodes it. A read failure is
// returned as an error, never as a silently empty attachment.
func (ig *Ingestor) Upload(ctx context.Context, in Input) (*model.FileAttachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(in.Reader)
	if err != nil {
		ig.met.Uploads.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("read %s: %w", in.Name, err)
	}

	mt := in.Type
	if mt == "" {
		mt = mime.TypeByExtension(filepath.Ext(in.Name))
	}
	if mt == "" {
		mt = "application/octet-stream"
	}

	att := &model.FileAttachment{
		ID:      "f-" + uuid.New().String(),
		Name:    in.Name,
		Type:    mt,
		Content: Encode(mt, data),
		Size:    int64(len(data)),
	}
	ig.met.Uploads.WithLabelValues("success").Inc()
	return att, nil
}

// UploadAsync runs the ingestion off the calling flow and delivers exactly
// one Result on the returned channel. Abandoning the channel abandons the
// upload; the goroutine never blocks on delivery.
func (ig *Ingestor) UploadAsync(ctx context.Context, in Input) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		att, err := ig.Upload(ctx, in)
		ch <- Result{Attachment: att, Err: err}
		close(ch)
	}()
	return ch
}

// UploadAll ingests a batch, one Result per input in order. A failing file
// does not abort the rest.
func (ig *Ingestor) UploadAll(ctx context.Context, ins []Input) []Result {
	out := make([]Result, len(ins))
	for i, in := range ins {
		att, err := ig.Upload(ctx, in)
		if err != nil {
			ig.log.WithError(err).WithField("name", in.Name).Warn("upload failed")
		}
		out[i] = Result{Attachment: att, Err: err}
	}
	return out
}

// Encode builds the data URL for a payload.
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode reverses Encode, reconstructing the MIME type and raw bytes of a
// stored attachment for download.
func Decode(content string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(content, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	head, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mimeType, ok = strings.CutSuffix(head, ";base64")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}
	return mimeType, data, nil
}
