// Package writer persists materialized relations as parquet or csv
// files on any storage backend the config can describe (local path,
// s3, gcs).
package writer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/br/pkg/storage"

	"tpchtable/config"
	"tpchtable/util"
)

// formatWriter encodes one record into one file.
type formatWriter interface {
	FileSuffix() string
	WriteRecord(w io.Writer, rec arrow.Record) error
}

// Writer writes tables through an ExternalStorage backend. It
// implements the orchestrator's TableWriter.
type Writer struct {
	cfg      *config.Config
	store    storage.ExternalStorage
	format   formatWriter
	progress *util.TableProgress
}

// SetProgress attaches a progress tracker; written bytes are reported
// to it. Nil detaches.
func (w *Writer) SetProgress(p *util.TableProgress) { w.progress = p }

// New builds a Writer from cfg. The config must already be normalized
// and validated.
func New(cfg *config.Config) (*Writer, error) {
	store, err := config.GetStore(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var format formatWriter
	switch strings.ToLower(strings.TrimSpace(cfg.Common.FileFormat)) {
	case "parquet":
		codec, err := parquetCompressionCodec(cfg.Parquet.Compression)
		if err != nil {
			return nil, errors.Trace(err)
		}
		format = &parquetWriter{codec: codec, pageSize: cfg.Parquet.PageSizeBytes}
	case "csv":
		format = &csvWriter{separator: rune(cfg.CSV.Separator[0]), header: cfg.CSV.Header}
	default:
		return nil, errors.Errorf("unsupported format: %q", cfg.Common.FileFormat)
	}

	return &Writer{cfg: cfg, store: store, format: format}, nil
}

// WriteTable writes rec as a single file named after the table.
func (w *Writer) WriteTable(name string, rec arrow.Record) error {
	ctx := context.Background()

	fileName := fmt.Sprintf("%s.%s", name, w.format.FileSuffix())
	if w.cfg.Common.Prefix != "" {
		fileName = w.cfg.Common.Prefix + "/" + fileName
	}

	fw, err := w.store.Create(ctx, fileName, nil)
	if err != nil {
		return errors.Annotatef(err, "create %s", fileName)
	}

	if err := w.format.WriteRecord(&writeWrapper{ctx: ctx, w: fw, progress: w.progress}, rec); err != nil {
		_ = fw.Close(ctx)
		return errors.Annotatef(err, "write %s", fileName)
	}
	return errors.Trace(fw.Close(ctx))
}

// writeWrapper adapts an ExternalFileWriter to io.Writer for the
// format encoders, counting bytes into the progress tracker.
type writeWrapper struct {
	ctx      context.Context
	w        storage.ExternalFileWriter
	progress *util.TableProgress
}

func (ww *writeWrapper) Write(b []byte) (int, error) {
	n, err := ww.w.Write(ww.ctx, b)
	if ww.progress != nil {
		ww.progress.AddBytes(int64(n))
	}
	return n, err
}
