package writer

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/pingcap/errors"
)

type csvWriter struct {
	separator rune
	header    bool
}

func (c *csvWriter) FileSuffix() string { return "csv" }

func (c *csvWriter) WriteRecord(w io.Writer, rec arrow.Record) error {
	cw := csv.NewWriter(w, rec.Schema(),
		csv.WithComma(c.separator),
		csv.WithHeader(c.header),
	)
	if err := cw.Write(rec); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(cw.Flush())
}
