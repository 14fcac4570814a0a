package writer

import "github.com/jpare/shelllink/pkg/types"

// MemWriter captures .lnk bytes in memory, used by round-trip tests that
// don't need a real file.
type MemWriter struct {
	Buf []byte
}

// Write encodes link per opts and stores the result.
func (w *MemWriter) Write(link *types.ShellLink, opts types.WriteOptions) error {
	buf, err := Encode(link, opts)
	if err != nil {
		return err
	}
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
