package sound

import (
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// WAV encodes buf as a WAV file.
func WAV(buf *beep.Buffer) ([]byte, error) {
	var w seekBuffer

	err := wav.Encode(&w, buf.Streamer(0, buf.Len()), buf.Format())
	if err != nil {
		return nil, err
	}

	return w.data, nil
}

// seekBuffer is an in-memory io.WriteSeeker; wav.Encode seeks back to
// patch the header sizes.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}

	n := copy(b.data[b.pos:], p)
	b.pos += n

	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	}

	if pos < 0 {
		return 0, errors.New("negative position")
	}

	b.pos = int(pos)

	return pos, nil
}
