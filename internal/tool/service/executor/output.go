package executor

import (
	"bytes"

	"github.com/Cyclone1070/offcode/internal/tool/helper/content"
)

const (
	binaryMarker = "[binary output omitted]"
	sniffLen     = 8000
)

// streamBuffer keeps at most limit bytes of one child stream. If the opening
// bytes of the stream look binary, everything is dropped and String returns
// a marker. Write never fails, so the child is never blocked on a full pipe.
type streamBuffer struct {
	buf       bytes.Buffer
	limit     int
	sniffed   int
	binary    bool
	truncated bool
}

func newStreamBuffer(limit int) *streamBuffer {
	return &streamBuffer{limit: limit}
}

func (s *streamBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if s.binary {
		return n, nil
	}

	if s.sniffed < sniffLen {
		head := p[:min(len(p), sniffLen-s.sniffed)]
		if content.LooksBinary(head) {
			s.binary, s.truncated = true, true
			s.buf.Reset()
			return n, nil
		}
		s.sniffed += len(head)
	}

	room := max(s.limit-s.buf.Len(), 0)
	if len(p) > room {
		p = p[:room]
		s.truncated = true
	}
	s.buf.Write(p)
	return n, nil
}

func (s *streamBuffer) String() string {
	if s.binary {
		return binaryMarker
	}
	return s.buf.String()
}

func (s *streamBuffer) Truncated() bool {
	return s.truncated
}
