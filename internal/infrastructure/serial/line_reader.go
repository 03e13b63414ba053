package serial

import (
	"bytes"
	"errors"
	"io"

	"husk-grader/internal/domain/port"
)

// DefaultMaxLine предел длины строки, длинный мусор отбрасывается кусками
const DefaultMaxLine = 512

// LineReader собирает строки из источника с таймаутом чтения.
// Источник должен возвращать управление, когда данных нет (0, nil или io.EOF).
type LineReader struct {
	src     io.Reader
	buf     bytes.Buffer
	chunk   []byte
	maxLine int
}

// NewLineReader создаёт читатель строк поверх src
func NewLineReader(src io.Reader) *LineReader {
	return &LineReader{src: src, chunk: make([]byte, 256), maxLine: DefaultMaxLine}
}

// PollLine возвращает очередную строку без завершающего '\n'.
// За один вызов выполняется не больше одного чтения из источника.
func (r *LineReader) PollLine() (string, bool, error) {
	if line, ok := r.takeLine(); ok {
		return line, true, nil
	}

	n, err := r.src.Read(r.chunk)
	if n > 0 {
		r.buf.Write(r.chunk[:n])
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}

	line, ok := r.takeLine()
	return line, ok, nil
}

func (r *LineReader) takeLine() (string, bool) {
	data := r.buf.Bytes()
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line := string(data[:i])
		r.buf.Next(i + 1)
		return line, true
	}
	if r.buf.Len() >= r.maxLine {
		return string(r.buf.Next(r.maxLine)), true
	}
	return "", false
}

// Reset отбрасывает накопленные байты
func (r *LineReader) Reset() {
	r.buf.Reset()
}

var _ port.SerialLink = (*LineReader)(nil)
