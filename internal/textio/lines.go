// Package textio holds the line handling shared by the text and stop-word
// readers.
package textio

import (
	"bytes"
	"strings"
)

// ByteOrderMark is the UTF-8 encoded U+FEFF some editors write at the start
// of a file.
const ByteOrderMark = "\ufeff"

// TrimByteOrderMark drops a leading byte-order mark from the first line of
// a file. Other lines are returned unchanged.
func TrimByteOrderMark(line string, lineNumber int) string {
	if lineNumber != 1 {
		return line
	}
	return strings.TrimPrefix(line, ByteOrderMark)
}

// ScanLines is a bufio.SplitFunc that accepts "\n", "\r\n" and a lone "\r"
// as line terminators. The terminator is not part of the returned line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer may be the first half of "\r\n".
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
