package content

import "bytes"

// sniffLen bounds how much of a file LooksBinary inspects, the same window
// git uses.
const sniffLen = 8000

var textBOMs = [][]byte{
	{0x00, 0x00, 0xFE, 0xFF}, // UTF-32 BE
	{0xFF, 0xFE},             // UTF-16 LE, also the prefix of UTF-32 LE
	{0xFE, 0xFF},             // UTF-16 BE
}

// LooksBinary reports whether data has a NUL byte in its first sniffLen
// bytes. Data opening with a UTF-16 or UTF-32 byte order mark is text.
func LooksBinary(data []byte) bool {
	for _, bom := range textBOMs {
		if bytes.HasPrefix(data, bom) {
			return false
		}
	}
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// CountLines counts lines terminated by \n or \r\n, plus a final
// unterminated line if there is one.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	if s[len(s)-1] != '\n' {
		n++
	}
	return n
}
