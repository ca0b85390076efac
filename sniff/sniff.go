// Package sniff infers the field separator of a delimited text file by
// counting candidate delimiters over the first lines of the file.
package sniff

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/biosurv/merger/consts"
	"github.com/biosurv/merger/file"
)

// Detect samples the first consts.SniffLines lines of the file at path.
// Semicolon wins any tie, tab beats comma, comma is the fallback.
func Detect(path string) (byte, error) {
	f, err := file.New(path, os.O_RDONLY)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return DetectReader(f)
}

func DetectReader(r io.Reader) (byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	commas, semis, tabs := 0, 0, 0
	for i := 0; i < consts.SniffLines && sc.Scan(); i++ {
		line := sc.Bytes()
		commas += bytes.Count(line, []byte{consts.Comma})
		semis += bytes.Count(line, []byte{consts.Semicolon})
		tabs += bytes.Count(line, []byte{consts.Tab})
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	switch {
	case semis >= commas && semis >= tabs && semis > 0:
		return consts.Semicolon, nil
	case tabs >= commas && tabs > 0:
		return consts.Tab, nil
	default:
		return consts.Comma, nil
	}
}
