package sniff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biosurv/merger/consts"
)

func TestDetectReader(t *testing.T) {
	cases := []struct {
		name string
		text string
		want byte
	}{
		{"semicolon majority", "a;b;c\n1;2;3\n", consts.Semicolon},
		{"semicolon wins tie with comma", "a;b,c\n1;2,3\n", consts.Semicolon},
		{"semicolon wins tie with tab", "a;b\tc\n1;2\t3\n", consts.Semicolon},
		{"tab majority", "a\tb\tc\n1\t2\t3\n", consts.Tab},
		{"tab wins tie with comma", "a\tb,c\n", consts.Tab},
		{"comma majority", "a,b,c\n1,2,3\n", consts.Comma},
		{"no delimiter at all", "abc\ndef\n", consts.Comma},
		{"empty input", "", consts.Comma},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DetectReader(strings.NewReader(c.text))
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDetectSamplesOnlyFirstLines(t *testing.T) {
	// Semicolons beyond the sniff window must not influence the vote.
	var b strings.Builder
	for i := 0; i < consts.SniffLines; i++ {
		b.WriteString("a,b,c\n")
	}
	for i := 0; i < 500; i++ {
		b.WriteString("x;y;z\n")
	}
	got, err := DetectReader(strings.NewReader(b.String()))
	assert.NoError(t, err)
	assert.Equal(t, consts.Comma, got)
}

func TestDetectMissingFile(t *testing.T) {
	_, err := Detect("no/such/file.csv")
	assert.Error(t, err)
}
