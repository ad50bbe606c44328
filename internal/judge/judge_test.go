package judge

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerTokens(t *testing.T) {
	s := NewScanner(strings.NewReader("3 -7\n 2.5  hello\n"))

	n, err := s.Int()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	m, err := s.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), m)

	f, err := s.Float()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	w, err := s.Word()
	require.NoError(t, err)
	assert.Equal(t, "hello", w)

	_, err = s.Word()
	assert.ErrorIs(t, err, io.EOF)
}

func TestScannerInts(t *testing.T) {
	s := NewScanner(strings.NewReader("1 2 3 4"))
	xs, err := s.Ints(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, xs)

	_, err = s.Ints(1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestScannerBadToken(t *testing.T) {
	s := NewScanner(strings.NewReader("abc"))
	_, err := s.Int()
	assert.Error(t, err)
}

func TestLineScannerSkipsBlanks(t *testing.T) {
	s := NewLineScanner(strings.NewReader("2\n\n  tx1  \ntx2\n\n"))

	n, err := s.Int()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	l1, err := s.Line()
	require.NoError(t, err)
	assert.Equal(t, "tx1", l1)

	l2, err := s.Line()
	require.NoError(t, err)
	assert.Equal(t, "tx2", l2)

	_, err = s.Line()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Println("Impossible")
	w.Printf("%d %d\n", 1, 2)
	require.NoError(t, w.Flush())
	assert.Equal(t, "Impossible\n1 2\n", buf.String())
}
