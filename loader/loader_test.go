package loader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/partknn/blobstore"
	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/resource"
)

const table = `label,age,bmi
0,34,22.5
1,61,31.0
0, 29 ,24.1
1,55,35.2
`

func TestRead(t *testing.T) {
	ds, err := Read(t.Context(), strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, 4, ds.Len())
	require.Equal(t, 3, ds.Width())
	assert.Equal(t, dataset.Row{0, 29, 24.1}, ds.Row(2))
	assert.EqualValues(t, 1, ds.Label(3))
}

func TestRead_Options(t *testing.T) {
	t.Run("no header", func(t *testing.T) {
		ds, err := Read(t.Context(), strings.NewReader("0,1\n1,2\n"), WithHeader(false))
		require.NoError(t, err)
		assert.Equal(t, 2, ds.Len())
	})

	t.Run("max rows", func(t *testing.T) {
		ds, err := Read(t.Context(), strings.NewReader(table), WithMaxRows(2))
		require.NoError(t, err)
		assert.Equal(t, 2, ds.Len())
	})

	t.Run("semicolon", func(t *testing.T) {
		ds, err := Read(t.Context(), strings.NewReader("0;1\n1;2\n"), WithHeader(false), WithComma(';'))
		require.NoError(t, err)
		assert.Equal(t, dataset.Row{1, 2}, ds.Row(1))
	})

	t.Run("header only", func(t *testing.T) {
		ds, err := Read(t.Context(), strings.NewReader("label,x\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Len())
	})

	t.Run("empty", func(t *testing.T) {
		ds, err := Read(t.Context(), strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Len())
	})

	t.Run("rate limited", func(t *testing.T) {
		rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
		ds, err := Read(t.Context(), strings.NewReader(table), WithResources(rc))
		require.NoError(t, err)
		assert.Equal(t, 4, ds.Len())
	})
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		row    int
		column int
	}{
		{"not a number", "0,1\n1,abc\n", 1, 1},
		{"width mismatch", "0,1\n1,2,3\n", 1, -1},
		{"bad label", "0,1\n2,5\n", 1, 0},
		{"non finite", "0,1\n1,NaN\n", 1, 1},
		{"unterminated quote", "0,1\n1,\"2\n", 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(t.Context(), strings.NewReader(tt.input), WithHeader(false))
			require.Error(t, err)
			assert.ErrorIs(t, err, dataset.ErrMalformedInput)

			var re *dataset.RowError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.row, re.Row)
			assert.Equal(t, tt.column, re.Column)
		})
	}
}

func TestRead_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Read(ctx, strings.NewReader(table))
	assert.ErrorIs(t, err, context.Canceled)
}

func compress(t *testing.T, c Compression, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionZstd:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = enc
	case CompressionLZ4:
		w = lz4.NewWriter(&buf)
	default:
		return data
	}

	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		c    Compression
	}{
		{"data.csv", CompressionNone},
		{"data.csv.gz", CompressionGzip},
		{"data.csv.zst", CompressionZstd},
		{"data.csv.lz4", CompressionLZ4},
	}

	store := blobstore.NewMemoryStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.c, CompressionFor(tt.name))
			require.NoError(t, store.Put(t.Context(), tt.name, compress(t, tt.c, []byte(table))))

			ds, err := Load(t.Context(), store, tt.name)
			require.NoError(t, err)
			assert.Equal(t, 4, ds.Len())
			assert.Equal(t, dataset.Row{1, 55, 35.2}, ds.Row(3))
		})
	}
}

func TestLoad_LocalStore(t *testing.T) {
	dir := t.TempDir()
	store := blobstore.NewLocalStore(dir)
	require.NoError(t, store.Put(t.Context(), "train/data.csv", []byte(table)))

	ds, err := Load(t.Context(), store, "train/data.csv", WithMaxRows(3))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestLoad_Errors(t *testing.T) {
	store := blobstore.NewMemoryStore()

	_, err := Load(t.Context(), store, "missing.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(t.Context(), "plain.gz", []byte(table)))
	_, err = Load(t.Context(), store, "plain.gz")
	require.Error(t, err)

	ds, err := Load(t.Context(), store, "plain.gz", WithCompression(CompressionNone))
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())

	require.NoError(t, store.Put(t.Context(), "bad.csv", []byte("label,x\n0,1\n1,x\n")))
	_, err = Load(t.Context(), store, "bad.csv")
	assert.ErrorIs(t, err, dataset.ErrMalformedInput)
	assert.False(t, errors.Is(err, blobstore.ErrNotFound))
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "gzip", CompressionGzip.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, CompressionNone, CompressionFor("data.CSV"))
	assert.Equal(t, CompressionGzip, CompressionFor("DATA.CSV.GZ"))
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery(" 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, dataset.Row{0, 2.5}, q.Values())
	_, ok := q.Origin()
	assert.False(t, ok)

	q, err = ParseQuery("1, 34,22.5")
	require.NoError(t, err)
	assert.Equal(t, dataset.Row{0, 1, 34, 22.5}, q.Values())

	for _, bad := range []string{"", "   ", "1,,2", "1,x"} {
		_, err := ParseQuery(bad)
		assert.ErrorIs(t, err, dataset.ErrMalformedInput, bad)
	}
}
