package common

import (
	"compress/gzip"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSequence(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "atgc", "ATGC"},
		{"embedded spaces", "AAA AGT CCC", "AAAAGTCCC"},
		{"tabs and newlines", "aa\tt\ngc\r", "AATGC"},
		{"empty", "", ""},
		{"already normalized", "ATGC", "ATGC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSequence(tc.input))
		})
	}
}

func TestReadFasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fasta")
	content := ">seq1 sample\nAAAAAC\nTTATAG\n>seq2\natgc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ids, sequences, err := ReadFasta(path)
	require.NoError(t, err)
	require.Equal(t, []string{"seq1 sample", "seq2"}, ids)
	assert.Equal(t, "AAAAACTTATAG", sequences["seq1 sample"])
	assert.Equal(t, "ATGC", sequences["seq2"])
}

func TestReadFastaGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fasta.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">seq1\nATGC\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	ids, sequences, err := ReadFasta(path)
	require.NoError(t, err)
	require.Equal(t, []string{"seq1"}, ids)
	assert.Equal(t, "ATGC", sequences["seq1"])
}

func TestReadFastaNoRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fasta")
	require.NoError(t, os.WriteFile(path, []byte("just text\n"), 0644))

	_, _, err := ReadFasta(path)
	assert.Error(t, err)
}

func TestRandomDNA(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))

	seq := RandomDNA(45, rng)
	require.Len(t, seq, 45)
	for _, c := range seq {
		assert.True(t, strings.ContainsRune("ATGC", c), "unexpected character %q", c)
	}
}

func TestSeedSourceReproducible(t *testing.T) {
	a := rand.New(SeedSource(99))
	b := rand.New(SeedSource(99))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}
