// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"
	"unicode"
)

// NormalizeSequence uppercases a nucleotide sequence and strips all whitespace,
// including embedded spaces, tabs and line breaks. Sequences are treated
// case-insensitively everywhere in the toolkit, so normalization happens once
// at the boundary.
func NormalizeSequence(seq string) string {
	var sb strings.Builder
	sb.Grow(len(seq))
	for _, c := range seq {
		if unicode.IsSpace(c) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(c))
	}
	return sb.String()
}

// ReadFasta loads a multi-record FASTA file into memory, returning record IDs
// in file order alongside an ID -> sequence map. Gzipped input is detected by
// magic bytes and decompressed transparently. Sequence lines are uppercased;
// suitable for the small educational inputs this toolkit handles, not for
// genome-scale files.
func ReadFasta(file string) ([]string, map[string]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var reader io.Reader = br

	// Gzip magic check
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	var ids []string
	sequences := make(map[string]string)
	var currentID string
	var seqBuilder strings.Builder

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if currentID != "" {
				sequences[currentID] = seqBuilder.String()
				seqBuilder.Reset()
			}
			currentID = strings.TrimPrefix(line, ">")
			ids = append(ids, currentID)
		} else {
			seqBuilder.WriteString(strings.ToUpper(line))
		}
	}
	if currentID != "" {
		sequences[currentID] = seqBuilder.String()
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scanner error reading FASTA: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("no FASTA records found in %s", file)
	}
	return ids, sequences, nil
}

// RandomDNA generates a random sequence of the four standard nucleotides.
func RandomDNA(length int, rng *rand.Rand) string {
	nucleotides := []byte{'A', 'T', 'G', 'C'}
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = nucleotides[rng.IntN(len(nucleotides))]
	}
	return string(seq)
}

// SeedSource builds the RNG source shared by the simulation tools.
// A seed of 0 falls back to the wall clock, so repeated runs differ unless
// the caller pins the seed explicitly.
func SeedSource(seed int64) rand.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.NewPCG(uint64(seed), uint64(seed)>>1)
}
