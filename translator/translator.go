package translator

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	common "bench_mate_go/utils"
)

// Reduced genetic code: four amino acids plus the three stop codons.
// Codons absent from the table translate to the ambiguity symbol.
var geneticCode = map[string]string{
	"AAA": "A", "AAC": "A", // Alanine
	"CCG": "C", "CCC": "C", // Cysteine
	"TTG": "L", "TTA": "L", // Leucine
	"AGT": "S", "AGC": "S", // Serine
	"TAA": "*", "TAG": "*", "TGA": "*", // Stop codons
}

const (
	// Unknown marks a codon with no entry in the reduced code.
	Unknown = "X"
	// Stop terminates translation as soon as it is emitted.
	Stop = "*"
)

// Translate converts a DNA sequence into a protein sequence using the reduced
// genetic code. Input may be any case and contain whitespace; both are
// normalized away first. Codons are read in non-overlapping windows of three
// from the start of the sequence. A trailing partial codon is dropped, and a
// stop codon is appended and then ends translation immediately.
//
// Translate is total: every input string yields a protein string (possibly
// empty), never an error.
func Translate(dna string) string {
	seq := common.NormalizeSequence(dna)

	var protein strings.Builder
	for i := 0; i+3 <= len(seq); i += 3 {
		aminoAcid, ok := geneticCode[seq[i:i+3]]
		if !ok {
			aminoAcid = Unknown
		}
		protein.WriteString(aminoAcid)
		if aminoAcid == Stop {
			break
		}
	}
	return protein.String()
}

func Run(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)

	seq := fs.String("seq", "", "DNA sequence to translate")
	inFile := fs.String("in_file", "", "Input FASTA file; every record is translated")
	random := fs.Int("random", 0, "Generate and translate a random DNA sequence of this length")
	seed := fs.Int64("seed", 0, "Seed for RNG in -random mode (0 = time-based)")
	outFile := fs.String("out_file", "", "Output file (default: stdout)")

	fs.Parse(args)

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	modes := 0
	for _, set := range []bool{*seq != "", *inFile != "", *random > 0} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "Provide exactly one of -seq, -in_file or -random.")
		os.Exit(1)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Println("Error creating output file:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch {
	case *seq != "":
		printTranslation(out, *seq)
	case *random > 0:
		rng := rand.New(common.SeedSource(*seed))
		printTranslation(out, common.RandomDNA(*random, rng))
	case *inFile != "":
		ids, sequences, err := common.ReadFasta(*inFile)
		if err != nil {
			fmt.Println("Error reading FASTA:", err)
			os.Exit(1)
		}
		for _, id := range ids {
			fmt.Fprintf(out, ">%s\n%s\n", id, Translate(sequences[id]))
		}
	}

	if *outFile != "" {
		fmt.Printf("Wrote translation to %s\n", *outFile)
	}
}

func printTranslation(out *os.File, dna string) {
	fmt.Fprintf(out, "DNA sequence: %s\n", common.NormalizeSequence(dna))
	fmt.Fprintf(out, "Protein: %s\n", Translate(dna))
}
