package matrix

// Built-in substitution matrices, registered at package init so
// matrix.Lookup works without any setup. The protein matrices use
// parasail's extended 24-symbol amino acid alphabet (20 residues plus
// B, Z, X ambiguity codes and * for stop/terminator) so a matrix built
// here can score exactly the same alphabet the original C library does.
const proteinAlphabet = "ARNDCQEGHILKMFPSTWYVBZX*"

func init() {
	register(NewMatrix("blosum62", proteinAlphabet, blosum62Scores))
	register(NewMatrix("blosum50", proteinAlphabet, blosum50Scores))
	register(NewMatrix("pam80", proteinAlphabet, pam80Scores))
	register(NewMatrix("pam250", proteinAlphabet, pam250Scores))
	register(NewMatrix("pam440", proteinAlphabet, pam440Scores))
	register(NewMatrix("dnafull", dnafullAlphabet, dnafullScores))
	register(NewMatrix("nuc44", nuc44Alphabet, nuc44Scores))
}

// blosum62Scores is the standard BLOSUM62 substitution matrix, the
// default for protein alignment in BLAST and most aligners.
var blosum62Scores = []int32{
	4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0, -2, -1, 0, -4,
	-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3, -1, 0, -1, -4,
	-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3, 3, 0, -1, -4,
	-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3, 4, 1, -1, -4,
	0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1, -3, -3, -2, -4,
	-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2, 0, 3, -1, -4,
	-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4,
	0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3, -1, -2, -1, -4,
	-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3, 0, 0, -1, -4,
	-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3, -3, -3, -1, -4,
	-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1, -4, -3, -1, -4,
	-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2, 0, 1, -1, -4,
	-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1, -3, -1, -1, -4,
	-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1, -3, -3, -1, -4,
	-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2, -2, -1, -2, -4,
	1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2, 0, 0, 0, -4,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0, -1, -1, 0, -4,
	-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3, -4, -3, -2, -4,
	-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1, -3, -2, -1, -4,
	0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4, -3, -2, -1, -4,
	-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4, 1, -1, -4,
	-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4,
	0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -2, 0, 0, -2, -1, -1, -1, -1, -1, -4,
	-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 1,
}

// blosum50Scores is BLOSUM50, a more divergent-tolerant protein matrix
// than BLOSUM62, commonly paired with looser gap penalties.
var blosum50Scores = []int32{
	5, -2, -1, -2, -1, -1, -1, 0, -2, -1, -2, -1, -1, -3, -1, 1, 0, -3, -2, 0, -2, -1, -1, -5,
	-2, 7, -1, -2, -4, 1, 0, -3, 0, -4, -3, 3, -2, -3, -3, -1, -1, -3, -1, -3, -1, 0, -1, -5,
	-1, -1, 7, 2, -2, 0, 0, 0, 1, -3, -4, 0, -2, -4, -2, 1, 0, -4, -2, -3, 4, 0, -1, -5,
	-2, -2, 2, 8, -4, 0, 2, -1, -1, -4, -4, -1, -4, -5, -1, 0, -1, -5, -3, -4, 5, 1, -1, -5,
	-1, -4, -2, -4, 13, -3, -3, -3, -3, -2, -2, -3, -2, -2, -4, -1, -1, -5, -3, -1, -3, -3, -2, -5,
	-1, 1, 0, 0, -3, 7, 2, -2, 1, -3, -2, 2, 0, -4, -1, 0, -1, -1, -1, -3, 0, 4, -1, -5,
	-1, 0, 0, 2, -3, 2, 6, -3, 0, -4, -3, 1, -2, -3, -1, -1, -1, -3, -2, -3, 1, 5, -1, -5,
	0, -3, 0, -1, -3, -2, -3, 8, -2, -4, -4, -2, -3, -4, -2, 0, -2, -3, -3, -4, -1, -2, -2, -5,
	-2, 0, 1, -1, -3, 1, 0, -2, 10, -4, -3, 0, -1, -1, -2, -1, -2, -3, 2, -4, 0, 0, -1, -5,
	-1, -4, -3, -4, -2, -3, -4, -4, -4, 5, 2, -3, 2, 0, -3, -3, -1, -3, -1, 4, -4, -3, -1, -5,
	-2, -3, -4, -4, -2, -2, -3, -4, -3, 2, 5, -3, 3, 1, -4, -3, -1, -2, -1, 1, -4, -3, -1, -5,
	-1, 3, 0, -1, -3, 2, 1, -2, 0, -3, -3, 6, -2, -4, -1, 0, -1, -3, -2, -3, 0, 1, -1, -5,
	-1, -2, -2, -4, -2, 0, -2, -3, -1, 2, 3, -2, 7, 0, -3, -2, -1, -1, 0, 1, -3, -1, -1, -5,
	-3, -3, -4, -5, -2, -4, -3, -4, -1, 0, 1, -4, 0, 8, -4, -3, -2, 1, 4, -1, -4, -4, -2, -5,
	-1, -3, -2, -1, -4, -1, -1, -2, -2, -3, -4, -1, -3, -4, 10, -1, -1, -4, -3, -3, -2, -1, -2, -5,
	1, -1, 1, 0, -1, 0, -1, 0, -1, -3, -3, 0, -2, -3, -1, 5, 2, -4, -2, -2, 0, 0, -1, -5,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 2, 5, -3, -2, 0, 0, -1, 0, -5,
	-3, -3, -4, -5, -5, -1, -3, -3, -3, -3, -2, -3, -1, 1, -4, -4, -3, 15, 2, -3, -5, -2, -3, -5,
	-2, -1, -2, -3, -3, -1, -2, -3, 2, -1, -1, -2, 0, 4, -3, -2, -2, 2, 8, -1, -3, -2, -1, -5,
	0, -3, -3, -4, -1, -3, -3, -4, -4, 4, 1, -3, 1, -1, -3, -2, 0, -3, -1, 5, -3, -3, -1, -5,
	-2, -1, 4, 5, -3, 0, 1, -1, 0, -4, -4, 0, -3, -4, -2, 0, 0, -5, -3, -3, 5, 2, -1, -5,
	-1, 0, 0, 1, -3, 4, 5, -2, 0, -3, -3, 1, -1, -4, -1, 0, -1, -2, -2, -3, 2, 5, -1, -5,
	-1, -1, -1, -1, -2, -1, -1, -2, -1, -1, -1, -1, -1, -2, -2, -1, 0, -3, -1, -1, -1, -1, -1, -5,
	-5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, -5, 1,
}

// pam80Scores is PAM80 (80 point accepted mutations), tuned for closely
// related sequences. Values taken from the "pam" 1.0.6-generated table
// distributed with parasail.
var pam80Scores = []int32{
	4, -4, -1, -1, -4, -2, -1, 0, -4, -2, -4, -4, -3, -5, 0, 1, 1, -8, -5, 0, -1, -1, -1, -11,
	-4, 7, -2, -5, -5, 0, -4, -6, 0, -3, -5, 2, -2, -6, -2, -1, -3, 0, -7, -5, -3, -1, -3, -11,
	-1, -2, 5, 3, -6, -1, 0, -1, 2, -3, -5, 0, -4, -5, -3, 1, 0, -5, -3, -4, 4, 0, -1, -11,
	-1, -5, 3, 6, -9, 0, 4, -1, -1, -4, -7, -2, -6, -9, -4, -1, -2, -10, -7, -5, 5, 2, -3, -11,
	-4, -5, -6, -9, 9, -9, -9, -6, -5, -4, -9, -9, -8, -8, -5, -1, -4, -10, -2, -3, -7, -9, -5, -11,
	-2, 0, -1, 0, -9, 7, 2, -4, 2, -4, -3, -1, -2, -8, -1, -3, -3, -8, -7, -4, 0, 5, -2, -11,
	-1, -4, 0, 4, -9, 2, 6, -2, -2, -3, -6, -2, -4, -9, -3, -2, -3, -11, -6, -4, 2, 5, -2, -11,
	0, -6, -1, -1, -6, -4, -2, 6, -5, -6, -7, -4, -5, -6, -3, 0, -2, -10, -8, -3, -1, -2, -3, -11,
	-4, 0, 2, -1, -5, 2, -2, -5, 8, -5, -4, -3, -5, -3, -2, -3, -4, -4, -1, -4, 0, 1, -2, -11,
	-2, -3, -3, -4, -4, -4, -3, -6, -5, 7, 1, -4, 1, 0, -5, -4, -1, -8, -3, 3, -4, -4, -2, -11,
	-4, -5, -5, -7, -9, -3, -6, -7, -4, 1, 6, -5, 2, 0, -4, -5, -4, -3, -4, 0, -6, -4, -3, -11,
	-4, 2, 0, -2, -9, -1, -2, -4, -3, -4, -5, 6, 0, -9, -4, -2, -1, -7, -6, -5, -1, -1, -3, -11,
	-3, -2, -4, -6, -8, -2, -4, -5, -5, 1, 2, 0, 9, -2, -5, -3, -2, -7, -6, 1, -5, -3, -2, -11,
	-5, -6, -5, -9, -8, -8, -9, -6, -3, 0, 0, -9, -2, 8, -7, -4, -5, -2, 4, -4, -7, -8, -5, -11,
	0, -2, -3, -4, -5, -1, -3, -3, -2, -5, -4, -4, -5, -7, 7, 0, -2, -9, -8, -3, -3, -2, -2, -11,
	1, -1, 1, -1, -1, -3, -2, 0, -3, -4, -5, -2, -3, -4, 0, 4, 2, -3, -4, -3, 0, -2, -1, -11,
	1, -3, 0, -2, -4, -3, -3, -2, -4, -1, -4, -1, -2, -5, -2, 2, 5, -8, -4, -1, -1, -3, -1, -11,
	-8, 0, -5, -10, -10, -8, -11, -10, -4, -8, -3, -7, -7, -2, -9, -3, -8, 13, -2, -10, -7, -9, -7, -11,
	-5, -7, -3, -7, -2, -7, -6, -8, -1, -3, -4, -6, -6, 4, -8, -4, -4, -2, 9, -5, -4, -6, -4, -11,
	0, -5, -4, -5, -3, -4, -4, -3, -4, 3, 0, -5, 1, -4, -3, -3, -1, -10, -5, 6, -4, -4, -2, -11,
	-1, -3, 4, 5, -7, 0, 2, -1, 0, -4, -6, -1, -5, -7, -3, 0, -1, -7, -4, -4, 5, 2, -2, -11,
	-1, -1, 0, 2, -9, 5, 5, -2, 1, -4, -4, -1, -3, -8, -2, -2, -3, -9, -6, -4, 2, 5, -2, -11,
	-1, -3, -1, -3, -5, -2, -2, -3, -2, -2, -3, -3, -2, -5, -2, -1, -1, -7, -4, -2, -2, -2, -3, -11,
	-11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, -11, 1,
}

// pam440Scores is PAM440, tuned for distantly related sequences. Values
// taken from the same parasail "pam" 1.0.6-generated table as pam80.
var pam440Scores = []int32{
	1, -1, 0, 1, -2, 0, 1, 2, -1, 0, -2, 0, -1, -4, 1, 1, 1, -6, -4, 0, 1, 0, 0, -9,
	-1, 5, 1, 0, -4, 2, 0, -2, 2, -2, -3, 4, 0, -5, 0, 0, 0, 4, -4, -2, 0, 1, 0, -9,
	0, 1, 1, 2, -4, 1, 2, 1, 1, -2, -3, 1, -1, -4, 0, 1, 0, -5, -3, -1, 2, 1, 0, -9,
	1, 0, 2, 3, -5, 2, 3, 1, 1, -2, -3, 1, -2, -6, 0, 1, 0, -7, -5, -2, 2, 2, 0, -9,
	-2, -4, -4, -5, 20, -5, -5, -3, -4, -2, -6, -5, -5, -4, -3, 0, -2, -9, 1, -2, -4, -5, -3, -9,
	0, 2, 1, 2, -5, 3, 2, 0, 3, -2, -2, 1, -1, -4, 1, 0, 0, -5, -4, -1, 2, 2, 0, -9,
	1, 0, 2, 3, -5, 2, 3, 1, 1, -2, -3, 1, -2, -5, 0, 1, 0, -7, -5, -1, 2, 3, 0, -9,
	2, -2, 1, 1, -3, 0, 1, 4, -1, -2, -4, -1, -2, -5, 0, 1, 1, -8, -5, -1, 1, 0, 0, -9,
	-1, 2, 1, 1, -4, 3, 1, -1, 5, -2, -2, 1, -1, -2, 0, 0, -1, -3, 0, -2, 1, 2, 0, -9,
	0, -2, -2, -2, -2, -2, -2, -2, -2, 4, 4, -2, 3, 2, -1, -1, 0, -5, 0, 3, -2, -2, 0, -9,
	-2, -3, -3, -3, -6, -2, -3, -4, -2, 4, 7, -3, 5, 4, -2, -2, -1, -2, 1, 3, -3, -2, -1, -9,
	0, 4, 1, 1, -5, 1, 1, -1, 1, -2, -3, 4, 0, -5, 0, 0, 0, -3, -5, -2, 1, 1, 0, -9,
	-1, 0, -1, -2, -5, -1, -2, -2, -1, 3, 5, 0, 4, 1, -1, -1, 0, -4, -1, 2, -2, -1, 0, -9,
	-4, -5, -4, -6, -4, -4, -5, -5, -2, 2, 4, -5, 1, 13, -5, -4, -3, 2, 12, 0, -5, -5, -2, -9,
	1, 0, 0, 0, -3, 1, 0, 0, 0, -1, -2, 0, -1, -5, 5, 1, 1, -6, -5, -1, 0, 0, 0, -9,
	1, 0, 1, 1, 0, 0, 1, 1, 0, -1, -2, 0, -1, -4, 1, 1, 1, -3, -3, -1, 1, 0, 0, -9,
	1, 0, 0, 0, -2, 0, 0, 1, -1, 0, -1, 0, 0, -3, 1, 1, 1, -6, -3, 0, 0, 0, 0, -9,
	-6, 4, -5, -7, -9, -5, -7, -8, -3, -5, -2, -3, -4, 2, -6, -3, -6, 30, 2, -6, -6, -6, -4, -9,
	-4, -4, -3, -5, 1, -4, -5, -5, 0, 0, 1, -5, -1, 12, -5, -3, -3, 2, 15, -2, -4, -4, -2, -9,
	0, -2, -1, -2, -2, -1, -1, -1, -2, 3, 3, -2, 2, 0, -1, -1, 0, -6, -2, 4, -1, -1, 0, -9,
	1, 0, 2, 2, -4, 2, 2, 1, 1, -2, -3, 1, -2, -5, 0, 1, 0, -6, -4, -1, 2, 2, 0, -9,
	0, 1, 1, 2, -5, 2, 3, 0, 2, -2, -2, 1, -1, -5, 0, 0, 0, -6, -4, -1, 2, 3, 0, -9,
	0, 0, 0, 0, -3, 0, 0, 0, 0, 0, -1, 0, 0, -2, 0, 0, 0, -4, -2, 0, 0, 0, -1, -9,
	-9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, -9, 1,
}

// pam250Scores is PAM250, the most commonly used PAM matrix, roughly
// comparable in divergence to BLOSUM45.
var pam250Scores = []int32{
	2, -2, 0, 0, -2, 0, 0, 1, -1, -1, -2, -1, -1, -3, 1, 1, 1, -6, -3, 0, 0, 0, 0, -8,
	-2, 6, 0, -1, -4, 1, -1, -3, 2, -2, -3, 3, 0, -4, 0, 0, -1, 2, -4, -2, -1, 0, -1, -8,
	0, 0, 2, 2, -4, 1, 1, 0, 2, -2, -3, 1, -2, -3, 0, 1, 0, -4, -2, -2, 2, 1, 0, -8,
	0, -1, 2, 4, -5, 2, 3, 1, 1, -2, -4, 0, -3, -6, -1, 0, 0, -7, -4, -2, 3, 3, -1, -8,
	-2, -4, -4, -5, 12, -5, -5, -3, -3, -2, -6, -5, -5, -4, -3, 0, -2, -8, 0, -2, -4, -5, -3, -8,
	0, 1, 1, 2, -5, 4, 2, -1, 3, -2, -2, 1, -1, -5, 0, -1, -1, -5, -4, -2, 2, 3, -1, -8,
	0, -1, 1, 3, -5, 2, 4, 0, 1, -2, -3, 0, -2, -5, -1, 0, 0, -7, -4, -2, 3, 3, -1, -8,
	1, -3, 0, 1, -3, -1, 0, 5, -2, -3, -4, -2, -3, -5, 0, 1, 0, -7, -5, -1, 1, 0, 0, -8,
	-1, 2, 2, 1, -3, 3, 1, -2, 6, -2, -2, 0, -2, -2, 0, -1, -1, -3, 0, -2, 1, 2, 0, -8,
	-1, -2, -2, -2, -2, -2, -2, -3, -2, 5, 2, -2, 2, 1, -2, -1, 0, -5, -1, 4, -2, -2, -1, -8,
	-2, -3, -3, -4, -6, -2, -3, -4, -2, 2, 6, -3, 4, 2, -3, -3, -2, -2, -1, 2, -3, -3, -1, -8,
	-1, 3, 1, 0, -5, 1, 0, -2, 0, -2, -3, 5, 0, -5, -1, 0, 0, -3, -4, -2, 1, 0, -1, -8,
	-1, 0, -2, -3, -5, -1, -2, -3, -2, 2, 4, 0, 6, 0, -2, -2, -1, -4, -2, 2, -2, -2, -1, -8,
	-3, -4, -3, -6, -4, -5, -5, -5, -2, 1, 2, -5, 0, 9, -5, -3, -3, 0, 7, -1, -4, -5, -2, -8,
	1, 0, 0, -1, -3, 0, -1, 0, 0, -2, -3, -1, -2, -5, 6, 1, 0, -6, -5, -1, -1, 0, -1, -8,
	1, 0, 1, 0, 0, -1, 0, 1, -1, -1, -3, 0, -2, -3, 1, 2, 1, -2, -3, -1, 0, 0, 0, -8,
	1, -1, 0, 0, -2, -1, 0, 0, -1, 0, -2, 0, -1, -3, 0, 1, 3, -5, -3, 0, 0, -1, 0, -8,
	-6, 2, -4, -7, -8, -5, -7, -7, -3, -5, -2, -3, -4, 0, -6, -2, -5, 17, 0, -6, -5, -6, -4, -8,
	-3, -4, -2, -4, 0, -4, -4, -5, 0, -1, -1, -4, -2, 7, -5, -3, -3, 0, 10, -2, -3, -4, -2, -8,
	0, -2, -2, -2, -2, -2, -2, -1, -2, 4, 2, -2, 2, -1, -1, -1, 0, -6, -2, 4, -2, -2, -1, -8,
	0, -1, 2, 3, -4, 2, 3, 1, 1, -2, -3, 1, -2, -4, -1, 0, 0, -5, -3, -2, 3, 2, -1, -8,
	0, 0, 1, 3, -5, 3, 3, 0, 2, -2, -3, 0, -2, -5, 0, 0, -1, -6, -4, -2, 2, 3, -1, -8,
	0, -1, 0, -1, -3, -1, -1, 0, 0, -1, -1, -1, -1, -2, -1, 0, 0, -4, -2, -1, -1, -1, -1, -8,
	-8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, -8, 1,
}

// dnafullAlphabet is the full IUPAC nucleotide alphabet, matching
// EMBOSS's DNAFULL matrix ordering.
const dnafullAlphabet = "ATGCSWRYKMBVHDN"

// dnafullScores extends a simple +5/-4 match/mismatch scheme with
// scores for IUPAC ambiguity codes, the way EMBOSS's DNAFULL does: a
// two-base code scores +1 against either base it stands for, a
// three-base code scores -1 even against the bases it stands for, and
// N scores -2 against every base.
var dnafullScores = []int32{
	5, -4, -4, -4, -4, 1, 1, -4, -4, 1, -4, -1, -1, -1, -2,
	-4, 5, -4, -4, -4, 1, -4, 1, 1, -4, -1, -4, -1, -1, -2,
	-4, -4, 5, -4, 1, -4, 1, -4, 1, -4, -1, -1, -4, -1, -2,
	-4, -4, -4, 5, 1, -4, -4, 1, -4, 1, -1, -1, -1, -4, -2,
	-4, -4, 1, 1, -1, -4, -2, -2, -2, -2, -1, -1, -3, -3, -1,
	1, 1, -4, -4, -4, -1, -2, -2, -2, -2, -3, -3, -1, -1, -1,
	1, -4, 1, -4, -2, -2, -1, -4, -2, -2, -3, -1, -3, -1, -1,
	-4, 1, -4, 1, -2, -2, -4, -1, -2, -2, -1, -3, -1, -3, -1,
	-4, 1, 1, -4, -2, -2, -2, -2, -1, -4, -1, -3, -3, -1, -1,
	1, -4, -4, 1, -2, -2, -2, -2, -4, -1, -3, -1, -1, -3, -1,
	-4, -1, -1, -1, -1, -3, -3, -1, -1, -3, -1, -2, -2, -2, -1,
	-1, -4, -1, -1, -1, -3, -1, -3, -3, -1, -2, -1, -2, -2, -1,
	-1, -1, -4, -1, -3, -1, -3, -1, -3, -1, -2, -2, -1, -2, -1,
	-1, -1, -1, -4, -3, -1, -1, -3, -1, -3, -2, -2, -2, -1, -1,
	-2, -2, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// nuc44Alphabet covers the four DNA/RNA bases plus N, parasail's
// smaller "nuc44" nucleotide matrix for callers that don't need the
// full IUPAC ambiguity code set.
const nuc44Alphabet = "ACGTN"

// nuc44Scores is a plain +5/-4 match/mismatch matrix with N scoring -1
// against any base and +1 against itself.
var nuc44Scores = []int32{
	5, -4, -4, -4, -1,
	-4, 5, -4, -4, -1,
	-4, -4, 5, -4, -1,
	-4, -4, -4, 5, -1,
	-1, -1, -1, -1, 1,
}
