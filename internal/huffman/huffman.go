// Package huffman builds the binary Huffman tree over vocabulary frequencies
// that hierarchical softmax addresses: each word gets a bit code and a path
// of internal-node indices from the root down to its leaf.
package huffman

import "fmt"

// MaxCodeLength bounds the code/path length assigned to any single word.
// A tree built from a realistically Zipfian frequency distribution never
// approaches this; it exists as a fixed-size buffer bound in the reference
// and is preserved here as a sanity check.
const MaxCodeLength = 40

// Build runs the two-cursor greedy merge over counts (expected in
// descending order, index-aligned to the vocabulary) and returns, for every
// index, its Huffman bit code (root-to-leaf, one byte per bit) and its path
// of node indices (root-to-leaf, offset by vocabSize so internal nodes are
// numbered from 0, the first merged node, up to vocabSize-2, the root). The
// path is one entry longer than the code; its last entry is the leaf's own
// index minus vocabSize. path[0] is always vocabSize-2, the index of the tree's root node
// once relabeled into the internal-node numbering space — this is a fixed
// property of the merge order, not a per-word computation.
func Build(counts []int64) (codes [][]byte, paths [][]int32, err error) {
	vocabSize := len(counts)
	if vocabSize == 0 {
		return nil, nil, nil
	}

	size := vocabSize*2 + 1
	count := make([]int64, size)
	binary := make([]int32, size)
	parentNode := make([]int32, size)

	copy(count, counts)
	for a := vocabSize; a < vocabSize*2; a++ {
		count[a] = 1e15
	}

	pos1 := vocabSize - 1
	pos2 := vocabSize
	var min1i, min2i int
	for a := 0; a < vocabSize-1; a++ {
		if pos1 >= 0 {
			if count[pos1] < count[pos2] {
				min1i = pos1
				pos1--
			} else {
				min1i = pos2
				pos2++
			}
		} else {
			min1i = pos2
			pos2++
		}
		if pos1 >= 0 {
			if count[pos1] < count[pos2] {
				min2i = pos1
				pos1--
			} else {
				min2i = pos2
				pos2++
			}
		} else {
			min2i = pos2
			pos2++
		}
		count[vocabSize+a] = count[min1i] + count[min2i]
		parentNode[min1i] = int32(vocabSize + a)
		parentNode[min2i] = int32(vocabSize + a)
		binary[min2i] = 1
	}

	codes = make([][]byte, vocabSize)
	paths = make([][]int32, vocabSize)
	point := make([]int32, MaxCodeLength)
	code := make([]byte, MaxCodeLength)

	for a := 0; a < vocabSize; a++ {
		b := a
		i := 0
		for {
			if i >= MaxCodeLength {
				return nil, nil, fmt.Errorf("huffman: code length exceeds %d at vocabulary index %d", MaxCodeLength, a)
			}
			code[i] = byte(binary[b])
			point[i] = int32(b)
			i++
			b = int(parentNode[b])
			if b == vocabSize*2-2 {
				break
			}
		}
		wordCode := make([]byte, i)
		wordPath := make([]int32, i+1)
		wordPath[0] = int32(vocabSize - 2)
		for j := 0; j < i; j++ {
			wordCode[i-j-1] = code[j]
			wordPath[i-j] = point[j] - int32(vocabSize)
		}
		codes[a] = wordCode
		paths[a] = wordPath
	}
	return codes, paths, nil
}
