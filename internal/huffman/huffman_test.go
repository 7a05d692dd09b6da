package huffman

import "testing"

func TestBuildEmpty(t *testing.T) {
	codes, paths, err := Build(nil)
	if err != nil || codes != nil || paths != nil {
		t.Fatalf("Build(nil) = %v, %v, %v", codes, paths, err)
	}
}

func TestBuildPathZeroIsRoot(t *testing.T) {
	counts := []int64{10, 6, 4, 3, 2, 1}
	_, paths, err := Build(counts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantRoot := int32(len(counts) - 2)
	for i, p := range paths {
		if p[0] != wantRoot {
			t.Fatalf("paths[%d][0] = %d, want %d", i, p[0], wantRoot)
		}
	}
}

func TestBuildCodesArePrefixFree(t *testing.T) {
	counts := []int64{100, 50, 25, 12, 6, 3, 2, 1}
	codes, _, err := Build(counts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}
			if isPrefix(codes[i], codes[j]) {
				t.Fatalf("code %d (%v) is a prefix of code %d (%v)", i, codes[i], j, codes[j])
			}
		}
	}
}

func TestBuildMoreFrequentWordsGetShorterCodes(t *testing.T) {
	counts := []int64{1000, 500, 10, 5, 1}
	codes, _, err := Build(counts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(codes[0]) > len(codes[len(codes)-1]) {
		t.Fatalf("most frequent word got a longer code (%d) than least frequent (%d)", len(codes[0]), len(codes[len(codes)-1]))
	}
}

func isPrefix(a, b []byte) bool {
	if len(a) >= len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
