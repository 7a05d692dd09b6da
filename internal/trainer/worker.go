package trainer

import (
	"context"
	"math"

	"github.com/koji-ohki-1974/word2vec-go/internal/corpus"
)

// worker holds one training goroutine's private state: its LCG seed, its
// buffers, and the sentence stream it independently rescans from the
// beginning on every local iteration. It never touches another worker's
// buffers, only the network's shared weight matrices.
type worker struct {
	id         int
	net        *network
	source     corpus.Source
	threads    int
	trainWords int64
	iterations int
}

// run executes this worker's full training contract: iterate the sentence
// stream, applying CBOW or skip-gram updates, for w.iterations local
// passes, each capped at trainWords/threads words before rolling over to a
// freshly reopened stream. Cancellation is honored only at the point where
// a new sentence buffer would otherwise be assembled, leaving any in-flight
// update untouched.
func (w *worker) run(ctx context.Context, progress func(fraction float64)) error {
	cfg := w.net.cfg
	layerSize := cfg.LayerSize
	window := cfg.WindowSize
	vocabSize := len(w.net.vocab)
	state := w.net.state
	startingAlpha := cfg.alpha()
	perCycleBudget := w.trainWords / int64(w.threads)
	totalGoal := w.trainWords * int64(w.iterations)

	neu1 := make([]float64, layerSize)
	neu1e := make([]float64, layerSize)
	sen := make([]int, 0, maxSentenceLength)

	var next uint64 = uint64(w.id)
	localIter := w.iterations
	var wordCount, lastWordCount int64
	var eof bool
	sentencePos := 0

	stream, err := w.source.Open()
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		if wordCount-lastWordCount > 10000 {
			delta := wordCount - lastWordCount
			lastWordCount = wordCount
			state.wordCountActual.Add(delta)
			actual := state.wordCountActual.Load()
			alpha := startingAlpha * (1 - float64(actual)/float64(int64(cfg.Iterations)*w.trainWords+1))
			if alpha < startingAlpha*0.0001 {
				alpha = startingAlpha * 0.0001
			}
			state.setAlpha(alpha)
			if progress != nil && totalGoal > 0 {
				progress(math.Min(1, float64(actual)/float64(totalGoal)))
			}
		}

		if sentencePos >= len(sen) {
			if err := ctx.Err(); err != nil {
				return err
			}
			sen = sen[:0]
			eof = false
			for {
				word, ok, err := stream.Next()
				if err != nil {
					return err
				}
				if !ok {
					eof = true
					break
				}
				idx := w.net.indexOf(word)
				if idx == -1 {
					continue
				}
				wordCount++
				if idx == 0 {
					break
				}
				if cfg.DownSampleRate > 0 {
					count := w.net.counts[idx]
					ran := (math.Sqrt(float64(count)/(cfg.DownSampleRate*float64(w.trainWords)))+1) *
						(cfg.DownSampleRate * float64(w.trainWords)) / float64(count)
					next = nextRandom(next)
					draw := float64(next&0xFFFF) / 65536
					if ran < draw {
						continue
					}
				}
				sen = append(sen, idx)
				if len(sen) >= maxSentenceLength {
					break
				}
			}
			sentencePos = 0
		}

		if eof || wordCount > perCycleBudget {
			delta := wordCount - lastWordCount
			state.wordCountActual.Add(delta)
			localIter--
			if localIter == 0 {
				break
			}
			wordCount, lastWordCount = 0, 0
			sen = sen[:0]
			sentencePos = 0
			if err := stream.Close(); err != nil {
				return err
			}
			stream, err = w.source.Open()
			if err != nil {
				return err
			}
			continue
		}

		if sentencePos < len(sen) {
			next = w.trainPosition(sen, sentencePos, window, vocabSize, next, neu1, neu1e)
			sentencePos++
			if sentencePos >= len(sen) {
				sen = sen[:0]
				sentencePos = 0
			}
		}
	}

	if progress != nil {
		progress(1)
	}
	return nil
}

// trainPosition applies one CBOW or skip-gram update centered on sen[p] and
// returns the advanced LCG state.
func (w *worker) trainPosition(sen []int, p, window, vocabSize int, next uint64, neu1, neu1e []float64) uint64 {
	word := sen[p]
	layerSize := w.net.cfg.LayerSize

	next = nextRandom(next)
	b := int(next % uint64(window))

	if w.net.cfg.Type == SkipGram {
		for a := b; a < window*2+1-b; a++ {
			if a == window {
				continue
			}
			c := p - window + a
			if c < 0 || c >= len(sen) {
				continue
			}
			lastWord := sen[c]
			l1 := lastWord * layerSize
			for i := range neu1e {
				neu1e[i] = 0
			}
			next = w.applyOutputUpdates(word, w.net.syn0[l1:l1+layerSize], neu1e, vocabSize, next)
			syn0 := w.net.syn0[l1 : l1+layerSize]
			for i := range syn0 {
				syn0[i] += neu1e[i]
			}
		}
		return next
	}

	for i := range neu1 {
		neu1[i] = 0
	}
	cw := 0
	for a := b; a < window*2+1-b; a++ {
		if a == window {
			continue
		}
		c := p - window + a
		if c < 0 || c >= len(sen) {
			continue
		}
		lastWord := sen[c]
		base := lastWord * layerSize
		for i := 0; i < layerSize; i++ {
			neu1[i] += w.net.syn0[base+i]
		}
		cw++
	}
	if cw == 0 {
		return next
	}
	for i := range neu1 {
		neu1[i] /= float64(cw)
	}
	for i := range neu1e {
		neu1e[i] = 0
	}
	next = w.applyOutputUpdates(word, neu1, neu1e, vocabSize, next)

	for a := b; a < window*2+1-b; a++ {
		if a == window {
			continue
		}
		c := p - window + a
		if c < 0 || c >= len(sen) {
			continue
		}
		lastWord := sen[c]
		base := lastWord * layerSize
		for i := 0; i < layerSize; i++ {
			w.net.syn0[base+i] += neu1e[i]
		}
	}
	return next
}

// applyOutputUpdates runs the hierarchical-softmax and negative-sampling
// branches against target word, reading input from in (either the CBOW
// mean vector or a skip-gram context row) and accumulating gradients into
// neu1e. Returns the advanced LCG state.
func (w *worker) applyOutputUpdates(word int, in, neu1e []float64, vocabSize int, next uint64) uint64 {
	layerSize := w.net.cfg.LayerSize
	alpha := w.net.state.alpha()
	expTable := w.net.expTable

	if w.net.cfg.UseHierarchicalSoftmax {
		entry := w.net.vocab[word]
		for d := 0; d < len(entry.Code); d++ {
			l2 := int(entry.Path[d]) * layerSize
			syn1 := w.net.syn1[l2 : l2+layerSize]
			var f float64
			for i := 0; i < layerSize; i++ {
				f += in[i] * syn1[i]
			}
			if f <= -maxExp || f >= maxExp {
				continue
			}
			f = sigmoid(expTable, f)
			g := (1 - float64(entry.Code[d]) - f) * alpha
			for i := 0; i < layerSize; i++ {
				neu1e[i] += g * syn1[i]
				syn1[i] += g * in[i]
			}
		}
	}

	if w.net.cfg.NegativeSamples > 0 {
		for d := 0; d <= w.net.cfg.NegativeSamples; d++ {
			var target int
			var label float64
			if d == 0 {
				target = word
				label = 1
			} else {
				next = nextRandom(next)
				target = int(w.net.unigram[(next>>16)%unigramTableSize])
				if target == 0 {
					target = int(next % uint64(vocabSize))
				}
				if target == word {
					continue
				}
				label = 0
			}
			l2 := target * layerSize
			syn1neg := w.net.syn1neg[l2 : l2+layerSize]
			var f float64
			for i := 0; i < layerSize; i++ {
				f += in[i] * syn1neg[i]
			}
			var g float64
			switch {
			case f > maxExp:
				g = (label - 1) * alpha
			case f < -maxExp:
				g = (label - 0) * alpha
			default:
				g = (label - sigmoid(expTable, f)) * alpha
			}
			for i := 0; i < layerSize; i++ {
				neu1e[i] += g * syn1neg[i]
				syn1neg[i] += g * in[i]
			}
		}
	}
	return next
}
