package ubig

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/sarchlab/exactsum/word"
)

// scratchPool hands out reusable []word.Word scratch buffers for
// burnikelZieglerDivide's bringDownBlock step, bucketed by word length
// so a buffer can be reused across the block steps of one division
// without a fresh allocation each time. It reuses Akita's cache directory as the
// eviction tracker: each "set" is a length bucket, each "way" within a
// set is a candidate buffer of that bucket's capacity, and Akita's LRU
// victim finder picks which buffer to recycle when a bucket is full.
type scratchPool struct {
	bucketWords int
	ways        int
	directory   *akitacache.DirectoryImpl
	buffers     [][]word.Word
}

// newScratchPool creates a pool with numBuckets length buckets (bucket i
// holds buffers of capacity (i+1)*bucketWords), ways buffers per bucket.
func newScratchPool(numBuckets, ways, bucketWords int) *scratchPool {
	total := numBuckets * ways
	buffers := make([][]word.Word, total)
	for i := range buffers {
		buffers[i] = make([]word.Word, 0)
	}
	return &scratchPool{
		bucketWords: bucketWords,
		ways:        ways,
		directory: akitacache.NewDirectory(
			numBuckets,
			ways,
			bucketWords,
			akitacache.NewLRUVictimFinder(),
		),
		buffers: buffers,
	}
}

// bucketFor returns the bucket tag for a buffer that needs to hold at
// least n words.
func (p *scratchPool) bucketFor(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return uint64((n - 1) / p.bucketWords)
}

func (p *scratchPool) index(block *akitacache.Block) int {
	return block.SetID*p.ways + block.WayID
}

// get returns a []word.Word with length n, reused from the pool's LRU
// buffer for n's bucket when one is available and big enough, or a
// freshly allocated slice otherwise. The returned slice's contents are
// not zeroed; callers that need a clean scratch buffer must clear it.
func (p *scratchPool) get(n int) []word.Word {
	bucket := p.bucketFor(n)
	capWords := (int(bucket) + 1) * p.bucketWords

	block := p.directory.Lookup(0, bucket)
	if block == nil {
		block = p.directory.FindVictim(bucket)
	}
	if block == nil {
		return make([]word.Word, n)
	}

	buf := p.buffers[p.index(block)]
	block.Tag = bucket
	block.IsValid = true
	p.directory.Visit(block)

	if cap(buf) < n {
		buf = make([]word.Word, capWords)
		p.buffers[p.index(block)] = buf
	}
	return buf[:n]
}

// put returns a buffer to the pool for future reuse. It is a hint, not
// an obligation: pool eviction may silently discard it.
func (p *scratchPool) put(buf []word.Word) {
	n := cap(buf)
	if n == 0 {
		return
	}
	bucket := p.bucketFor(n)
	block := p.directory.FindVictim(bucket)
	if block == nil {
		return
	}
	block.Tag = bucket
	block.IsValid = true
	p.buffers[p.index(block)] = buf[:0]
	p.directory.Visit(block)
}
