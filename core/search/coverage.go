package search

import "github.com/RoaringBitmap/roaring/v2"

// Coverage returns the positions covered by at least one reported
// occurrence: [off, off+len(pattern)) for every offset in every result.
func Coverage(results []Result) *roaring.Bitmap {
	bm := roaring.New()
	for _, r := range results {
		n := uint64(len(r.Pattern))
		for _, off := range r.Offsets {
			bm.AddRange(uint64(off), uint64(off)+n)
		}
	}
	return bm
}
