package atext

type Limits struct {
	MaxContainerLen uint64 // raw file bytes read from the input
	MaxHeaderLen    uint32 // bytes scanned for the null separator
	MaxUncompressed uint64 // JSON bytes after LZ4 decompression
	MaxDepth        int    // group nesting depth
}

func defaultLimits() Limits {
	return Limits{
		MaxContainerLen: 1 << 30, // 1 GiB
		MaxHeaderLen:    64 << 10,
		MaxUncompressed: 256 << 20, // 256 MiB
		MaxDepth:        128,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxContainerLen == 0 {
		l.MaxContainerLen = d.MaxContainerLen
	}
	if l.MaxHeaderLen == 0 {
		l.MaxHeaderLen = d.MaxHeaderLen
	}
	if l.MaxUncompressed == 0 {
		l.MaxUncompressed = d.MaxUncompressed
	}
	if l.MaxDepth == 0 {
		l.MaxDepth = d.MaxDepth
	}
	return l
}
