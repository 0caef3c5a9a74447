package common

import "github.com/klauspost/compress/zstd"

// NewZstdDecoder and NewZstdEncoder use a small window and bounded memory.
func NewZstdDecoder(concurrency int) *zstd.Decoder {
	opts := []zstd.DOption{
		zstd.WithDecoderConcurrency(concurrency),
		zstd.WithDecoderLowmem(true),
		zstd.WithDecoderMaxMemory(1024 * 1024 * 16),
	}
	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		panic(err)
	}
	return dec
}

func NewZstdEncoder(concurrency int) *zstd.Encoder {
	opts := []zstd.EOption{
		zstd.WithEncoderConcurrency(concurrency),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithWindowSize(8192),
	}
	enc, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		panic(err)
	}
	return enc
}
