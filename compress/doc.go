// Package compress measures the prefix-code codec against general-purpose
// byte compressors.
//
// Every algorithm is exposed through the same two-method interface:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, the reference size
//   - LZ4 (format.CompressionLZ4): LZ4 block with a length header
//   - S2 (format.CompressionS2): S2 block, "better" encoder
//   - Zstd (format.CompressionZstd): Zstandard frame, best-compression level
//   - Huffman (format.CompressionHuffman): a codec.Codec, see NewHuffmanCompressor
//
// General-purpose compressors need repetition inside the payload to win, and
// short strings have little. A prefix code trained on a corpus carries its
// statistics in the table instead, so it usually beats every baseline on
// short texts and loses to them on long repetitive ones. Compare makes that
// trade-off visible for a given payload:
//
//	c, _ := codec.New(codec.WithFrequencyTable(table))
//	h, _ := compress.NewHuffmanCompressor(c)
//	codecs := append(compress.Baselines(), compress.Named{
//	    Name: "huffman", Type: format.CompressionHuffman, Codec: h,
//	})
//	stats, _ := compress.Compare(ctx, []byte("hello world"), codecs)
//	for _, s := range stats {
//	    fmt.Println(s)
//	}
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 keep pooled encoder
// state; S2 and None are stateless.
package compress
