// Package loader reads query and ground-truth vector files.
//
// A query file is a little-endian 32-bit vector count, a little-endian
// 32-bit dimension, then count × dimension × element-size bytes of payload.
// A ground-truth file is a little-endian 32-bit vector count, a
// little-endian 32-bit top-K, then count × topK × 4 bytes of neighbor IDs.
//
// Inputs may be plain, zstd-compressed (.zst) or lz4-compressed (.lz4).
// Plain files can also be loaded through a read-only memory mapping.
// Loaded payloads are owned by the caller; the cache copies them again on
// insert.
package loader
