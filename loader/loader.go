package loader

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/delaycache/internal/mmap"
)

// ElementType identifies the scalar type of a vector file.
type ElementType uint8

const (
	// ElementUnknown is the zero value; readers reject it.
	ElementUnknown ElementType = iota
	// ElementUint8 is an unsigned 8-bit element.
	ElementUint8
	// ElementInt8 is a signed 8-bit element.
	ElementInt8
	// ElementFloat32 is a 32-bit float element.
	ElementFloat32
)

// Size returns the element size in bytes, zero for ElementUnknown.
func (t ElementType) Size() int {
	switch t {
	case ElementUint8, ElementInt8:
		return 1
	case ElementFloat32:
		return 4
	default:
		return 0
	}
}

// String returns the lowercase element type name.
func (t ElementType) String() string {
	switch t {
	case ElementUint8:
		return "uint8"
	case ElementInt8:
		return "int8"
	case ElementFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// ParseElementType parses an element type name, case-insensitively.
func ParseElementType(s string) (ElementType, error) {
	switch strings.ToLower(s) {
	case "uint8":
		return ElementUint8, nil
	case "int8":
		return ElementInt8, nil
	case "float32":
		return ElementFloat32, nil
	default:
		return ElementUnknown, fmt.Errorf("%w: %q", ErrInvalidProfile, s)
	}
}

// VectorProfile describes the layout of a query file's vectors.
type VectorProfile struct {
	Type      ElementType
	Dimension int
}

// VectorBytes returns the byte length of one vector.
func (p VectorProfile) VectorBytes() int {
	return p.Dimension * p.Type.Size()
}

func (p VectorProfile) validate() error {
	if p.Type.Size() == 0 || p.Dimension <= 0 {
		return fmt.Errorf("%w: type=%s dimension=%d", ErrInvalidProfile, p.Type, p.Dimension)
	}
	return nil
}

// Vector is one loaded payload. ID is the vector's position in the file.
type Vector struct {
	ID   uint64
	Data []byte
}

// Vectors is an ordered sequence of loaded vectors.
type Vectors []Vector

// PayloadFunc returns a key→payload lookup over the loaded vectors,
// suitable for driving a replay run. Unknown keys yield nil.
func (vs Vectors) PayloadFunc() func(key uint64) []byte {
	byID := make(map[uint64][]byte, len(vs))
	for _, v := range vs {
		byID[v.ID] = v.Data
	}
	return func(key uint64) []byte {
		return byID[key]
	}
}

// ErrInvalidProfile is returned for an unusable vector profile.
var ErrInvalidProfile = errors.New("invalid vector profile")

// ErrDimensionMismatch indicates that a file header disagrees with the
// configured profile dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrCountMismatch indicates that the query and ground-truth files of a
// dataset disagree on the vector count.
type ErrCountMismatch struct {
	Queries int
	Rows    int
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("dataset count mismatch: %d queries, %d ground-truth rows", e.Queries, e.Rows)
}

type options struct {
	logger  *slog.Logger
	useMmap bool
}

// Option configures a reader.
type Option func(*options)

// WithLogger injects the logger used for header/payload disagreement
// warnings. If nil is passed, warnings are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMmap loads plain files through a read-only memory mapping instead of
// buffered reads. Incompatible with compressed inputs.
func WithMmap() Option {
	return func(o *options) {
		o.useMmap = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// ReadVectors loads every vector of the query file at path. The header
// count is advisory: the payload stream is read to EOF and a disagreement
// with the header is logged, not fatal. A trailing partial vector is
// dropped with a warning.
func ReadVectors(path string, profile VectorProfile, optFns ...Option) (Vectors, error) {
	o := applyOptions(optFns)

	if err := profile.validate(); err != nil {
		return nil, err
	}
	if o.useMmap {
		return readVectorsMmap(path, profile, o)
	}

	rc, err := openPayload(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)

	var numVectors, dimension uint32
	if err := binary.Read(br, binary.LittleEndian, &numVectors); err != nil {
		return nil, fmt.Errorf("read vector count: %w", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &dimension); err != nil {
		return nil, fmt.Errorf("read dimension: %w", err)
	}
	if int(dimension) != profile.Dimension {
		return nil, &ErrDimensionMismatch{Expected: profile.Dimension, Actual: int(dimension)}
	}

	vecSize := profile.VectorBytes()
	vectors := make(Vectors, 0, numVectors)
	for {
		buf := make([]byte, vecSize)
		_, err := io.ReadFull(br, buf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			o.logger.Warn("dropping trailing partial vector", "path", path, "loaded", len(vectors))
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read vector %d: %w", len(vectors), err)
		}
		vectors = append(vectors, Vector{ID: uint64(len(vectors)), Data: buf})
	}

	if len(vectors) != int(numVectors) {
		o.logger.Warn("vector count differs from header",
			"path", path,
			"header", numVectors,
			"loaded", len(vectors),
		)
	}
	return vectors, nil
}

// readVectorsMmap is the zero-copy load path: the file is mapped read-only
// and per-vector payloads are copied out of the mapping.
func readVectorsMmap(path string, profile VectorProfile, o options) (Vectors, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	data := m.Data
	if len(data) < 8 {
		return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
	}
	numVectors := binary.LittleEndian.Uint32(data[0:4])
	dimension := binary.LittleEndian.Uint32(data[4:8])
	if int(dimension) != profile.Dimension {
		return nil, &ErrDimensionMismatch{Expected: profile.Dimension, Actual: int(dimension)}
	}

	vecSize := profile.VectorBytes()
	payload := data[8:]
	count := len(payload) / vecSize
	if len(payload)%vecSize != 0 {
		o.logger.Warn("dropping trailing partial vector", "path", path, "loaded", count)
	}

	vectors := make(Vectors, 0, count)
	for i := 0; i < count; i++ {
		buf := make([]byte, vecSize)
		copy(buf, payload[i*vecSize:(i+1)*vecSize])
		vectors = append(vectors, Vector{ID: uint64(i), Data: buf})
	}

	if count != int(numVectors) {
		o.logger.Warn("vector count differs from header",
			"path", path,
			"header", numVectors,
			"loaded", count,
		)
	}
	return vectors, nil
}
