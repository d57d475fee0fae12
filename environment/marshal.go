package environment

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zksynth/zkfield"
)

// Snapshot is a serializable view of a synthesized system: the tallies and
// the registered constraints, with coefficients in canonical big-endian
// bytes. It captures structure only — witness values are never serialized.
type Snapshot struct {
	Header      SnapshotHeader
	Constraints []SnapshotConstraint
}

type SnapshotHeader struct {
	Version      string
	NumConstants uint64
	NumPublic    uint64
	NumPrivate   uint64
	NumWires     uint64
}

type SnapshotTerm struct {
	Coefficient []byte
	Wire        uint64
}

type SnapshotLC struct {
	Constant []byte
	Terms    []SnapshotTerm
}

type SnapshotConstraint struct {
	A, B, C SnapshotLC
}

// Snapshot captures the current state of the backend.
func (ckt *Circuit) Snapshot() Snapshot {
	s := Snapshot{
		Header: SnapshotHeader{
			Version:      zkfield.Version.String(),
			NumConstants: ckt.numConstants,
			NumPublic:    ckt.numPublic,
			NumPrivate:   ckt.numPrivate,
			NumWires:     ckt.nextWire,
		},
		Constraints: make([]SnapshotConstraint, len(ckt.constraints)),
	}
	for i, c := range ckt.constraints {
		s.Constraints[i] = SnapshotConstraint{
			A: snapshotLC(c.a),
			B: snapshotLC(c.b),
			C: snapshotLC(c.c),
		}
	}
	return s
}

func snapshotLC(lc LinearCombination) SnapshotLC {
	res := SnapshotLC{Constant: lc.constant.Marshal()}
	res.Terms = make([]SnapshotTerm, len(lc.terms))
	for i, t := range lc.terms {
		res.Terms[i] = SnapshotTerm{
			Coefficient: t.Coefficient.Marshal(),
			Wire:        t.Variable.Index(),
		}
	}
	return res
}

// WriteTo serializes the snapshot as a header blob and a body blob, each
// CBOR-encoded deterministically and length-prefixed.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}

	var header, body []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		header, err = enc.Marshal(s.Header)
		return err
	})
	g.Go(func() error {
		var err error
		body, err = enc.Marshal(s.Constraints)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var lengths [16]byte
	binary.BigEndian.PutUint64(lengths[:8], uint64(len(header)))
	binary.BigEndian.PutUint64(lengths[8:], uint64(len(body)))

	var written int64
	for _, blob := range [][]byte{lengths[:], header, body} {
		n, err := w.Write(blob)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadSnapshot deserializes a snapshot, rejecting artifacts produced by an
// incompatible library version.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot

	var lengths [16]byte
	if _, err := io.ReadFull(r, lengths[:]); err != nil {
		return s, fmt.Errorf("reading snapshot header lengths: %w", err)
	}
	header := make([]byte, binary.BigEndian.Uint64(lengths[:8]))
	body := make([]byte, binary.BigEndian.Uint64(lengths[8:]))
	if _, err := io.ReadFull(r, header); err != nil {
		return s, fmt.Errorf("reading snapshot header: %w", err)
	}
	if _, err := io.ReadFull(r, body); err != nil {
		return s, fmt.Errorf("reading snapshot body: %w", err)
	}

	dm, err := cbor.DecOptions{MaxArrayElements: 134217728}.DecMode()
	if err != nil {
		return s, err
	}
	if err := dm.Unmarshal(header, &s.Header); err != nil {
		return s, fmt.Errorf("decoding snapshot header: %w", err)
	}

	version, err := semver.Parse(s.Header.Version)
	if err != nil {
		return s, fmt.Errorf("decoding snapshot version %q: %w", s.Header.Version, err)
	}
	if version.Major != zkfield.Version.Major {
		return s, fmt.Errorf("snapshot version %s is incompatible with %s", version, zkfield.Version)
	}

	if err := dm.Unmarshal(body, &s.Constraints); err != nil {
		return s, fmt.Errorf("decoding snapshot body: %w", err)
	}
	return s, nil
}
