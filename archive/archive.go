// Package archive stores precomputed contest templates in a binary snapshot
// so they can be rebuilt quickly between rounds. A snapshot holds named
// Fenwick trees, suffix automata and prime sieves plus free-form notes.
package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"
	"golang.org/x/sync/errgroup"

	"github.com/contestkit/contestkit"
	"github.com/contestkit/contestkit/fenwick"
	"github.com/contestkit/contestkit/internal/ioutils"
	"github.com/contestkit/contestkit/internal/utils"
	"github.com/contestkit/contestkit/sieve"
	"github.com/contestkit/contestkit/suffixauto"
)

var (
	// ErrInvalidData is returned when the snapshot is truncated or the
	// magic does not match.
	ErrInvalidData = errors.New("archive: invalid snapshot data")
	// ErrVersionMismatch is returned when the snapshot was written by an
	// incompatible (newer-major) release.
	ErrVersionMismatch = errors.New("archive: incompatible snapshot version")
)

var magic = [4]byte{'C', 'T', 'K', '1'}

// Archive is a collection of named snapshots.
type Archive struct {
	trees    map[string]*fenwick.Tree[int64]
	automata map[string]*suffixauto.Automaton
	sieves   map[string]*sieve.Sieve
	notes    map[string]string
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{
		trees:    make(map[string]*fenwick.Tree[int64]),
		automata: make(map[string]*suffixauto.Automaton),
		sieves:   make(map[string]*sieve.Sieve),
		notes:    make(map[string]string),
	}
}

// AddTree stores a Fenwick tree under name, replacing any previous entry.
func (a *Archive) AddTree(name string, t *fenwick.Tree[int64]) { a.trees[name] = t }

// Tree returns the Fenwick tree stored under name.
func (a *Archive) Tree(name string) (*fenwick.Tree[int64], bool) {
	t, ok := a.trees[name]
	return t, ok
}

// AddAutomaton stores a suffix automaton under name.
func (a *Archive) AddAutomaton(name string, m *suffixauto.Automaton) { a.automata[name] = m }

// Automaton returns the automaton stored under name.
func (a *Archive) Automaton(name string) (*suffixauto.Automaton, bool) {
	m, ok := a.automata[name]
	return m, ok
}

// AddSieve stores a prime sieve under name.
func (a *Archive) AddSieve(name string, s *sieve.Sieve) { a.sieves[name] = s }

// Sieve returns the sieve stored under name.
func (a *Archive) Sieve(name string) (*sieve.Sieve, bool) {
	s, ok := a.sieves[name]
	return s, ok
}

// SetNote attaches a free-form note to the archive.
func (a *Archive) SetNote(key, value string) { a.notes[key] = value }

// Note returns the note stored under key.
func (a *Archive) Note(key string) (string, bool) {
	v, ok := a.notes[key]
	return v, ok
}

// body is the cbor-encoded section; it carries the names matching the
// binary sections in order, and the notes.
type body struct {
	TreeNames      []string          `cbor:"1,keyasint"`
	AutomatonNames []string          `cbor:"2,keyasint"`
	Notes          map[string]string `cbor:"3,keyasint"`
	SieveNames     []string          `cbor:"4,keyasint"`
}

// ToBytes serializes the archive. The binary sections (trees, automata,
// sieves) are prepared in parallel and prefixed with a fixed header.
func (a *Archive) ToBytes() ([]byte, error) {
	treeNames := sortedKeys(a.trees)
	autoNames := sortedKeys(a.automata)
	sieveNames := sortedKeys(a.sieves)

	var trees, automata, sieves []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		trees, err = a.treesToBytes(treeNames)
		return err
	})
	g.Go(func() error {
		var err error
		automata, err = a.automataToBytes(autoNames)
		return err
	})
	g.Go(func() error {
		var err error
		sieves, err = a.sievesToBytes(sieveNames)
		return err
	})
	bodyBytes, err := a.bodyToBytes(treeNames, autoNames, sieveNames)
	if err != nil {
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h := header{
		version:     contestkit.Version.String(),
		treesLen:    uint64(len(trees)),
		automataLen: uint64(len(automata)),
		sievesLen:   uint64(len(sieves)),
		bodyLen:     uint64(len(bodyBytes)),
	}

	buf := h.toBytes()
	buf = append(buf, trees...)
	buf = append(buf, automata...)
	buf = append(buf, sieves...)
	buf = append(buf, bodyBytes...)
	return buf, nil
}

// FromBytes deserializes a snapshot produced by ToBytes and returns the
// number of bytes read.
func (a *Archive) FromBytes(data []byte) (int, error) {
	h := new(header)
	hn, err := h.fromBytes(data)
	if err != nil {
		return 0, err
	}
	if err := checkVersion(h.version); err != nil {
		return 0, err
	}
	// validate section lengths as uint64 before any int conversion; corrupt
	// high-bit lengths must not overflow into negative slice bounds
	rest := uint64(len(data) - hn)
	for _, l := range []uint64{h.treesLen, h.automataLen, h.sievesLen, h.bodyLen} {
		if l > rest {
			return 0, ErrInvalidData
		}
		rest -= l
	}
	treesEnd := hn + int(h.treesLen)
	automataEnd := treesEnd + int(h.automataLen)
	sievesEnd := automataEnd + int(h.sievesLen)
	total := sievesEnd + int(h.bodyLen)

	var b body
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return 0, err
	}
	if err := dm.Unmarshal(data[sievesEnd:total], &b); err != nil {
		return 0, fmt.Errorf("archive: decode body: %w", err)
	}

	// sections decode in parallel once the names are known
	var g errgroup.Group
	g.Go(func() error {
		return a.treesFromBytes(data[hn:treesEnd], b.TreeNames)
	})
	g.Go(func() error {
		return a.automataFromBytes(data[treesEnd:automataEnd], b.AutomatonNames)
	})
	g.Go(func() error {
		return a.sievesFromBytes(data[automataEnd:sievesEnd], b.SieveNames)
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	a.notes = b.Notes
	if a.notes == nil {
		a.notes = make(map[string]string)
	}
	return total, nil
}

// WriteTo implements io.WriterTo.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	data, err := a.ToBytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom implements io.ReaderFrom.
func (a *Archive) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	n, err := a.FromBytes(data)
	return int64(n), err
}

type header struct {
	version     string
	treesLen    uint64
	automataLen uint64
	sievesLen   uint64
	bodyLen     uint64
}

func (h *header) toBytes() []byte {
	buf := make([]byte, 0, 4+1+len(h.version)+4*8)
	buf = append(buf, magic[:]...)
	buf = binary.AppendUvarint(buf, uint64(len(h.version)))
	buf = append(buf, h.version...)
	buf = binary.LittleEndian.AppendUint64(buf, h.treesLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.automataLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.sievesLen)
	buf = binary.LittleEndian.AppendUint64(buf, h.bodyLen)
	return buf
}

func (h *header) fromBytes(data []byte) (int, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], magic[:]) {
		return 0, ErrInvalidData
	}
	vlen, n := binary.Uvarint(data[4:])
	if n <= 0 || len(data) < 4+n+int(vlen)+4*8 {
		return 0, ErrInvalidData
	}
	off := 4 + n
	h.version = string(data[off : off+int(vlen)])
	off += int(vlen)
	h.treesLen = binary.LittleEndian.Uint64(data[off:])
	h.automataLen = binary.LittleEndian.Uint64(data[off+8:])
	h.sievesLen = binary.LittleEndian.Uint64(data[off+16:])
	h.bodyLen = binary.LittleEndian.Uint64(data[off+24:])
	return off + 32, nil
}

func checkVersion(v string) error {
	sv, err := semver.Parse(v)
	if err != nil {
		return fmt.Errorf("archive: bad version %q: %w", v, err)
	}
	if sv.Major != contestkit.Version.Major {
		return fmt.Errorf("%w: snapshot v%s, running v%s",
			ErrVersionMismatch, sv, contestkit.Version)
	}
	return nil
}

// Fenwick arrays compress well with intcomp since prefix structures grow
// monotonically in practice.
func (a *Archive) treesToBytes(names []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint64(len(names))); err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := ioutils.CompressAndWriteInts64(&buf, a.trees[name].Dump()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (a *Archive) treesFromBytes(in []byte, names []string) error {
	if len(in) < 8 {
		return ErrInvalidData
	}
	count := binary.LittleEndian.Uint64(in[:8])
	if int(count) != len(names) {
		return ErrInvalidData
	}
	in = in[8:]
	a.trees = make(map[string]*fenwick.Tree[int64], count)
	for _, name := range names {
		n, raw, err := ioutils.ReadAndDecompressInts64(bytes.NewReader(in))
		if err != nil {
			return err
		}
		in = in[n:]
		t := fenwick.New[int64](len(raw))
		t.LoadRaw(raw)
		a.trees[name] = t
	}
	return nil
}

// Automaton states are bit-packed: most fields need far fewer than 64 bits
// and transition maps are sparse.
func (a *Archive) automataToBytes(names []string) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.TryWriteBits(uint64(len(names)), 32)
	for _, name := range names {
		states, last := a.automata[name].Dump()
		w.TryWriteBits(uint64(len(states)), 32)
		w.TryWriteBits(uint64(last), 32)
		for _, st := range states {
			w.TryWriteBits(uint64(st.Len), 32)
			w.TryWriteBits(uint64(st.Link+1), 32) // -1 shifts to 0
			w.TryWriteBits(uint64(len(st.Next)), 9)
			for _, c := range sortedTransitionBytes(st.Next) {
				w.TryWriteBits(uint64(c), 8)
				w.TryWriteBits(uint64(st.Next[c]), 32)
			}
		}
	}
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *Archive) automataFromBytes(in []byte, names []string) error {
	r := bitio.NewReader(bytes.NewReader(in))
	count := r.TryReadBits(32)
	if r.TryError != nil || int(count) != len(names) {
		return ErrInvalidData
	}
	a.automata = make(map[string]*suffixauto.Automaton, count)
	for _, name := range names {
		nbStates := r.TryReadBits(32)
		last := int32(r.TryReadBits(32))
		states := make([]suffixauto.State, nbStates)
		for i := range states {
			states[i].Len = int32(r.TryReadBits(32))
			states[i].Link = int32(r.TryReadBits(32)) - 1
			nbTrans := r.TryReadBits(9)
			states[i].Next = make(map[byte]int32, nbTrans)
			for j := uint64(0); j < nbTrans; j++ {
				c := byte(r.TryReadBits(8))
				states[i].Next[c] = int32(r.TryReadBits(32))
			}
		}
		if r.TryError != nil {
			return ErrInvalidData
		}
		m := suffixauto.New()
		m.Load(states, last)
		a.automata[name] = m
	}
	return nil
}

// A sieve splits into the bitset words (compressed as uint64) and the
// smallest-prime-factor table (widened to int64 for intcomp, where the
// near-sorted small values pack tightly).
func (a *Archive) sievesToBytes(names []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint64(len(names))); err != nil {
		return nil, err
	}
	for _, name := range names {
		limit, words, spf := a.sieves[name].Dump()
		if err := binary.Write(&buf, binary.LittleEndian, uint64(limit)); err != nil {
			return nil, err
		}
		if err := ioutils.CompressAndWriteUints64(&buf, words); err != nil {
			return nil, err
		}
		wide := utils.Map(spf, func(v int32) int64 { return int64(v) })
		if err := ioutils.CompressAndWriteInts64(&buf, wide); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (a *Archive) sievesFromBytes(in []byte, names []string) error {
	if len(in) < 8 {
		return ErrInvalidData
	}
	count := binary.LittleEndian.Uint64(in[:8])
	if int(count) != len(names) {
		return ErrInvalidData
	}
	in = in[8:]
	a.sieves = make(map[string]*sieve.Sieve, count)
	for _, name := range names {
		if len(in) < 8 {
			return ErrInvalidData
		}
		limit := int64(binary.LittleEndian.Uint64(in[:8]))
		in = in[8:]
		n, words, err := ioutils.ReadAndDecompressUints64(bytes.NewReader(in))
		if err != nil {
			return err
		}
		in = in[n:]
		n, wide, err := ioutils.ReadAndDecompressInts64(bytes.NewReader(in))
		if err != nil {
			return err
		}
		in = in[n:]
		spf := utils.Map(wide, func(v int64) int32 { return int32(v) })
		a.sieves[name] = sieve.LoadRaw(limit, words, spf)
	}
	return nil
}

func (a *Archive) bodyToBytes(treeNames, autoNames, sieveNames []string) ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(body{
		TreeNames:      treeNames,
		AutomatonNames: autoNames,
		Notes:          a.notes,
		SieveNames:     sieveNames,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTransitionBytes(next map[byte]int32) []byte {
	cs := make([]byte, 0, len(next))
	for c := range next {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs
}
