package compare

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// PebbleIndex is a disk-backed Index implementation over cockroachdb/pebble,
// used as bptreebench's LSM-family comparison target alongside the
// in-memory bptree.Tree.
type PebbleIndex struct {
	db *pebble.DB
}

// OpenPebbleIndex opens (creating if necessary) a pebble store rooted at dir.
func OpenPebbleIndex(dir string) (*PebbleIndex, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble store at %q", dir)
	}
	return &PebbleIndex{db: db}, nil
}

func encodeKey(key int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key)^(1<<63))
	return buf[:]
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

func (p *PebbleIndex) Insert(key int64, value []byte) error {
	return p.db.Set(encodeKey(key), value, pebble.NoSync)
}

func (p *PebbleIndex) Get(key int64) ([]byte, error) {
	v, closer, err := p.db.Get(encodeKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	out := append([]byte(nil), v...)
	return out, closer.Close()
}

func (p *PebbleIndex) Delete(key int64) error {
	return p.db.Delete(encodeKey(key), pebble.NoSync)
}

func (p *PebbleIndex) Range(start, end int64) (Iterator, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: encodeKey(start),
		UpperBound: encodeKey(end + 1),
	})
	if err != nil {
		return nil, err
	}
	return &pebbleIterator{iter: iter, started: false}, nil
}

func (p *PebbleIndex) Close() error {
	return p.db.Close()
}

type pebbleIterator struct {
	iter    *pebble.Iterator
	started bool
}

func (it *pebbleIterator) Next() bool {
	if !it.started {
		it.started = true
		return it.iter.First()
	}
	return it.iter.Next()
}

func (it *pebbleIterator) Key() int64      { return decodeKey(it.iter.Key()) }
func (it *pebbleIterator) Value() []byte   { return append([]byte(nil), it.iter.Value()...) }
func (it *pebbleIterator) Error() error    { return it.iter.Error() }
func (it *pebbleIterator) Close() error    { return it.iter.Close() }
