package main

import (
	"math/rand"

	"github.com/kvindex/bptree/internal/compare"
)

// WorkloadType selects a mixed read/write/range distribution, mirroring
// the teacher's OLTP/OLAP/Reporting sweep.
type WorkloadType string

const (
	OLTP      WorkloadType = "OLTP (90/10)"
	OLAP      WorkloadType = "OLAP (10/90)"
	Reporting WorkloadType = "Reporting (Range)"
)

// ExecuteWorkload runs ops operations of the given mix against idx.
func ExecuteWorkload(idx compare.Index, wType WorkloadType, ops int) {
	for i := 0; i < ops; i++ {
		choice := rand.Intn(100)
		key := int64(rand.Intn(ops + 1))

		switch wType {
		case OLTP:
			if choice < 90 {
				_, _ = idx.Get(key)
			} else {
				_ = idx.Insert(key, []byte("x"))
			}
		case OLAP:
			if choice < 10 {
				_, _ = idx.Get(key)
			} else {
				_ = idx.Insert(key, []byte("x"))
			}
		case Reporting:
			it, err := idx.Range(key, key+100)
			if err == nil && it != nil {
				for it.Next() {
				}
				_ = it.Close()
			}
		}
	}
}
