package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/boltdb/bolt"

	"github.com/screenlog/ratemap/ratings"
)

// aggregateCache persists aggregated ratings keyed by the checksum of the
// export they came from, so re-running over a large unchanged export
// skips the parse and aggregation passes.
type aggregateCache struct {
	filename string
}

func exportChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (ac *aggregateCache) put(checksum string, byDate map[ratings.Date]*ratings.DayAggregate) error {
	db, err := bolt.Open(ac.filename, 0600, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Update(func(tx *bolt.Tx) error {
		value, err := json.Marshal(byDate)
		if err != nil {
			return err
		}

		b, err := tx.CreateBucketIfNotExists([]byte("aggregates"))
		if err != nil {
			return err
		}

		return b.Put([]byte(checksum), value)
	}); err != nil {
		return err
	}
	return nil
}

func (ac *aggregateCache) get(checksum string) (map[ratings.Date]*ratings.DayAggregate, error) {
	db, err := bolt.Open(ac.filename, 0600, nil)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var byDate map[ratings.Date]*ratings.DayAggregate
	if err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("aggregates"))
		if b != nil {
			data := b.Get([]byte(checksum))
			if data != nil {
				if err := json.Unmarshal(data, &byDate); err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return byDate, nil
}
