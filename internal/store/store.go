package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"pincab/internal/domain"
)

// Bucket names
var (
	bucketEmulators = []byte("emulators")
	bucketTables    = []byte("tables")
	bucketDetails   = []byte("details")
	bucketMedia     = []byte("media")
)

// CabinetStore caches backend reads in BoltDB so the table list survives
// restarts and backend outages. One database per backend base URL.
type CabinetStore struct {
	baseDir string // empty = memory-only mode

	mu    sync.RWMutex // Protects db handle and memory cache
	db    *bolt.DB
	cache map[string][]byte // hot-path reads, promoted on access
}

// NewCabinetStore opens (or creates) the cache database for a backend. An
// empty baseCacheDir selects memory-only mode with no persistence.
func NewCabinetStore(baseCacheDir, serverURL string) (*CabinetStore, error) {
	if baseCacheDir == "" {
		return &CabinetStore{cache: make(map[string][]byte)}, nil
	}

	db, err := openServerDB(baseCacheDir, serverURL)
	if err != nil {
		return nil, err
	}
	return &CabinetStore{baseDir: baseCacheDir, db: db, cache: make(map[string][]byte)}, nil
}

func openServerDB(baseDir, serverURL string) (*bolt.DB, error) {
	dir := baseDir
	if serverURL != "" {
		dir = filepath.Join(baseDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "pincab.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketEmulators, bucketTables, bucketDetails, bucketMedia} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Retarget points the store at a different backend's database. The memory
// cache is dropped either way; in memory-only mode that is all there is to do.
// Requests already in flight finish against the old database handle.
func (s *CabinetStore) Retarget(serverURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string][]byte)
	if s.baseDir == "" {
		return nil
	}

	db, err := openServerDB(s.baseDir, serverURL)
	if err != nil {
		return err
	}
	if s.db != nil {
		s.db.Close()
	}
	s.db = db
	return nil
}

// database returns the current handle; nil in memory-only mode.
func (s *CabinetStore) database() *bolt.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *CabinetStore) Close() error {
	if db := s.database(); db != nil {
		return db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CabinetStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	db := s.database()
	if db == nil {
		return false
	}

	var data []byte
	db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CabinetStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	db := s.database()
	if db == nil {
		return nil // Memory-only mode
	}

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *CabinetStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	db := s.database()
	if db == nil {
		return
	}

	db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Emulators ===

func (s *CabinetStore) GetEmulators() ([]domain.Emulator, bool) {
	var emus []domain.Emulator
	ok := s.get(bucketEmulators, "list", &emus)
	return emus, ok
}

func (s *CabinetStore) SaveEmulators(emus []domain.Emulator) error {
	return s.set(bucketEmulators, "list", emus)
}

// === Tables (keyed by emulator id) ===

func (s *CabinetStore) GetTables(emulatorID int) ([]domain.Table, bool) {
	var tables []domain.Table
	ok := s.get(bucketTables, "emu:"+strconv.Itoa(emulatorID), &tables)
	return tables, ok
}

func (s *CabinetStore) SaveTables(emulatorID int, tables []domain.Table) error {
	return s.set(bucketTables, "emu:"+strconv.Itoa(emulatorID), tables)
}

// === Table details ===

func (s *CabinetStore) GetDetails(gameID string) (*domain.TableDetails, bool) {
	var d domain.TableDetails
	if !s.get(bucketDetails, "game:"+gameID, &d) {
		return nil, false
	}
	return &d, true
}

func (s *CabinetStore) SaveDetails(gameID string, d *domain.TableDetails) error {
	return s.set(bucketDetails, "game:"+gameID, d)
}

// === Media indexes ===

func (s *CabinetStore) GetMediaIndex(gameID string) (*domain.MediaIndex, bool) {
	var idx domain.MediaIndex
	if !s.get(bucketMedia, "game:"+gameID, &idx) {
		return nil, false
	}
	return &idx, true
}

func (s *CabinetStore) SaveMediaIndex(gameID string, idx *domain.MediaIndex) error {
	return s.set(bucketMedia, "game:"+gameID, idx)
}

// === Invalidation ===

// InvalidateEmulator wipes the table list for one emulator. Details and media
// are keyed by game id and stay valid across emulator reloads.
func (s *CabinetStore) InvalidateEmulator(emulatorID int) {
	s.delete(bucketTables, "emu:"+strconv.Itoa(emulatorID))
}

// InvalidateGame wipes the cached detail record and media index for one game.
func (s *CabinetStore) InvalidateGame(gameID string) {
	s.delete(bucketDetails, "game:"+gameID)
	s.delete(bucketMedia, "game:"+gameID)
}

func (s *CabinetStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	db := s.database()
	if db == nil {
		return
	}

	db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketEmulators, bucketTables, bucketDetails, bucketMedia} {
			b := tx.Bucket(bucket)
			if b == nil {
				continue
			}
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
