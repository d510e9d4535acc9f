package memory

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// UniqueKeys значения уникальных индексов записи: имя индекса -> значение.
// Пустые значения не индексируются (аналог NULL в уникальном индексе SQL).
type UniqueKeys map[string]string

// MStorage хранилище записей в памяти. Записи хранятся в виде JSON и адресуются
// автоинкрементным идентификатором. Уникальные индексы проверяются под той же
// блокировкой, что и вставка, поэтому гонка проверки и вставки невозможна.
type MStorage struct {
	data    map[int64][]byte
	keys    map[int64]UniqueKeys
	indexes map[string]map[string]int64
	seq     int64
	m       sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data:    make(map[int64][]byte),
		keys:    make(map[int64]UniqueKeys),
		indexes: make(map[string]map[string]int64),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

// Insert сохраняет новую запись. Идентификатор выдает хранилище и передает его в setID
// до сериализации. Если значение любого уникального индекса уже занято, возвращается ErrDuplicateKey.
//
// Параметры:
//   - ctx: контекст выполнения
//   - m: хранилище
//   - val: сохраняемая запись
//   - keys: значения уникальных индексов записи
//   - setID: функция, проставляющая выданный идентификатор в запись
//
// Возвращает:
//   - int64: идентификатор новой записи
//   - error: ошибка сохранения
func Insert[T any](ctx context.Context, m *MStorage, val *T, keys UniqueKeys, setID func(*T, int64)) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	for idx, v := range keys {
		if v == "" {
			continue
		}
		if _, ok := m.indexes[idx][v]; ok {
			return 0, errors.Wrapf(ErrDuplicateKey, "index `%s` value `%s`", idx, v)
		}
	}

	id := m.seq + 1
	setID(val, id)

	bytes, err := json.Marshal(val)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.seq = id
	m.data[id] = bytes
	m.keys[id] = m.index(id, keys)
	return id, nil
}

// index регистрирует значения уникальных индексов. Вызывается под блокировкой на запись.
func (m *MStorage) index(id int64, keys UniqueKeys) UniqueKeys {
	stored := make(UniqueKeys, len(keys))
	for idx, v := range keys {
		if v == "" {
			continue
		}
		if m.indexes[idx] == nil {
			m.indexes[idx] = make(map[string]int64)
		}
		m.indexes[idx][v] = id
		stored[idx] = v
	}
	return stored
}

func Get[T any](ctx context.Context, id int64, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	return decode[T](m, id)
}

// Lookup находит запись по значению уникального индекса.
func Lookup[T any](ctx context.Context, index, value string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	id, ok := m.indexes[index][value]
	if !ok {
		return nil, ErrNotFound
	}
	return decode[T](m, id)
}

// GetAll возвращает все записи в порядке возрастания идентификатора.
func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	ids := make([]int64, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var result = make([]T, 0, len(ids))
	for _, id := range ids {
		var val T
		if err := json.Unmarshal(m.data[id], &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by id `%d`", id)
		}
		result = append(result, val)
	}
	return result, nil
}

// Delete удаляет запись вместе со значениями ее уникальных индексов и возвращает удаленную запись.
func Delete[T any](ctx context.Context, id int64, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	val, err := decode[T](m, id)
	if err != nil {
		return nil, err
	}

	for idx, v := range m.keys[id] {
		delete(m.indexes[idx], v)
	}
	delete(m.keys, id)
	delete(m.data, id)
	return val, nil
}

// decode вызывается под блокировкой.
func decode[T any](m *MStorage, id int64) (*T, error) {
	val, ok := m.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by id `%d`", id)
	}
	return &result, nil
}

type snapshotRecord struct {
	ID   int64           `json:"id"`
	Keys UniqueKeys      `json:"keys"`
	Data json.RawMessage `json:"data"`
}

type snapshot struct {
	Seq     int64            `json:"seq"`
	Records []snapshotRecord `json:"records"`
}

// Dump записывает содержимое хранилища в w.
func (m *MStorage) Dump(w io.Writer) error {
	m.m.RLock()
	defer m.m.RUnlock()

	snap := snapshot{Seq: m.seq, Records: make([]snapshotRecord, 0, len(m.data))}
	for id, data := range m.data {
		snap.Records = append(snap.Records, snapshotRecord{ID: id, Keys: m.keys[id], Data: data})
	}
	slices.SortFunc(snap.Records, func(a, b snapshotRecord) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	if err := json.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Restore заменяет содержимое хранилища данными из r.
func (m *MStorage) Restore(r io.Reader) error {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrBadSnapshot, err)
	}
	if err := snap.check(); err != nil {
		return err
	}

	m.m.Lock()
	defer m.m.Unlock()

	m.data = make(map[int64][]byte, len(snap.Records))
	m.keys = make(map[int64]UniqueKeys, len(snap.Records))
	m.indexes = make(map[string]map[string]int64)
	m.seq = snap.Seq

	for _, rec := range snap.Records {
		m.data[rec.ID] = rec.Data
		m.keys[rec.ID] = m.index(rec.ID, rec.Keys)
		if rec.ID > m.seq {
			m.seq = rec.ID
		}
	}
	return nil
}

// check проверяет, что идентификаторы и значения уникальных индексов в снимке не повторяются.
func (s *snapshot) check() error {
	ids := make(map[int64]struct{}, len(s.Records))
	seen := make(map[string]map[string]int64)
	for _, rec := range s.Records {
		if _, dup := ids[rec.ID]; dup {
			return fmt.Errorf("%w: id %d repeated", ErrBadSnapshot, rec.ID)
		}
		ids[rec.ID] = struct{}{}
		for idx, v := range rec.Keys {
			if v == "" {
				continue
			}
			if seen[idx] == nil {
				seen[idx] = make(map[string]int64)
			}
			if other, dup := seen[idx][v]; dup {
				return fmt.Errorf("%w: index `%s` value `%s` used by %d and %d", ErrBadSnapshot, idx, v, other, rec.ID)
			}
			seen[idx][v] = rec.ID
		}
	}
	return nil
}
