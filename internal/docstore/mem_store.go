package docstore

import (
	"context"
	"sort"
	"sync"
)

var _ Store = (*MemStore)(nil)

// MemStore keeps documents in memory as encoded JSON, so values handed
// out by Get and List never alias the stored state.
type MemStore struct {
	mutex sync.RWMutex
	docs  map[string]memDoc
}

type memDoc struct {
	collection string
	id         string
	data       []byte
}

func NewMemStore() *MemStore {
	return &MemStore{
		docs: make(map[string]memDoc),
	}
}

func (m *MemStore) Get(_ context.Context, path string) (*Snapshot, error) {
	if _, _, err := splitDocPath(path); err != nil {
		return nil, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	doc, ok := m.docs[path]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc.snapshot(path), nil
}

func (m *MemStore) Set(_ context.Context, path string, doc any, opts SetOptions) error {
	collection, id, err := splitDocPath(path)
	if err != nil {
		return err
	}
	data, err := encodeObject(doc)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if existing, ok := m.docs[path]; ok && opts.Merge {
		data, err = mergeObjects(existing.data, data)
		if err != nil {
			return err
		}
	}

	m.docs[path] = memDoc{collection: collection, id: id, data: data}
	return nil
}

func (m *MemStore) Create(_ context.Context, path string, doc any) error {
	collection, id, err := splitDocPath(path)
	if err != nil {
		return err
	}
	data, err := encodeObject(doc)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.docs[path]; ok {
		return ErrDocumentExists
	}
	m.docs[path] = memDoc{collection: collection, id: id, data: data}
	return nil
}

func (m *MemStore) Update(_ context.Context, path string, fields map[string]any) error {
	if _, _, err := splitDocPath(path); err != nil {
		return err
	}
	partial, err := encodeObject(fields)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, ok := m.docs[path]
	if !ok {
		return ErrDocumentNotFound
	}
	merged, err := mergeObjects(existing.data, partial)
	if err != nil {
		return err
	}
	existing.data = merged
	m.docs[path] = existing
	return nil
}

func (m *MemStore) Delete(_ context.Context, path string) error {
	if _, _, err := splitDocPath(path); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.docs, path)
	return nil
}

func (m *MemStore) List(_ context.Context, collectionPath string, orderBy OrderBy) ([]Snapshot, error) {
	if err := validateCollectionPath(collectionPath); err != nil {
		return nil, err
	}

	m.mutex.RLock()
	snapshots := make([]Snapshot, 0)
	for path, doc := range m.docs {
		if doc.collection == collectionPath {
			snapshots = append(snapshots, *doc.snapshot(path))
		}
	}
	m.mutex.RUnlock()

	// map iteration is random, start from a stable order
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Path < snapshots[j].Path
	})
	SortSnapshots(snapshots, orderBy)
	return snapshots, nil
}

func (d memDoc) snapshot(path string) *Snapshot {
	data := make([]byte, len(d.data))
	copy(data, d.data)
	return &Snapshot{
		ID:   d.id,
		Path: path,
		Data: data,
	}
}
