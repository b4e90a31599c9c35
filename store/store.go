package store

import (
	"errors"

	"github.com/golang/glog"
	"github.com/sbezverk/msort/sort"
)

var (
	// ErrAlreadyExist error returns when Add attempts to add already existing item
	ErrAlreadyExist = errors.New("already exists")
	// ErrNotFound error returns when Get or Remove attempts to reach a non existing item
	ErrNotFound = errors.New("not found")
)

type storeOp uint8

const (
	addItem storeOp = iota + 1
	removeItem
	getItem
	listItems
)

// Storable is anything the store can keep, items are identified by their key
type Storable interface {
	Key() string
}

var _ Storable = &item{}

type item struct {
	key string
}

func (i *item) Key() string {
	return i.key
}

// Manager defines methods to access the store, all of them are safe for concurrent use
type Manager interface {
	Add(Storable) error
	Remove(Storable) error
	List() []Storable
	Get(string) Storable
	Stop()
}

var _ Manager = &itemStore{}

type mgrReply struct {
	item []Storable
	err  error
}

type storeCh struct {
	op      storeOp
	item    []Storable
	replyCh chan mgrReply
}

type itemStore struct {
	stopCh chan struct{}
	opCh   chan storeCh
}

func (s *itemStore) call(op storeOp, items ...Storable) mgrReply {
	repl := make(chan mgrReply)
	s.opCh <- storeCh{
		op:      op,
		item:    items,
		replyCh: repl,
	}

	return <-repl
}

func (s *itemStore) Add(i Storable) error {
	return s.call(addItem, i).err
}

func (s *itemStore) Remove(i Storable) error {
	return s.call(removeItem, i).err
}

func (s *itemStore) Get(key string) Storable {
	r := s.call(getItem, &item{key: key})
	if r.err != nil {
		return nil
	}

	return r.item[0]
}

// List returns all stored items ordered by key
func (s *itemStore) List() []Storable {
	return s.call(listItems).item
}

func (s *itemStore) Stop() {
	close(s.stopCh)
}

func byKey(a, b Storable) bool {
	return a.Key() < b.Key()
}

func (s *itemStore) manager() {
	items := make(map[string]Storable)
	for {
		select {
		case <-s.stopCh:
			glog.V(5).Infof("store manager stopped with %d items", len(items))
			return
		case msg := <-s.opCh:
			switch msg.op {
			case addItem:
				glog.V(6).Infof("Adding item: %s", msg.item[0].Key())
				if _, ok := items[msg.item[0].Key()]; ok {
					msg.replyCh <- mgrReply{err: ErrAlreadyExist}
					continue
				}
				items[msg.item[0].Key()] = msg.item[0]
				msg.replyCh <- mgrReply{}
			case removeItem:
				glog.V(6).Infof("Removing item: %s", msg.item[0].Key())
				if _, ok := items[msg.item[0].Key()]; !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				delete(items, msg.item[0].Key())
				msg.replyCh <- mgrReply{}
			case getItem:
				glog.V(6).Infof("Getting item: %s", msg.item[0].Key())
				it, ok := items[msg.item[0].Key()]
				if !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				msg.replyCh <- mgrReply{item: []Storable{it}}
			case listItems:
				l := make([]Storable, 0, len(items))
				for _, it := range items {
					l = append(l, it)
				}
				sort.Sort(l, byKey)
				msg.replyCh <- mgrReply{item: l}
			}
		}
	}
}

// NewStore returns a new instance of a store, any object which is compatible
// with the interface Storable, can be stored in the store.
func NewStore() Manager {
	s := &itemStore{
		stopCh: make(chan struct{}),
		opCh:   make(chan storeCh),
	}
	// Starting store manager
	go s.manager()

	return s
}
