package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-test/deep"
)

type testItem struct {
	key string
}

func (i *testItem) Key() string {
	return i.key
}

var (
	i1 = &testItem{
		key: "1",
	}
	i2 = &testItem{
		key: "2",
	}
	i3 = &testItem{
		key: "3",
	}
)

func TestAdd(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	if err := s.Add(i1); err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	if err := s.Add(i1); !errors.Is(err, ErrAlreadyExist) {
		t.Fatalf("supposed to fail with ErrAlreadyExist but got: %+v", err)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	s.Add(i2)
	s.Add(i3)

	if err := s.Remove(i2); err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	if err := s.Remove(i1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("supposed to fail with ErrNotFound but got: %+v", err)
	}
	if i := s.Get(i2.Key()); i != nil {
		t.Fatalf("item %s is not supposed to be found after removal", i2.key)
	}
}

func TestGet(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	s.Add(i1)
	s.Add(i3)

	i := s.Get(i1.Key())
	if i == nil {
		t.Fatalf("item %s supposed to be found", i1.key)
	}
	if !reflect.DeepEqual(i1, i.(*testItem)) {
		t.Fatalf("original item %s and recovered %s do not match", i1.key, i.(*testItem).Key())
	}
	if i := s.Get(i2.Key()); i != nil {
		t.Fatalf("item %s is not supposed to be found", i2.key)
	}
}

func TestList(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	s.Add(i3)
	s.Add(i1)
	s.Add(i2)

	l := s.List()
	keys := make([]string, len(l))
	for i, it := range l {
		keys[i] = it.Key()
	}
	if diff := deep.Equal(keys, []string{"1", "2", "3"}); diff != nil {
		t.Fatalf("store supposed to list 3 items ordered by key: %+v", diff)
	}
}
