package memory

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type target struct {
	ID   int64  `json:"id"`
	Key  string `json:"key"`
	Slug string `json:"slug"`
}

func setTargetID(t *target, id int64) { t.ID = id }

func targetKeys(t *target) UniqueKeys {
	return UniqueKeys{"key": t.Key, "slug": t.Slug}
}

func TestInsert(t *testing.T) {
	type testCase struct {
		name    string
		val     *target
		wantID  int64
		wantErr error
	}
	ms := NewMemStorage()
	tests := []testCase{
		{name: "default", val: &target{Key: "k1", Slug: "s1"}, wantID: 1},
		{name: "empty slug is not indexed", val: &target{Key: "k2"}, wantID: 2},
		{name: "second empty slug", val: &target{Key: "k3"}, wantID: 3},
		{name: "duplicate key", val: &target{Key: "k1", Slug: "s9"}, wantErr: ErrDuplicateKey},
		{name: "duplicate slug", val: &target{Key: "k9", Slug: "s1"}, wantErr: ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Insert[target](t.Context(), ms, tt.val, targetKeys(tt.val), setTargetID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("%s: Insert() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if id != tt.wantID {
				t.Errorf("%s: Insert() id = %d, want %d", tt.name, id, tt.wantID)
			}
			val, getErr := Get[target](t.Context(), id, ms)
			if getErr != nil {
				t.Fatal(getErr)
			}
			if *val != *tt.val {
				t.Errorf("%s: Get() = %+v, want %+v", tt.name, val, tt.val)
			}
		})
	}
	if ms.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ms.Len())
	}
}

func TestLookupAndDelete(t *testing.T) {
	ctx := t.Context()
	ms := NewMemStorage()
	v := &target{Key: "k1", Slug: "s1"}
	id, err := Insert[target](ctx, ms, v, targetKeys(v), setTargetID)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Lookup[target](ctx, "slug", "s1", ms)
	if err != nil || got.ID != id {
		t.Fatalf("Lookup() = %+v, %v", got, err)
	}

	deleted, err := Delete[target](ctx, id, ms)
	if err != nil || deleted.Key != "k1" {
		t.Fatalf("Delete() = %+v, %v", deleted, err)
	}

	if _, err = Lookup[target](ctx, "slug", "s1", ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() after delete error = %v, want ErrNotFound", err)
	}
	if _, err = Delete[target](ctx, id, ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("repeated Delete() error = %v, want ErrNotFound", err)
	}

	// после удаления значение индекса снова свободно, а идентификатор не переиспользуется
	v2 := &target{Key: "k1", Slug: "s1"}
	id2, err := Insert[target](ctx, ms, v2, targetKeys(v2), setTargetID)
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id+1 {
		t.Errorf("Insert() id = %d, want %d", id2, id+1)
	}
}

func TestGetAll_Ordered(t *testing.T) {
	ctx := t.Context()
	ms := NewMemStorage()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		v := &target{Key: k}
		if _, err := Insert[target](ctx, ms, v, targetKeys(v), setTargetID); err != nil {
			t.Fatal(err)
		}
	}
	all, err := GetAll[target](ctx, ms)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range all {
		if v.ID != int64(i+1) {
			t.Errorf("GetAll()[%d].ID = %d, want %d", i, v.ID, i+1)
		}
	}
}

func TestDumpRestore(t *testing.T) {
	ctx := t.Context()
	ms := NewMemStorage()
	for _, k := range []string{"a", "b", "c"} {
		v := &target{Key: k, Slug: "s" + k}
		if _, err := Insert[target](ctx, ms, v, targetKeys(v), setTargetID); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := Delete[target](ctx, 3, ms); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ms.Dump(&buf); err != nil {
		t.Fatal(err)
	}

	restored := NewMemStorage()
	if err := restored.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if restored.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", restored.Len())
	}
	if _, err := Lookup[target](ctx, "slug", "sb", restored); err != nil {
		t.Errorf("Lookup() after restore error = %v", err)
	}

	v := &target{Key: "a"}
	if _, err := Insert[target](ctx, restored, v, targetKeys(v), setTargetID); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Insert() duplicate after restore error = %v", err)
	}
	v = &target{Key: "z"}
	id, err := Insert[target](ctx, restored, v, targetKeys(v), setTargetID)
	if err != nil {
		t.Fatal(err)
	}
	if id != 4 {
		t.Errorf("Insert() id after restore = %d, want 4", id)
	}
}

func TestRestore_BadSnapshot(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{"},
		{name: "repeated id", raw: `{"seq":2,"records":[{"id":1,"keys":{},"data":{}},{"id":1,"keys":{},"data":{}}]}`},
		{
			name: "repeated key",
			raw:  `{"seq":2,"records":[{"id":1,"keys":{"slug":"x"},"data":{}},{"id":2,"keys":{"slug":"x"},"data":{}}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := NewMemStorage()
			v := &target{Key: "keep"}
			if _, err := Insert[target](t.Context(), ms, v, targetKeys(v), setTargetID); err != nil {
				t.Fatal(err)
			}
			if err := ms.Restore(bytes.NewBufferString(tt.raw)); !errors.Is(err, ErrBadSnapshot) {
				t.Errorf("Restore() error = %v, want ErrBadSnapshot", err)
			}
			if ms.Len() != 1 {
				t.Errorf("Len() = %d, bad snapshot must not replace data", ms.Len())
			}
		})
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ms := NewMemStorage()
	if _, err := GetAll[target](ctx, ms); !errors.Is(err, context.Canceled) {
		t.Errorf("GetAll() error = %v, want context.Canceled", err)
	}
}
