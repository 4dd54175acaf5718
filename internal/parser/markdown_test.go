package parser

import (
	"reflect"
	"testing"
)

func TestListItems(t *testing.T) {
	source := []byte(`# Shopping

- alpha
- beta
  - nested
- gamma

Some prose that is not a list.

1. one
2. two
`)

	items, err := ListItems(source)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}

	want := []string{"alpha", "beta", "nested", "gamma", "one", "two"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %v, want %v", items, want)
	}
}

func TestListItemsNoLists(t *testing.T) {
	items, err := ListItems([]byte("just a paragraph\n\nand another\n"))
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if items != nil {
		t.Errorf("expected no items, got %v", items)
	}
}
