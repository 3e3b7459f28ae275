// ABOUTME: Tests for the add and edit form
// ABOUTME: Verifies prefill, changed-value submission, field checks, and failure handling

package editform

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
)

var stockFields = []catalog.Field{
	{Key: "product", Label: "Product", Kind: catalog.KindRef, RefTo: "products", Required: true, CreateOnly: true},
	{Key: "size", Label: "Size", Kind: catalog.KindRef, RefTo: "sizes", Required: true, CreateOnly: true},
	{Key: "qty", Label: "Stock Quantity", Kind: catalog.KindInteger, Required: true},
}

var brandFields = []catalog.Field{
	{Key: "name", Label: "Name", Required: true},
	{Key: "slug", Label: "Slug"},
	{Key: "active", Label: "Active", Kind: catalog.KindFlag},
}

func sized(f *Form) *Form {
	f.Init()
	f.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return f
}

func TestNewShowsFields(t *testing.T) {
	options := map[string][]catalog.Option{
		"products": {{ID: "p1", Name: "Copa Mundial"}},
		"sizes":    {{ID: "z1", Name: "9 (UK)"}},
	}
	view := sized(New("stock", "", stockFields, nil, options)).View()

	for _, want := range []string{"Stock", "New entry", "Product *", "Size *", "Stock Quantity *", "Copa Mundial"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestEditLeavesOutFixedFields(t *testing.T) {
	f := sized(New("stock", "s1", stockFields, map[string]string{"product": "p1", "size": "z1", "qty": "3"}, nil))

	if len(f.fields) != 1 || f.fields[0].Key != "qty" {
		t.Fatalf("expected only the quantity field, got %v", f.fields)
	}
	if f.Value("qty") != "3" {
		t.Errorf("expected prefilled quantity, got %q", f.Value("qty"))
	}
	if !strings.Contains(f.View(), "Editing s1") {
		t.Error("expected the document id in the view")
	}
}

func TestSubmittedForNewDocument(t *testing.T) {
	f := New("brands", "", brandFields, nil, nil)
	*f.values["name"] = "  Puma "

	want := map[string]string{"name": "Puma", "active": "true"}
	if diff := cmp.Diff(want, f.Submitted()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmittedOnlyChangedFields(t *testing.T) {
	f := New("brands", "b1", brandFields, map[string]string{"name": "Adidas", "slug": "adidas", "active": "true"}, nil)
	*f.values["slug"] = ""
	*f.values["active"] = "false"

	want := map[string]string{"slug": "", "active": "false"}
	if diff := cmp.Diff(want, f.Submitted()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestChoicesKeepStoredReference(t *testing.T) {
	parent := catalog.Field{Key: "parent", Label: "Parent Category", Kind: catalog.KindRef, RefTo: "categories"}
	f := New("categories", "c2", []catalog.Field{parent}, map[string]string{"parent": "gone"},
		map[string][]catalog.Option{"categories": {{ID: "c1", Name: "Boots"}}})

	var got []string
	for _, o := range f.choices(parent) {
		got = append(got, o.Key+"="+o.Value)
	}
	want := []string{"None=", "Boots=c1", "gone=gone"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("choices mismatch (-want +got):\n%s", diff)
	}
	if f.Value("parent") != "gone" {
		t.Errorf("selection should stay on the stored reference, got %q", f.Value("parent"))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		field catalog.Field
		input string
		want  string
	}{
		{catalog.Field{Label: "Name", Required: true}, "  ", "Name is required"},
		{catalog.Field{Label: "Slug"}, "", ""},
		{catalog.Field{Label: "Price", Kind: catalog.KindNumber}, "12.5", ""},
		{catalog.Field{Label: "Price", Kind: catalog.KindNumber}, "cheap", "Price must be a number"},
		{catalog.Field{Label: "Sort Order", Kind: catalog.KindInteger}, "2.5", "Sort Order must be a whole number"},
		{catalog.Field{Label: "Sort Order", Kind: catalog.KindInteger}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.field.Label+"/"+tt.input, func(t *testing.T) {
			err := validate(tt.field)(tt.input)
			got := ""
			if err != nil {
				got = err.Error()
			}
			if got != tt.want {
				t.Errorf("validate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscCancels(t *testing.T) {
	f := New("brands", "", brandFields, nil, nil)
	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command on esc")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Error("expected CancelledMsg")
	}
}

func TestFailKeepsInputs(t *testing.T) {
	f := New("brands", "", brandFields, nil, nil)
	*f.values["name"] = "Adidas"
	f.busy = true

	f.Fail("Brand already exists")

	if f.Busy() {
		t.Error("expected form to accept input again")
	}
	if f.Value("name") != "Adidas" {
		t.Errorf("expected the name kept, got %q", f.Value("name"))
	}
	if f.Err() != "Brand already exists" {
		t.Errorf("unexpected error %q", f.Err())
	}
	if !strings.Contains(f.View(), "Brand already exists") {
		t.Error("expected failure in view")
	}
}
