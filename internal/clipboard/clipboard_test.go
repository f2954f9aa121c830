package clipboard

import "testing"

func TestInternalRoundTrip(t *testing.T) {
	c := NewInternal()

	if got := c.Read(); got != "" {
		t.Errorf("Read() on empty clipboard = %q", got)
	}

	if err := c.Write("hello\nworld"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got := c.Read(); got != "hello\nworld" {
		t.Errorf("Read() = %q, want the written text", got)
	}
}

func TestWriteReplacesPrevious(t *testing.T) {
	c := NewInternal()

	if err := c.Write("first"); err != nil {
		t.Fatal(err)
	}
	if err := c.Write("second"); err != nil {
		t.Fatal(err)
	}
	if got := c.Read(); got != "second" {
		t.Errorf("Read() = %q, want second", got)
	}
}
