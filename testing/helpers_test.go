package testing

import (
	"errors"
	"testing"
)

func TestCountingCaser(t *testing.T) {
	c := NewCountingCaser()

	if got := c.Camel("user_name"); got != "UserName" {
		t.Errorf("Camel() = %q, want %q", got, "UserName")
	}
	if got := c.Snake("UserName"); got != "user_name" {
		t.Errorf("Snake() = %q, want %q", got, "user_name")
	}
	c.Camel("id")

	if c.CamelCalls() != 2 || c.SnakeCalls() != 1 || c.Calls() != 3 {
		t.Errorf("calls = camel %d snake %d total %d, want 2/1/3", c.CamelCalls(), c.SnakeCalls(), c.Calls())
	}
}

func TestPerson_Accessors(t *testing.T) {
	p := &Person{}
	p.SetAge(30)

	if p.GetAge() != 30 || !p.IsAdult() {
		t.Errorf("age accessors: GetAge() = %d, IsAdult() = %v", p.GetAge(), p.IsAdult())
	}
	if err := p.SetNickname(""); err == nil {
		t.Error("SetNickname(\"\") should return error")
	}
	if err := p.SetNickname("ally"); err != nil || p.Nickname() != "ally" {
		t.Errorf("SetNickname(ally) = %v, Nickname() = %q", err, p.Nickname())
	}
}

func TestProperties(t *testing.T) {
	p := NewProperties(map[string]any{"color": "red", "empty": nil})

	if !p.HasField("color") || p.Field("color") != "red" {
		t.Error("color should be set")
	}
	if p.HasField("empty") || p.HasField("missing") {
		t.Error("nil and missing values should be unset")
	}
	if err := p.SetField("_id", 1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("SetField(_id) error = %v, want ErrReadOnly", err)
	}
	if got := p.CallMethod("GetSize"); got != "GetSize()" {
		t.Errorf("CallMethod() = %v, want %q", got, "GetSize()")
	}
	if calls := p.Calls(); len(calls) != 1 || calls[0] != "GetSize" {
		t.Errorf("Calls() = %v", calls)
	}
}

func TestNode(t *testing.T) {
	n := NewNode("b", 1, "a", 2)
	n.Merge(map[string]any{"c": 3, "a": 4})

	if v, ok := n.Lookup("a"); !ok || v != 4 {
		t.Errorf("Lookup(a) = %v, %v", v, ok)
	}
	keys := n.Keys()
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys() = %v, want %v", keys, want)
		}
	}
}
