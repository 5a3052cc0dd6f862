package config

import "testing"

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject().
		Set("entry", String("./src/index.js")).
		Set("mode", String("production")).
		Set("devtool", String("source-map"))

	want := []string{"entry", "mode", "devtool"}
	keys := obj.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Keys() length = %d; want %d", len(keys), len(want))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q; want %q", i, keys[i], k)
		}
	}
}

func TestObjectSetReplacesInPlace(t *testing.T) {
	obj := NewObject().
		Set("a", Number(1)).
		Set("b", Number(2)).
		Set("a", Number(3))

	if obj.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", obj.Len())
	}
	if obj.Keys()[0] != "a" {
		t.Errorf("replaced key should keep its position, got %q first", obj.Keys()[0])
	}
	v, ok := obj.Get("a")
	if !ok {
		t.Fatal("Get(a) should succeed")
	}
	if v.Num != 3 {
		t.Errorf("Get(a).Num = %v; want 3", v.Num)
	}
}

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"scalar", String("x"), KindScalar},
		{"bool", Bool(true), KindBool},
		{"number", Number(8080), KindNumber},
		{"ident", Ident("outputPath"), KindIdent},
		{"null", Null(), KindNull},
		{"pattern", Pattern(`\.css$`, "i"), KindPattern},
		{"sequence", Sequence(String("a")), KindSequence},
		{"mapping", Mapping(NewObject()), KindMapping},
	}
	for _, tt := range tests {
		if tt.v.Kind != tt.kind {
			t.Errorf("%s: Kind = %v; want %v", tt.name, tt.v.Kind, tt.kind)
		}
	}
}

func TestJSFragment(t *testing.T) {
	v, err := JS(`path.join(__dirname, "dist")`)
	if err != nil {
		t.Fatalf("JS() failed: %v", err)
	}
	if v.Kind != KindFragment {
		t.Errorf("Kind = %v; want KindFragment", v.Kind)
	}
	if v.Frag == nil {
		t.Error("Frag should not be nil")
	}

	if _, err := JS("not a { valid } fragment ]["); err == nil {
		t.Error("JS() should fail on unparseable source")
	}
}

func TestIsInjectKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"inject", true},
		{"injectClient", true},
		{"xinjecty", true},
		{"entry", false},
		{"Inject", false},
	}
	for _, tt := range tests {
		if got := IsInjectKey(tt.key); got != tt.want {
			t.Errorf("IsInjectKey(%q) = %v; want %v", tt.key, got, tt.want)
		}
	}
}
