package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	p := mustParse(t, closure)
	a := New(p).Evaluate(p.Queries[0])
	for _, ft := range []struct {
		src  string
		want []string
	}{
		{src: `X == "1"`, want: []string{"X='1', Y='2'", "X='1', Y='3'"}},
		{src: `X == "1" && Y != "2"`, want: []string{"X='1', Y='3'"}},
		{src: `num(Y) - num(X) > 1`, want: []string{"X='1', Y='3'"}},
		{src: `W == nil`, want: []string{"X='1', Y='2'", "X='1', Y='3'", "X='2', Y='3'"}},
		{src: `Y in ["9"]`, want: []string{}},
	} {
		f, err := CompileFilter(ft.src)
		if err != nil {
			t.Fatalf("%s: %v", ft.src, err)
		}
		fa, err := a.Filter(f)
		if err != nil {
			t.Fatalf("%s: %v", ft.src, err)
		}
		got := []string{}
		for _, b := range fa.Bindings {
			got = append(got, b.String())
		}
		if diff := cmp.Diff(ft.want, got); diff != "" {
			t.Errorf("%s (-want +got)\n%s", f, diff)
		}
	}
	if _, err := CompileFilter(`X ==`); err == nil {
		t.Error("expected compile error")
	}
}
