package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-datalog/encode"
	"github.com/signadot/go-datalog/format"
)

func testConfig() *MainConfig {
	return &MainConfig{ColorSet: true}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestLexReader(t *testing.T) {
	cfg := &LexConfig{MainConfig: testConfig()}
	buf := &bytes.Buffer{}
	if err := lexReader(cfg, buf, strings.NewReader("Queries:\n  a('x')?")); err != nil {
		t.Fatal(err)
	}
	want := `(QUERIES,"Queries",1)
(COLON,":",1)
(IDENT,"a",2)
(LEFT_PAREN,"(",2)
(STRING,"x",2)
(RIGHT_PAREN,")",2)
(QUESTION,"?",2)
(EOF,"",2)
Total Tokens = 8
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestDumpFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := os.Open(filepath.Join("testdata", "bad.dl"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := dumpReader(testConfig(), buf, f); err != nil {
		t.Fatal(err)
	}
	want := "Failure!\n  (UNDEFINED,\"1\",4)\n\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestQueryReader(t *testing.T) {
	for _, pipe := range []int{0, 4} {
		cfg := &QueryConfig{MainConfig: testConfig(), Parallel: 2}
		cfg.Pipe = pipe
		buf := &bytes.Buffer{}
		src := strings.NewReader(readFile(t, "closure.dl"))
		if err := queryReader(context.Background(), cfg, nil, buf, src); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(readFile(t, "closure.out"), buf.String()); diff != "" {
			t.Errorf("pipe %d (-want +got)\n%s", pipe, diff)
		}
	}
}

func TestQueryYAML(t *testing.T) {
	cfg := &QueryConfig{MainConfig: testConfig()}
	f := format.YAMLFormat
	cfg.OutFormat = &f
	buf := &bytes.Buffer{}
	src := strings.NewReader(readFile(t, "closure.dl"))
	if err := queryReader(context.Background(), cfg, nil, buf, src); err != nil {
		t.Fatal(err)
	}
	var docs []encode.AnswerDoc
	if err := yaml.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(docs))
	}
	if !docs[0].Yes || docs[0].Count != 3 || docs[2].Yes {
		t.Errorf("unexpected answers %+v", docs)
	}
}

func TestCheckReader(t *testing.T) {
	cfg := &CheckConfig{MainConfig: testConfig()}
	buf := &bytes.Buffer{}
	src := strings.NewReader(readFile(t, "closure.dl"))
	if err := checkReader(context.Background(), cfg, buf, src, readFile(t, "closure.out")); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if buf.String() != "ok\n" {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	src = strings.NewReader(readFile(t, "closure.dl"))
	err := checkReader(context.Background(), cfg, buf, src, "b(X,Y)? No\n")
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if !strings.Contains(buf.String(), "-b(X,Y)? No\n") || !strings.Contains(buf.String(), "+  X='1', Y='2'\n") {
		t.Errorf("unexpected diff\n%s", buf.String())
	}
}

func TestMissingSource(t *testing.T) {
	cfg := testConfig()
	buf := &bytes.Buffer{}
	files := []string{filepath.Join("testdata", "nope.dl"), filepath.Join("testdata", "bad.dl")}
	err := eachSource(buf, nil, files, func(w io.Writer, r io.Reader) error {
		return dumpReader(cfg, w, r)
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "File does not exist. File:\n" + files[0] + "\nFailure!\n  (UNDEFINED,\"1\",4)\n\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := &MainConfig{}
	if err := cfg.applyConfig([]byte("format: json\ncolor: false\npipe: 8\nparallel: 3\n")); err != nil {
		t.Fatal(err)
	}
	if cfg.format() != format.JSONFormat || cfg.Color || !cfg.ColorSet || cfg.Pipe != 8 || cfg.DefaultParallel != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if err := cfg.applyConfig([]byte("format: toml\n")); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
}
