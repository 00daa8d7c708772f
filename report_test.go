package moneta

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	produce := func() (any, error) {
		return map[string]int{"total": 42}, nil
	}
	if err := WriteReport(path, produce); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"total\": 42\n}\n"
	if string(content) != want {
		t.Errorf("got %q, want %q", content, want)
	}
}

func TestWriteReportProducerError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	boom := errors.New("boom")
	err := WriteReport(path, func() (any, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want the producer error wrapped", err)
	}
}

func TestEncodeReportKeepsNonASCII(t *testing.T) {
	var sb strings.Builder
	produce := func() (any, error) {
		return map[string]string{"greeting": "Добрый день & всем привет"}, nil
	}
	if err := EncodeReport(&sb, produce); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "Добрый день & всем привет") {
		t.Errorf("output escapes text it should not: %q", out)
	}
}
