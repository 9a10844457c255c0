package enginehost

import (
	"bytes"
	"reflect"
	"testing"
)

func TestFormatStats_KeyListOrder(t *testing.T) {
	info := Info{
		"score": "cp 35",
		"depth": 20,
		"nodes": 5400000,
		"nps":   1200000,
	}
	want := []string{"depth: 20", "nps: 1200000", "nodes: 5400000", "score: cp 35"}
	got := FormatStats(info, []string{"depth", "nps", "nodes", "score"})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatStats() = %v, want %v", got, want)
	}
}

func TestFormatStats_OmitsAbsentKeys(t *testing.T) {
	info := Info{"depth": 7}
	want := []string{"depth: 7"}
	got := FormatStats(info, []string{"depth", "nps", "nodes", "score"})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatStats() = %v, want %v", got, want)
	}
}

func TestFormatStats_NilInfo(t *testing.T) {
	if got := FormatStats(nil, []string{"depth"}); len(got) != 0 {
		t.Fatalf("FormatStats(nil) = %v, want empty", got)
	}
}

func TestFormatStats_ValueRendering(t *testing.T) {
	info := Info{"score": "mate 3", "nps": int64(987654321)}
	want := []string{"nps: 987654321", "score: mate 3"}
	got := FormatStats(info, []string{"nps", "score"})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatStats() = %v, want %v", got, want)
	}
}

func TestWriteStats_Indented(t *testing.T) {
	info := Info{"depth": 12, "score": "cp -8"}
	var buf bytes.Buffer
	WriteStats(&buf, info, []string{"depth", "score"})

	want := "    depth: 12\n    score: cp -8\n"
	if buf.String() != want {
		t.Fatalf("WriteStats() = %q, want %q", buf.String(), want)
	}
}

func TestWriteStats_NothingToWrite(t *testing.T) {
	var buf bytes.Buffer
	WriteStats(&buf, nil, []string{"depth", "score"})
	if buf.Len() != 0 {
		t.Fatalf("WriteStats(nil info) wrote %q, want nothing", buf.String())
	}
}
