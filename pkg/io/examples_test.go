package io

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/textlabel/pkg/label"
)

func TestImportExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example documents")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := Import(path)
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			if len(doc.Labels) == 0 {
				t.Fatal("document has no labels")
			}

			e := label.New(label.WithDefaults(doc.EngineDefaults()))
			for i, r := range doc.Requests() {
				if _, ok := e.Layout(r); !ok {
					t.Errorf("label %d (%s) produced nothing", i, doc.Labels[i].ID)
				}
			}
		})
	}
}
