package noteapp_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/noteapp"
	"github.com/aretw0/noteapp/pkg/core"
)

// Example_basic creates notes, removes one by position and reloads the store.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "noteapp-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "NoteApp.notes")
	svc, err := noteapp.New(path)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, title := range []string{"A", "B", "C"} {
		if _, err := svc.CreateNote(ctx, title, core.CategoryWork, ""); err != nil {
			log.Fatal(err)
		}
	}
	if err := svc.RemoveNote(ctx, 1); err != nil {
		log.Fatal(err)
	}

	reloaded, err := noteapp.New(path)
	if err != nil {
		log.Fatal(err)
	}
	for i, n := range reloaded.ListAll() {
		fmt.Printf("%d: %s (%s)\n", i, n.Title, n.Category)
	}
	// Output:
	// 0: A (Работа)
	// 1: C (Работа)
}
