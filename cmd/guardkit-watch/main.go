// guardkit-watch re-validates a registration form snapshot every time its
// JSON file changes, printing the field errors and the strength meter. It is
// the keystroke-driven recompute loop expressed as a file watcher: point an
// editor at the file and watch the verdict update on save.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"github.com/phishguard/guardkit"
	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/report"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "form.json", "registration form JSON file to watch")
	renderer := flag.String("renderer", "text", "renderer to use for each pass")
	flag.Parse()

	target, err := filepath.Abs(*file)
	if err != nil {
		log.Fatalf("guardkit-watch: resolve %s: %v", *file, err)
	}

	engine, err := guardkit.New()
	if err != nil {
		log.Fatalf("guardkit-watch: %v", err)
	}

	ctx := context.Background()
	revalidate(ctx, engine, target, *renderer)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("guardkit-watch: create watcher: %v", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors commonly replace the file
	// on save, which drops a direct watch.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		log.Fatalf("guardkit-watch: watch %s: %v", filepath.Dir(target), err)
	}
	log.Printf("watching %s", target)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				revalidate(ctx, engine, target, *renderer)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("guardkit-watch: %v", err)
		}
	}
}

func revalidate(ctx context.Context, engine *guardkit.Engine, path, renderer string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("guardkit-watch: read %s: %v", path, err)
		return
	}

	var form forms.RegistrationForm
	if err := json.Unmarshal(data, &form); err != nil {
		log.Printf("guardkit-watch: parse %s: %v", path, err)
		return
	}

	errs := engine.ValidateRegistration(form)
	meter := engine.PasswordStrength(form.Password)

	out, err := engine.Renderers().RenderValidation(ctx, renderer, formmodel.RegistrationForm(), report.Options{
		Values: map[string]string{
			forms.FieldFullName:        form.FullName,
			forms.FieldEmail:           form.Email,
			forms.FieldPassword:        form.Password,
			forms.FieldConfirmPassword: form.ConfirmPassword,
			forms.FieldAgreeToTerms:    fmt.Sprintf("%t", form.AgreeToTerms),
			forms.FieldAgreeToPrivacy:  fmt.Sprintf("%t", form.AgreeToPrivacy),
		},
		Errors:   errs,
		Strength: &meter,
	})
	if err != nil {
		log.Printf("guardkit-watch: render: %v", err)
		return
	}
	fmt.Print(string(out))
}
