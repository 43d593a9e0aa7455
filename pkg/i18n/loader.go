package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir loads translations from JSON files laid out as {lang}/{namespace}.json.
func WithJSONDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, []string{".json"}, json.Unmarshal)
	}
}

// WithYAMLDir loads translations from YAML files laid out as
// {lang}/{namespace}.yaml (or .yml).
//
//	zh-CN/timefmt.yaml
//	en/timefmt.yaml
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, []string{".yaml", ".yml"}, yaml.Unmarshal)
	}
}

func loadDir(i *I18n, fsys fs.FS, exts []string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExt(filePath, exts) {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := Canonical(path.Base(dir))
		if lang == "" {
			return fmt.Errorf("%w: directory %q is not a language tag", ErrInvalidFile, dir)
		}
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		i.addTranslations(lang, namespace, translations)
		return nil
	})
}

func hasExt(filePath string, exts []string) bool {
	ext := strings.ToLower(path.Ext(filePath))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
