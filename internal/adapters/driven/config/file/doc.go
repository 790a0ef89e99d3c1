// Package file provides file-based implementations of driven port interfaces.
// Everything lives under one directory, ~/.lexonarrative by default.
//
// Adapters:
//   - ConfigStore: config.toml, nested tables flattened to dot-notation keys
//   - VocabularyStore: vocabulary.toml or vocabulary.yaml overrides of the wording tables
//   - TemplateStore: templates/<type>.txt, seeded from the embedded defaults
//   - Watcher: fsnotify-based change notification for the files above
package file
