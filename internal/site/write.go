package site

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

const postsDir = "posts"

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fsError(err, "create directory", dir)
	}
	return nil
}

// writeFile writes data to rel under the output directory via a temp file and rename.
func (st *state) writeFile(rel string, data []byte) error {
	path := filepath.Join(st.outDir, rel)
	if err := mkdir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path))
	if err != nil {
		return fsError(err, "create temp file", path)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fsError(err, "write file", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fsError(err, "close file", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return fsError(err, "chmod file", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fsError(err, "rename file", path)
	}
	st.files = append(st.files, filepath.ToSlash(rel))
	return nil
}

func (st *state) writeJSON(rel string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return foundationerrors.InternalError("encode JSON").
			WithCause(err).
			WithContext("path", rel).
			Build()
	}
	return st.writeFile(rel, buf.Bytes())
}

func fsError(err error, op, path string) error {
	return foundationerrors.FileSystemError(op).
		WithCause(err).
		WithContext("path", path).
		Build()
}
