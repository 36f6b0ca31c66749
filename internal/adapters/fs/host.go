package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilerHost = (*Host)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Host implements ports.CompilerHost over the OS filesystem.
type Host struct{}

// NewHost creates a new Host.
func NewHost() *Host {
	return &Host{}
}

// FileExists reports whether fileName names a regular file.
func (h *Host) FileExists(fileName string) bool {
	info, err := os.Stat(fileName)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the content of fileName with a leading BOM stripped.
func (h *Host) ReadFile(fileName string) (string, error) {
	data, err := os.ReadFile(fileName) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFileNotFound.Error()), "path", fileName)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", fileName)
	}
	if len(data) >= len(utf8BOM) && string(data[:len(utf8BOM)]) == string(utf8BOM) {
		data = data[len(utf8BOM):]
	}
	return string(data), nil
}

// GetSourceFile reads fileName and extracts its imports and resource references.
func (h *Host) GetSourceFile(fileName string, target domain.ScriptTarget) (*domain.SourceUnit, error) {
	text, err := h.ReadFile(fileName)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceLoadFailed.Error())
	}

	unit := &domain.SourceUnit{
		FileName: domain.NormalizePath(fileName),
		Text:     text,
		Target:   target,
		Digest:   xxhash.Sum64String(text),
		Imports:  ScanImports(text),
	}
	if !unit.IsDeclaration() {
		unit.Resources = ScanResources(text)
	}
	return unit, nil
}

// WriteFile writes data to fileName, creating parent directories as needed.
// Failures are reported through onError and returned.
func (h *Host) WriteFile(
	fileName string,
	data []byte,
	writeBOM bool,
	onError ports.WriteErrorFunc,
	_ []*domain.SourceUnit,
) error {
	if err := h.writeFile(fileName, data, writeBOM); err != nil {
		if onError != nil {
			onError(err.Error())
		}
		return err
	}
	return nil
}

func (h *Host) writeFile(fileName string, data []byte, writeBOM bool) error {
	if err := os.MkdirAll(filepath.Dir(fileName), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", fileName)
	}
	if writeBOM {
		data = append(append(make([]byte, 0, len(utf8BOM)+len(data)), utf8BOM...), data...)
	}
	if err := os.WriteFile(fileName, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", fileName)
	}
	return nil
}
