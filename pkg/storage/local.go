package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type localDisk struct {
	root    string
	baseURL string
}

func newLocalDisk(root, baseURL string) *localDisk {
	return &localDisk{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// fullPath joins under root and refuses traversal outside it.
func (d *localDisk) fullPath(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", errors.New("storage: empty path")
	}
	return filepath.Join(d.root, clean), nil
}

func (d *localDisk) Put(path string, r io.Reader) error {
	full, err := d.fullPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (d *localDisk) Get(path string) ([]byte, error) {
	full, err := d.fullPath(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

func (d *localDisk) Delete(path string) error {
	full, err := d.fullPath(path)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (d *localDisk) Exists(path string) (bool, error) {
	full, err := d.fullPath(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *localDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(path, "/")
}
