// Package storage abstracts file storage behind named disks. Product images
// live on either the local filesystem or S3, selected by STORAGE_DISK.
package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/htoohtoo/storefront/config"
)

// Disk is one storage backend.
type Disk interface {
	Put(path string, r io.Reader) error
	Get(path string) ([]byte, error)
	Delete(path string) error
	Exists(path string) (bool, error)
	URL(path string) string
}

var (
	mu    sync.Mutex
	disks = map[string]Disk{}
)

// Default returns the disk named by STORAGE_DISK, building it on first use.
func Default() (Disk, error) {
	return Get(config.StorageDefault())
}

// Get returns a named disk ("local" or "s3"), building it on first use.
func Get(name string) (Disk, error) {
	mu.Lock()
	defer mu.Unlock()

	if d, ok := disks[name]; ok {
		return d, nil
	}

	var (
		d   Disk
		err error
	)
	switch name {
	case "local":
		d = newLocalDisk(config.StorageLocalRoot(), config.StorageURL())
	case "s3":
		d, err = newS3Disk()
	default:
		err = fmt.Errorf("storage: unknown disk %q", name)
	}
	if err != nil {
		return nil, err
	}

	disks[name] = d
	return d, nil
}
