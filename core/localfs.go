package core

import (
	"io/fs"
	"os"
)

// LocalFs abstracts the filesystem reads a scan performs, so that failure
// modes (unreadable folders, vanished files) can be injected in tests.
type LocalFs interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
}

type DefaultLocalFs struct {
}

var defaultFs *DefaultLocalFs

func GetDefaultLocalFs() *DefaultLocalFs {
	if defaultFs == nil {
		defaultFs = &DefaultLocalFs{}
	}

	return defaultFs
}

func (d *DefaultLocalFs) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (d *DefaultLocalFs) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (d *DefaultLocalFs) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
