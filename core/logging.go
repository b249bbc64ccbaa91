package core

import (
	"log"
	"os"
	"path/filepath"
)

var InfoLogger = log.New(os.Stderr, "INFO\t", log.Ldate|log.Ltime)
var ErrorLogger = log.New(os.Stderr, "ERROR\t", log.Lshortfile|log.Ldate|log.Ltime)

const DefaultLogPath = "steamdboffline.log"

func InitLoggingWithDefaultPath() error {
	path, err := os.UserCacheDir()
	if err != nil {
		return err
	}

	return InitLoggingWithPath(filepath.Join(path, DefaultLogPath))
}

func InitLoggingWithPath(path string) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	InfoLogger = log.New(file, "INFO\t", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR\t", log.Lshortfile|log.Ldate|log.Ltime)
	log.SetOutput(file)
	return nil
}
