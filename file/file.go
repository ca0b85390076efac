package file

import (
	"io"
	"os"
)

type File struct {
	file *os.File
}

func New(path string, flag int) (*File, error) {
	file, err := os.OpenFile(path, flag, os.FileMode(0766))
	if err != nil {
		return nil, err
	}
	return &File{file: file}, nil
}

func (f *File) Name() string {
	return f.file.Name()
}

func (f *File) Write(bytes []byte) (int, error) {
	return f.file.Write(bytes)
}

func (f *File) Read(bytes []byte) (int, error) {
	return f.file.Read(bytes)
}

func (f *File) ReadAll() ([]byte, error) {
	return io.ReadAll(f.file)
}

func (f *File) Sync() error {
	return f.file.Sync()
}

func (f *File) Close() error {
	return f.file.Close()
}

func (f *File) Size() int64 {
	info, err := f.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// ReadAll opens path read-only and returns its whole content.
func ReadAll(path string) ([]byte, error) {
	f, err := New(path, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadAll()
}
