package audio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore は音声をディレクトリに保存し、baseURL 配下の URL を返します。
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + name, nil
}

func (s *LocalStore) Delete(ctx context.Context, reference string) error {
	name, err := objectName(reference)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// objectName は参照 (URL やパス) の末尾からオブジェクト名を取り出します。
func objectName(reference string) (string, error) {
	name := path.Base(reference)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", fmt.Errorf("invalid audio reference: %q", reference)
	}
	return name, nil
}
