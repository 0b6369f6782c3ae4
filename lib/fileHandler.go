package lib

import (
	"os"
	"path"
)

// UploadFile streams the file at srcPath to the service as raw bytes. Use
// Client.AddFile instead when the service can read the path itself.
func UploadFile(c *Client, srcPath string) (*AddFileResult, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return c.AddFileData(src)
}

// WriteFile writes fetched file or thumbnail bytes to dstPath, creating the
// parent directory if needed.
func WriteFile(dstPath string, data []byte) error {
	if err := os.MkdirAll(path.Dir(dstPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(dstPath, data, 0644)
}
