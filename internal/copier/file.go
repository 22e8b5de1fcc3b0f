package copier

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// copyFile copies src into destDir under the same name, truncating any
// existing file. The destination gets the source permission bits plus
// owner write.
func (c *Copier) copyFile(src, destDir string) error {
	dst := filepath.Join(destDir, filepath.Base(src))
	c.options.Reporter.CopyingFile(src, dst)

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copier: failed to open source file '%s': %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("copier: failed to stat source file '%s': %w", src, err)
	}
	perm := info.Mode().Perm() | 0o200

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("copier: failed to open destination file '%s': %w", dst, err)
	}
	defer out.Close()

	bufPtr := c.bufPool.Get().(*[]byte)
	defer c.bufPool.Put(bufPtr)

	written, err := io.CopyBuffer(out, in, *bufPtr)
	if err != nil {
		return fmt.Errorf("copier: failed to copy '%s' to '%s': %w", src, dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("copier: failed to close destination file '%s': %w", dst, err)
	}

	c.stats.FilesCopied.Add(1)
	c.stats.BytesCopied.Add(written)
	c.options.Logger.Debug("copier: copied %s (%d bytes)", dst, written)
	return nil
}
