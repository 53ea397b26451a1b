package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kairoterm/kairo/internal/content"
	"github.com/kairoterm/kairo/internal/vfs"
	"go.uber.org/zap"
)

func (s *Session) ls() string {
	var sb strings.Builder
	for _, dir := range s.cwd.Subdirectories() {
		sb.WriteString(dir.Name())
		sb.WriteString("\n")
	}
	for _, f := range s.cwd.Files() {
		sb.WriteString(f.Name())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s *Session) cd(token string) string {
	dir, err := s.tree.Resolve(s.cwd, token)
	if err != nil {
		if errors.Is(err, vfs.ErrAlreadyAtRoot) {
			return "Already at root directory."
		}
		return "cd: " + err.Error()
	}
	s.cwd = dir
	return ""
}

func (s *Session) head(name string) string {
	f := s.cwd.File(name)
	if f == nil {
		return fmt.Sprintf("head: %s: No such file", name)
	}

	text, err := content.Decode(f.Content())
	if err != nil {
		s.log.Debug("head on non-text file", zap.String("file", name), zap.Error(err))
		return "head: cannot display content."
	}
	return content.Head(text, content.DefaultHeadLines)
}

func (s *Session) cp(source, destination string) string {
	f := s.cwd.File(source)
	if f == nil {
		return fmt.Sprintf("cp: %s: No such file", source)
	}

	data := make([]byte, len(f.Content()))
	copy(data, f.Content())
	s.cwd.AppendFile(vfs.NewFile(destination, data))
	return ""
}

func (s *Session) du() string {
	return fmt.Sprintf("Total size: %d bytes", vfs.Size(s.cwd))
}
