// Package shell interprets command lines against a session's view of the
// virtual filesystem.
package shell

import (
	"os"

	"github.com/google/uuid"
	"github.com/kairoterm/kairo/internal/audit"
	"github.com/kairoterm/kairo/internal/vfs"
	"go.uber.org/zap"
)

// Session holds the current directory cursor over a shared tree. A Session
// is meant for one caller at a time; several sessions may share one tree.
type Session struct {
	id       string
	tree     *vfs.Tree
	cwd      *vfs.Directory
	recorder audit.Recorder
	exit     func(code int)
	log      *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithExit replaces the process exit used by the exit command.
func WithExit(exit func(code int)) Option {
	return func(s *Session) { s.exit = exit }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession starts a session at the root of tree. Every executed line is
// handed to recorder.
func NewSession(tree *vfs.Tree, recorder audit.Recorder, opts ...Option) *Session {
	if recorder == nil {
		recorder = audit.Discard
	}
	s := &Session{
		id:       uuid.NewString(),
		tree:     tree,
		cwd:      tree.Root(),
		recorder: recorder,
		exit:     os.Exit,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Tree() *vfs.Tree { return s.tree }

// CurrentDirectory returns the directory commands currently operate on.
func (s *Session) CurrentDirectory() *vfs.Directory { return s.cwd }

// Execute records line and runs it. The result is plain text without an
// added trailing newline; failures are reported in the text, never as errors.
func (s *Session) Execute(line string) string {
	s.recorder.Record(line)

	cmd, ok := Parse(line)
	if !ok {
		return ""
	}

	s.log.Debug("executing command", zap.String("command", cmd.Name), zap.Int("args", len(cmd.Args)))

	switch cmd.Verb {
	case VerbLs:
		return s.ls()
	case VerbCd:
		return s.cd(cmd.Arg(0))
	case VerbExit:
		s.exit(0)
		return ""
	case VerbHead:
		return s.head(cmd.Arg(0))
	case VerbCp:
		if len(cmd.Args) < 2 {
			return "cp: missing file operand"
		}
		return s.cp(cmd.Arg(0), cmd.Arg(1))
	case VerbDu:
		return s.du()
	default:
		return cmd.Name + ": command not found"
	}
}
