package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"minicc/pkg/lexer"
)

type Config struct {
	// Emitters binds each operator token to the assembly-emission
	// callback attached to the binary-operation nodes it produces.
	Emitters map[Operator]EmitFunc
}

func (c *Config) Validate(logger *slog.Logger) error {
	for _, group := range precedenceGroups {
		for _, op := range group {
			if c.Emitters[op] == nil {
				return fmt.Errorf("no emitter bound for operator %q", op)
			}
		}
	}

	return nil
}

type Compiler struct {
	logger *slog.Logger
	Config Config

	files []file
}

type file struct {
	name string
	src  io.Reader
}

func New(logger *slog.Logger, config Config) (*Compiler, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate compiler config: %w", err)
	}

	return &Compiler{
		logger: logger,
		Config: config,
	}, nil
}

func (c *Compiler) AddFile(name string, src io.Reader) {
	c.files = append(c.files, file{name: name, src: src})
}

// Compile tokenizes every added file and compiles it line by line into one
// program. The first error aborts compilation; there is no recovery and no
// partial result.
func (c *Compiler) Compile(ctx context.Context) (*Program, error) {
	prog := newProgram()

	for _, f := range c.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := c.compileFile(f, prog)
		if err != nil {
			return nil, err
		}
	}

	return prog, nil
}

func (c *Compiler) compileFile(f file, prog *Program) error {
	lines, err := lexer.Tokenize(f.name, f.src)
	if err != nil {
		return wrapFileError(f.name, err)
	}

	c.logger.Debug("tokenized file", "file", f.name, "lines", len(lines))

	for _, line := range lines {
		stmt, err := c.compileLine(line, prog.root)
		if err != nil {
			return wrapFileError(f.name, err)
		}

		if stmt != nil {
			prog.statements = append(prog.statements, stmt)
		}
	}

	return nil
}

func wrapFileError(filename string, err error) error {
	var lineErr LineError
	if errors.As(err, &lineErr) {
		return err
	}

	return FileError{File: filename, Err: err}
}
