package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"minicc/pkg/asm"
	"minicc/pkg/compiler"
	"minicc/pkg/lexer"
)

const sourceExt = ".mc"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "minicc",
		Usage: "The minicc compiler",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Compile minicc source code into assembly",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write assembly to this file instead of stdout",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() == 0 {
						return fmt.Errorf("minicc: fatal error: no input files")
					}

					logger := slog.Default()

					gen := asm.NewGenerator()

					comp, err := compiler.New(logger, compiler.Config{
						Emitters: gen.Emitters(),
					})
					if err != nil {
						return fmt.Errorf("failed to initialize compiler: %w", err)
					}

					err = addSourceFiles(comp, c.Args().Slice())
					if err != nil {
						return err
					}

					prog, err := comp.Compile(ctx)
					if err != nil {
						fmt.Fprintf(os.Stderr, "%v\n", err)
						os.Exit(1)
					}

					err = gen.EmitProgram(prog)
					if err != nil {
						return err
					}

					out := io.Writer(os.Stdout)
					if name := c.String("output"); name != "" {
						f, err := os.Create(name)
						if err != nil {
							return err
						}
						defer f.Close()

						out = f
					}

					_, err = gen.WriteTo(out)
					return err
				},
			},
			{
				Name:  "tokens",
				Usage: "Tokenize minicc source code and print the token stream",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() == 0 {
						return fmt.Errorf("minicc: fatal error: no input files")
					}

					for _, path := range c.Args().Slice() {
						f, err := openSourceFile(path)
						if err != nil {
							return err
						}

						lines, err := lexer.Tokenize(path, f)
						f.Close()
						if err != nil {
							return err
						}

						for _, line := range lines {
							fmt.Printf("%s: %s\n", line.Position(), strings.Join(line.Tokens, " "))
						}
					}

					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func addSourceFiles(comp *compiler.Compiler, paths []string) error {
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}

		if stat.IsDir() {
			files, err := filepath.Glob(filepath.Join(path, "*"+sourceExt))
			if err != nil {
				return fmt.Errorf("failed to find %s files in directory: %w", sourceExt, err)
			}

			for _, file := range files {
				f, err := openSourceFile(file)
				if err != nil {
					return err
				}

				comp.AddFile(file, f)
			}
		} else {
			f, err := openSourceFile(path)
			if err != nil {
				return err
			}

			comp.AddFile(path, f)
		}
	}

	return nil
}

func openSourceFile(name string) (*os.File, error) {
	if filepath.Ext(name) != sourceExt {
		return nil, fmt.Errorf("invalid file: %s", name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}

	return f, nil
}
