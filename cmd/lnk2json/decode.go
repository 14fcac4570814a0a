package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/jpare/shelllink/internal/logging"
	"github.com/jpare/shelllink/internal/reader"
	"github.com/jpare/shelllink/pkg/lnkjson"
	"github.com/jpare/shelllink/pkg/types"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file.lnk>",
		Short: "Decode a .lnk file and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
}

func runDecode(path string) error {
	cp, err := codePageByName(codepage)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	logging.Info("decoding", "path", path)

	dec := reader.Open(f, types.ReadOptions{DefaultCodePage: cp, Lenient: lenient})
	link, err := dec.Decode(context.Background())
	if err != nil {
		return err
	}

	out, err := lnkjson.Marshal(link, lnkjson.Options{PackedFlags: packedFlags, Indent: jsonIndent})
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

func codePageByName(name string) (encoding.Encoding, error) {
	switch name {
	case "", "windows-1252":
		return charmap.Windows1252, nil
	case "windows-1251":
		return charmap.Windows1251, nil
	case "ibm437", "cp437":
		return charmap.CodePage437, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unknown --codepage %q", name)
	}
}
