package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"
	"unicode"

	qr "github.com/unixdj/qrtext"
	"github.com/unixdj/qrtext/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	opt    qr.Options     // decoder options
	ver    coding.Version // QR version
	binary bool           // binary input
	encode string         // segment mode for -e
}{}

// encodeModes lists the segment modes accepted by -e.
var encodeModes = []string{"num", "alnum", "byte", "latin1", "kanji"}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR bit stream decoder\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [data ...]
Data codewords are given as hex digits in arguments or standard input;
whitespace, "|", "_" and ":" are ignored.  The decoded text is written
to standard output.  With -e, the text is encoded as a single segment
and the codewords are written in hex.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrtext version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

// locale returns the locale of character classification from the
// environment.
func locale() string {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if s := os.Getenv(v); s != "" {
			return s
		}
	}
	return ""
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version", "ver")
	getopt.Flag(&g.opt.Strict, 's', "reject non-zero or excess bits "+
		"after the terminator")
	getopt.Flag(&g.opt.TruncatedTerminator, 't', "accept fewer than 4 "+
		"zero bits at the end as the terminator")
	sjis := getopt.Bool('j', "assume Shift JIS byte segments; "+
		"default is set from the locale")
	latin := getopt.Bool('J', "guess byte segment encoding "+
		"regardless of the locale")
	getopt.Flag(&g.opt.ByteEncoding, 'E', "byte segment character "+
		"encoding (IANA name); overrides -j", "name")
	getopt.Flag(&g.binary, 'x', "read binary codewords from "+
		"standard input")
	enc := getopt.Enum('e', encodeModes, "", "encode text in the "+
		"given segment mode: "+strings.Join(encodeModes, ", "), "mode")

	getopt.Parse()
	g.encode = *enc
	if *sjis && *latin {
		fmt.Fprintln(os.Stderr, "-j and -J are incompatible")
		usage()
	}
	if g.binary && (g.encode != "" || len(getopt.Args()) != 0) {
		fmt.Fprintln(os.Stderr, "-x reads standard input only")
		usage()
	}
	g.ver = coding.Version(*ver)
	g.opt.AssumeShiftJIS = *sjis ||
		!*latin && qr.LocaleAssumesShiftJIS(locale())
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var in []byte
	if args := getopt.Args(); len(args) != 0 {
		in = []byte(strings.Join(args, " "))
	} else {
		var err error
		if in, err = io.ReadAll(os.Stdin); err != nil {
			log.Fatalln(err)
		}
	}

	if g.encode != "" {
		s, _ := strings.CutSuffix(
			strings.ReplaceAll(string(in), "\r\n", "\n"), "\n")
		b, err := encode(s, g.encode, g.ver)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("% X\n", b)
		return
	}

	data := in
	if !g.binary {
		var err error
		if data, err = decodeHex(string(in)); err != nil {
			log.Fatalln(err)
		}
	}
	s, err := qr.Decode(data, g.ver, &g.opt)
	if err != nil {
		log.Fatalln(err)
	}
	if isatty.IsTerminal(uintptr(syscall.Stdout)) && !printable(s) {
		fmt.Printf("%q\n", s)
	} else {
		fmt.Println(s)
	}
}

// encode returns the codewords of s encoded as a single segment in
// the named mode followed by the terminator.
func encode(s, mode string, v coding.Version) ([]byte, error) {
	var seg coding.Segment
	var err error
	switch mode {
	case "num":
		seg = coding.Segment{Text: s, Mode: coding.Numeric}
	case "alnum":
		seg = coding.Segment{Text: s, Mode: coding.Alphanumeric}
	case "byte":
		seg = coding.Segment{Text: s, Mode: coding.Byte}
	case "latin1":
		seg, err = coding.Latin1Segment(s)
	case "kanji":
		seg, err = coding.KanjiSegment(s)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return nil, err
	}
	return coding.Encode(v, seg)
}

// decodeHex decodes hex digits, ignoring whitespace and separators.
func decodeHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '|' || r == '_' || r == ':' {
			return -1
		}
		return r
	}, s)
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits: %d",
			len(clean))
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}

// printable reports whether s consists of printable characters,
// newlines and tabs.
func printable(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsPrint(r) && r != '\n' && r != '\t'
	})
}
