package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/martinemde/turtle/turtleparser"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for the tree dump.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultIndent is the indentation width used when none is configured.
const DefaultIndent = 2

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatJSON}

// Lookup resolves a format name, case-insensitively.
func Lookup(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want yaml or json)", name)
}

// Write renders prog to w in the given format.
func Write(w io.Writer, prog *turtleparser.Program, format Format, indent int) error {
	switch format {
	case FormatYAML:
		return YAML(w, prog, indent)
	case FormatJSON:
		return JSON(w, prog, indent)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// YAML writes the uniform tree of prog as a YAML document, keeping the
// name key ahead of the payload key.
func YAML(w io.Writer, prog *turtleparser.Program, indent int) error {
	if indent <= 0 {
		indent = DefaultIndent
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(yamlNode(Tree(prog))); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func yamlNode(v any) *yaml.Node {
	switch v := v.(type) {
	case *Element:
		if v == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		return &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				strScalar("name"), strScalar(v.Name),
				strScalar(v.Key()), yamlNode(v.Items),
			},
		}
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if len(v) == 0 {
			seq.Style = yaml.FlowStyle
		}
		for _, item := range v {
			seq.Content = append(seq.Content, yamlNode(item))
		}
		return seq
	case string:
		return strScalar(v)
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func strScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// JSON writes the uniform tree of prog as JSON. Object keys keep the
// name-then-payload order.
func JSON(w io.Writer, prog *turtleparser.Program, indent int) error {
	var buf bytes.Buffer
	if err := writeJSON(&buf, Tree(prog)); err != nil {
		return err
	}

	out := buf.Bytes()
	if indent > 0 {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, out, "", strings.Repeat(" ", indent)); err != nil {
			return fmt.Errorf("indenting json: %w", err)
		}
		out = pretty.Bytes()
	}
	out = append(out, '\n')

	_, err := w.Write(out)
	return err
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case *Element:
		if v == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(`{"name":`)
		if err := writeJSON(buf, v.Name); err != nil {
			return err
		}
		fmt.Fprintf(buf, `,%q:`, v.Key())
		return writeJSONSeq(buf, v.Items, '}')
	case []any:
		return writeJSONSeq(buf, v, 0)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		buf.Write(b)
		return nil
	}
}

func writeJSONSeq(buf *bytes.Buffer, items []any, closer byte) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	if closer != 0 {
		buf.WriteByte(closer)
	}
	return nil
}

// Tokens writes one line per token: line number, kind and source text.
func Tokens(w io.Writer, tokens []turtleparser.Token) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tKIND\tLITERAL")
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", tok.Pos.Line, tok.Kind, tok.Literal)
	}
	return tw.Flush()
}
