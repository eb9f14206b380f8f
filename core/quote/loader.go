package quote

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"windowprice/core/window"
	"windowprice/internal/errors"
	"windowprice/internal/logging"
)

// Request is a parsed quote file
type Request struct {
	// Name is the customer or job name
	Name string `json:"name"`

	// Windows are the quote lines in file order
	Windows []Line `json:"windows"`
}

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "retail"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "window", LabelNames: []string{"label"}},
	},
}

var windowSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "width"},
		{Name: "height"},
		{Name: "glass"},
		{Name: "upper_lites"},
		{Name: "lower_lites"},
		{Name: "sash_lites"},
		{Name: "quantity"},
		{Name: "retail"},
	},
}

// Load reads a quote file. Files ending in .json use HCL's JSON syntax;
// everything else is parsed as native HCL.
func Load(path string) (*Request, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("quote file", path)
		}
		return nil, errors.Wrap(errors.TypeInternal, "failed to read quote file", err)
	}
	return Parse(src, path)
}

// Parse parses quote file source. The filename selects the syntax and
// appears in error positions.
func Parse(src []byte, filename string) (*Request, error) {
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
		err   error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		file, diags = parser.ParseJSON(src, filename)
	case ".hcl", ".quote", "":
		file, diags = parser.ParseHCL(src, filename)
	default:
		return nil, errors.NotSupported("quote file extension " + filepath.Ext(filename))
	}
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	req := &Request{}
	defaultRetail := false

	if attr, ok := content.Attributes["name"]; ok {
		if req.Name, err = stringAttr(attr); err != nil {
			return nil, err
		}
	}
	if attr, ok := content.Attributes["retail"]; ok {
		if defaultRetail, err = boolAttr(attr); err != nil {
			return nil, err
		}
	}

	for _, block := range content.Blocks {
		line, err := decodeWindow(block, defaultRetail)
		if err != nil {
			return nil, err
		}
		req.Windows = append(req.Windows, line)
	}

	if len(req.Windows) == 0 {
		return nil, errors.Input("window", "quote file has no window blocks").WithContext("file", filename)
	}

	logging.With(zap.String("file", filename)).Debug("parsed quote file",
		zap.String("name", req.Name),
		zap.Int("windows", len(req.Windows)))

	return req, nil
}

func decodeWindow(block *hcl.Block, defaultRetail bool) (Line, error) {
	line := Line{Label: block.Labels[0]}

	content, diags := block.Body.Content(windowSchema)
	if diags.HasErrors() {
		return line, diagError(diags)
	}

	req := window.PriceRequest{IsRetail: defaultRetail}
	var err error

	for _, attr := range inSourceOrder(content.Attributes) {
		switch attr.Name {
		case "type":
			var s string
			if s, err = stringAttr(attr); err == nil {
				req.WindowType, err = window.ParseType(s)
			}
		case "glass":
			var s string
			if s, err = stringAttr(attr); err == nil {
				req.Glass, err = window.ParseGlass(s)
			}
		case "width":
			req.Width, err = numberAttr(attr)
		case "height":
			req.Height, err = numberAttr(attr)
		case "upper_lites":
			req.UpperLites, err = numberAttr(attr)
		case "lower_lites":
			req.LowerLites, err = numberAttr(attr)
		case "sash_lites":
			req.SashLites, err = numberAttr(attr)
		case "quantity":
			var n window.Number
			if n, err = numberAttr(attr); err == nil && n.Valid {
				line.Quantity = n.Value
			}
		case "retail":
			req.IsRetail, err = boolAttr(attr)
		}
		if err != nil {
			return line, positioned(err, attr.Range)
		}
	}

	line.Request = req.WithDefaults()
	return line, nil
}

// inSourceOrder lists attributes as they appear in the file, so the first
// bad attribute is the one reported
func inSourceOrder(attrs hcl.Attributes) []*hcl.Attribute {
	list := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		list = append(list, attr)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Range.Start.Byte < list[j].Range.Start.Byte
	})
	return list
}

// diagError converts the first error diagnostic into a parsing error
func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		e := errors.Parsing(diag.Summary, diags)
		if diag.Subject != nil {
			e.WithContext("file", diag.Subject.Filename).WithContext("line", diag.Subject.Start.Line)
		}
		return e
	}
	return errors.Parsing("invalid quote file", diags)
}

func positioned(err error, rng hcl.Range) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithContext("file", rng.Filename).WithContext("line", rng.Start.Line)
	}
	return errors.Parsing(rng.String(), err)
}
