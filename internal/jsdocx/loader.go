// Package jsdocx adapts `jsdoc -X` output into a doclet store.
//
// The adapter is the only place that inspects raw syntax-node information. It
// reduces that information to a doclet.NodeHint plus a few plain fields so the
// resolution stages never look at parser-specific strings.
package jsdocx

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"git.home.luguber.info/inful/classydoc/internal/doclet"
	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/logfields"
	"git.home.luguber.info/inful/classydoc/internal/markdown"
)

var callableNode = regexp.MustCompile(`[Ff]unction`)

// Options controls how raw doclets are converted.
type Options struct {
	// Markdown renders description fields when set; otherwise they are kept verbatim.
	Markdown *markdown.Renderer
	Logger   *slog.Logger
}

// LoadFile decodes a doclet dump from path.
func LoadFile(path string, opts Options) (*doclet.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInput, "cannot open doclet input").
			Fatal().
			WithContext("path", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	store, err := Load(f, opts)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return nil, errors.WrapError(ce.Cause(), ce.Category(), ce.Message()).
				Fatal().
				WithContextMap(ce.Context()).
				WithContext("path", path).
				Build()
		}
		return nil, err
	}
	return store, nil
}

// LoadFiles decodes every dump in paths into one store, in path order.
func LoadFiles(paths []string, opts Options) (*doclet.Store, error) {
	if len(paths) == 0 {
		return nil, errors.ValidationError("no doclet input configured").Fatal().Build()
	}
	store := doclet.NewStore()
	for _, p := range paths {
		part, err := LoadFile(p, opts)
		if err != nil {
			return nil, err
		}
		for _, d := range part.All() {
			store.Add(d)
		}
	}
	return store, nil
}

// Load decodes a JSON array of doclets into a new store, preserving input order.
func Load(r io.Reader, opts Options) (*doclet.Store, error) {
	var raws []rawDoclet
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInput, "invalid doclet JSON").Build()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := doclet.NewStore()
	for i := range raws {
		d, err := convert(&raws[i], opts.Markdown)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryInput, "cannot render doclet description").
				WithContext("longname", raws[i].Longname).
				Build()
		}
		store.Add(d)
	}
	logger.Debug("Loaded doclets", logfields.Count(store.Len()))
	return store, nil
}

func convert(r *rawDoclet, md *markdown.Renderer) (*doclet.Doclet, error) {
	d := &doclet.Doclet{
		Name:             r.Name,
		Alias:            r.Alias,
		Longname:         r.Longname,
		MemberOf:         r.MemberOf,
		Kind:             doclet.Kind(r.Kind),
		Scope:            doclet.Scope(r.Scope),
		Access:           r.Access,
		Undocumented:     r.Undocumented,
		Ignore:           r.Ignore,
		Title:            deriveTitle(r),
		Summary:          r.Summary,
		Description:      r.Description,
		ClassDesc:        r.ClassDesc,
		Params:           convertParams(r.Params),
		Properties:       convertParams(r.Properties),
		Returns:          convertReturns(r.Returns),
		Yields:           convertReturns(r.Yields),
		Exceptions:       convertReturns(r.Exceptions),
		See:              r.See,
		Type:             convertTypes(r.Type),
		DefaultValue:     string(r.DefaultValue),
		DefaultValueType: r.DefaultValueType,
		Since:            r.Since,
		Version:          r.Version,
		Deprecated:       string(r.Deprecated),
		Virtual:          r.Virtual,
		Async:            r.Async,
		Generator:        r.Generator,
		Readonly:         r.Readonly,
		Optional:         r.Optional,
		Nullable:         r.Nullable,
		Augments:         r.Augments,
		Implements:       r.Implements,
		Overrides:        r.Overrides,
	}
	if untaggedClassDesc(r) {
		d.ClassDesc = ""
	}
	for _, ex := range r.Examples {
		d.Examples = append(d.Examples, doclet.Example{Code: ex})
	}
	if r.Meta != nil {
		d.Meta = convertMeta(r)
	}
	if md != nil {
		if err := renderDescriptions(d, md); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// deriveTitle returns an untagged class description, the explicit title, or the
// first description, in that order.
func deriveTitle(r *rawDoclet) string {
	switch {
	case untaggedClassDesc(r):
		return r.ClassDesc
	case r.Title != "":
		return r.Title
	default:
		return r.Description
	}
}

// untaggedClassDesc reports a class description that the comment never tagged
// explicitly. Such text is the record's title, not a constructor overview.
func untaggedClassDesc(r *rawDoclet) bool {
	return r.ClassDesc != "" && r.Comment != "" && !strings.Contains(r.Comment, "@classdesc ")
}

func convertMeta(r *rawDoclet) doclet.Meta {
	m := doclet.Meta{
		Path:     r.Meta.Path,
		Filename: r.Meta.Filename,
		Line:     r.Meta.Lineno,
		Column:   r.Meta.Columnno,
	}
	if len(r.Meta.Range) == 2 {
		m.Range = &[2]int{r.Meta.Range[0], r.Meta.Range[1]}
	}
	if c := r.Meta.Code; c != nil {
		value := string(c.Value)
		m.Code = doclet.Code{
			Name:      c.Name,
			Type:      c.Type,
			Value:     value,
			ValueKind: valueKind(value),
			Hint:      nodeHint(r, c),
			Callable:  callableNode.MatchString(c.Type),
		}
	}
	return m
}

func valueKind(value string) string {
	switch {
	case strings.HasPrefix(value, "["):
		return "array"
	case strings.HasPrefix(value, "{"):
		return "object"
	default:
		return ""
	}
}

// nodeHint classifies the syntax node. An explicit hint from the parser wins.
func nodeHint(r *rawDoclet, c *rawCode) doclet.NodeHint {
	switch c.Hint {
	case "constructor":
		return doclet.HintConstructor
	case "static":
		return doclet.HintStaticMember
	case "instance":
		return doclet.HintInstanceMember
	}

	isClassMember := c.Type == "MethodDefinition" || c.Type == "ClassProperty" ||
		c.Type == "PropertyDefinition" || c.Type == "ClassPrivateProperty"

	switch {
	case r.Kind == string(doclet.KindClass) && (c.Type == "MethodDefinition" || strings.HasSuffix(c.Name, "constructor")):
		return doclet.HintConstructor
	case isClassMember && (c.Static || r.Scope == string(doclet.ScopeStatic)):
		return doclet.HintStaticMember
	case isClassMember, strings.HasPrefix(c.Name, "this."):
		return doclet.HintInstanceMember
	case c.Type == "Property" || c.Type == "ObjectProperty":
		return doclet.HintStaticMember
	default:
		return doclet.HintOther
	}
}

func renderDescriptions(d *doclet.Doclet, md *markdown.Renderer) error {
	fields := []*string{&d.Description, &d.ClassDesc, &d.Summary}
	for i := range d.Params {
		fields = append(fields, &d.Params[i].Description)
	}
	for i := range d.Properties {
		fields = append(fields, &d.Properties[i].Description)
	}
	for _, list := range [][]doclet.Return{d.Returns, d.Yields, d.Exceptions} {
		for i := range list {
			fields = append(fields, &list[i].Description)
		}
	}
	for _, f := range fields {
		out, err := md.RenderString(*f)
		if err != nil {
			return err
		}
		*f = out
	}
	return nil
}

func convertTypes(t *rawTypes) *doclet.TypeNames {
	if t == nil {
		return nil
	}
	return &doclet.TypeNames{Names: t.Names}
}

func convertParams(in []rawParam) []doclet.Param {
	if len(in) == 0 {
		return nil
	}
	out := make([]doclet.Param, len(in))
	for i, p := range in {
		out[i] = doclet.Param{
			Name:         p.Name,
			Type:         convertTypes(p.Type),
			Description:  p.Description,
			Optional:     p.Optional,
			Nullable:     p.Nullable,
			Variable:     p.Variable,
			DefaultValue: string(p.DefaultValue),
		}
	}
	return out
}

func convertReturns(in []rawReturn) []doclet.Return {
	if len(in) == 0 {
		return nil
	}
	out := make([]doclet.Return, len(in))
	for i, r := range in {
		out[i] = doclet.Return{Type: convertTypes(r.Type), Description: r.Description, Nullable: r.Nullable}
	}
	return out
}
