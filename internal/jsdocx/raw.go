package jsdocx

import (
	"strings"

	"github.com/goccy/go-json"
)

// rawDoclet mirrors one entry of `jsdoc -X` output.
type rawDoclet struct {
	Comment          string      `json:"comment"`
	Name             string      `json:"name"`
	Alias            string      `json:"alias"`
	Longname         string      `json:"longname"`
	MemberOf         string      `json:"memberof"`
	Kind             string      `json:"kind"`
	Scope            string      `json:"scope"`
	Access           string      `json:"access"`
	Undocumented     bool        `json:"undocumented"`
	Ignore           bool        `json:"ignore"`
	Title            string      `json:"title"`
	Summary          string      `json:"summary"`
	Description      string      `json:"description"`
	ClassDesc        string      `json:"classdesc"`
	Params           []rawParam  `json:"params"`
	Properties       []rawParam  `json:"properties"`
	Returns          []rawReturn `json:"returns"`
	Yields           []rawReturn `json:"yields"`
	Exceptions       []rawReturn `json:"exceptions"`
	Examples         []string    `json:"examples"`
	See              []string    `json:"see"`
	Type             *rawTypes   `json:"type"`
	DefaultValue     literal     `json:"defaultvalue"`
	DefaultValueType string      `json:"defaultvaluetype"`
	Since            string      `json:"since"`
	Version          string      `json:"version"`
	Deprecated       literal     `json:"deprecated"`
	Virtual          bool        `json:"virtual"`
	Async            bool        `json:"async"`
	Generator        bool        `json:"generator"`
	Readonly         bool        `json:"readonly"`
	Optional         bool        `json:"optional"`
	Nullable         *bool       `json:"nullable"`
	Augments         names       `json:"augments"`
	Implements       names       `json:"implements"`
	Overrides        names       `json:"overrides"`
	Meta             *rawMeta    `json:"meta"`
}

type rawTypes struct {
	Names []string `json:"names"`
}

type rawParam struct {
	Name         string    `json:"name"`
	Type         *rawTypes `json:"type"`
	Description  string    `json:"description"`
	Optional     bool      `json:"optional"`
	Nullable     *bool     `json:"nullable"`
	Variable     bool      `json:"variable"`
	DefaultValue literal   `json:"defaultvalue"`
}

type rawReturn struct {
	Type        *rawTypes `json:"type"`
	Description string    `json:"description"`
	Nullable    *bool     `json:"nullable"`
}

type rawMeta struct {
	Path     string   `json:"path"`
	Filename string   `json:"filename"`
	Lineno   int      `json:"lineno"`
	Columnno int      `json:"columnno"`
	Range    []int    `json:"range"`
	Code     *rawCode `json:"code"`
}

type rawCode struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value literal `json:"value"`
	// Hint and Static are optional adapter extensions that override inference.
	Hint   string `json:"hint"`
	Static bool   `json:"static"`
}

// literal accepts any JSON scalar and keeps its source text. Strings are unquoted;
// false and null read as empty.
type literal string

func (l *literal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null" || s == "false":
		*l = ""
	case s == "true":
		*l = "true"
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*l = literal(str)
	default:
		*l = literal(s)
	}
	return nil
}

// names accepts a single longname or a list of them.
type names []string

func (n *names) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*n = list
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*n = []string{one}
	return nil
}
