package jsonstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaSource string

const schemaURL = "tada://schema.json"

// Problem is a single schema violation in a data file.
type Problem struct {
	Location string // JSON pointer into the document, "" for the root
	Message  string
}

func (p Problem) String() string {
	loc := p.Location
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + p.Message
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Check validates the file at path against the data file schema.
// A missing file has no problems. Syntax errors are reported as a single
// root problem rather than an error.
func Check(path string) ([]Problem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return CheckBytes(b)
}

// CheckBytes validates raw JSON against the data file schema.
func CheckBytes(b []byte) ([]Problem, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(bytes.TrimPrefix(b, utf8BOM), &doc); err != nil {
		return []Problem{{Message: "invalid JSON: " + err.Error()}}, nil
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("validate: %w", err)
		}
		var problems []Problem
		collectProblems(ve, &problems)
		sort.SliceStable(problems, func(i, j int) bool {
			return problems[i].Location < problems[j].Location
		})
		return problems, nil
	}
	return nil, nil
}

// collectProblems flattens the validation tree into its leaf causes.
func collectProblems(ve *jsonschema.ValidationError, out *[]Problem) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Problem{Location: ve.InstanceLocation, Message: ve.Message})
		return
	}
	for _, c := range ve.Causes {
		collectProblems(c, out)
	}
}
