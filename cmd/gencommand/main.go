/*
NAME
  gencommand

DESCRIPTION
  gencommand reads the variant metadata in internal/gen and emits each
  command category's zz_generated.go: the parameter constants, the Decode
  dispatch switch, and one decode function per variant — type check,
  payload decode, bounds check, operation decode, variant construction.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command gencommand is a build-step code generator: it consumes the
// per-variant metadata table in internal/gen/metadata.go and produces the
// command/<package>/zz_generated.go file for each category. A handful of
// variants carry dispatch semantics the generic type-check/decode/
// bounds/operation shape can't express (Video's NDFilterStop, gated on the
// ignore-nd-filter option); metadata.go supplies their case body and
// decode function as literal source for gencommand to copy through
// unchanged, so they still end up in the generated file rather than
// pulled out into a hand-maintained one.
//
// Run from the module root:
//
//	go run ./cmd/gencommand
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/ausocean/utils/logging"
	"github.com/ekshore/eldritchwire/internal/gen"
)

var outDir = flag.String("out", "command", "root directory containing one subdirectory per category package")

func wireDecodeFunc(t gen.FieldType) string {
	switch t {
	case gen.Bool:
		return "wire.DecodeBool"
	case gen.Int8:
		return "wire.DecodeInt8"
	case gen.Int16:
		return "wire.DecodeInt16"
	case gen.Int32:
		return "wire.DecodeInt32"
	case gen.Int64:
		return "wire.DecodeInt64"
	case gen.String:
		return "wire.DecodeString"
	case gen.FPD:
		return "wire.DecodeFPD"
	}
	panic("gencommand: unknown field type " + string(t))
}

func wireDataTypeConst(t gen.FieldType) string {
	switch t {
	case gen.Bool:
		return "wire.DataBool"
	case gen.Int8:
		return "wire.DataInt8"
	case gen.Int16:
		return "wire.DataInt16"
	case gen.Int32:
		return "wire.DataInt32"
	case gen.Int64:
		return "wire.DataInt64"
	case gen.String:
		return "wire.DataString"
	case gen.FPD:
		return "wire.DataFPD"
	}
	panic("gencommand: unknown field type " + string(t))
}

func wireCheckBoundsFunc(t gen.FieldType) string {
	switch t {
	case gen.Int8:
		return "wire.CheckBoundsInt8"
	case gen.Int16:
		return "wire.CheckBoundsInt16"
	case gen.Int32:
		return "wire.CheckBoundsInt32"
	case gen.FPD:
		return "wire.CheckBoundsFPD"
	}
	panic("gencommand: field type " + string(t) + " has no bounds-check function")
}

// naturalBounds returns the wire package's extremum constants for t, used
// when a Bounds entry leaves Lower or Upper blank.
func naturalBounds(t gen.FieldType) (lower, upper string) {
	switch t {
	case gen.Int8:
		return "wire.Int8Min", "wire.Int8Max"
	case gen.Int16:
		return "wire.Int16Min", "wire.Int16Max"
	case gen.Int32:
		return "wire.Int32Min", "wire.Int32Max"
	case gen.FPD:
		return "wire.FPDMin", "wire.FPDMax"
	}
	panic("gencommand: field type " + string(t) + " has no natural bounds")
}

func fieldWidth(t gen.FieldType) int {
	switch t {
	case gen.Bool, gen.Int8:
		return 1
	case gen.Int16, gen.FPD:
		return 2
	case gen.Int32:
		return 4
	case gen.Int64:
		return 8
	}
	panic("gencommand: field type " + string(t) + " has no fixed width")
}

// article returns "an" for a vowel-leading category name, "a" otherwise.
func article(name string) string {
	if strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}

// structName is the Go type name of a composite variant's payload struct.
func structName(v gen.Variant) string {
	if v.StructName != "" {
		return v.StructName
	}
	return v.Name + "Data"
}

func boundsLabel(cat gen.Category, v gen.Variant, field string) string {
	if field == "" {
		return fmt.Sprintf("%s.%s", cat.Name, v.Name)
	}
	return fmt.Sprintf("%s.%s.%s", cat.Name, v.Name, field)
}

// requiresBoundsArg reports whether any non-bespoke variant in cat
// declares Bounds, meaning Decode needs a boundsChecked parameter. It also
// enforces the refusal spec requires: bounds can't be paired with a Bool
// or String variant.
func requiresBoundsArg(cat gen.Category) bool {
	needs := false
	for _, v := range cat.Variants {
		if v.Bespoke || v.Bounds == nil {
			continue
		}
		if v.DataType == gen.Bool || v.DataType == gen.String {
			panic(fmt.Sprintf("gencommand: %s.%s: bounds declared on a %s variant", cat.Name, v.Name, v.DataType))
		}
		needs = true
	}
	return needs
}

// boundsCheckBlock emits the `if boundsChecked { ... }` block for a single
// scalar value named goVar of type t, using v's declared Bounds.
func boundsCheckBlock(cat gen.Category, v gen.Variant, field, goVar string, t gen.FieldType) string {
	lower, upper := v.Bounds.Lower, v.Bounds.Upper
	natLower, natUpper := naturalBounds(t)
	if lower == "" {
		lower = natLower
	}
	if upper == "" {
		upper = natUpper
	}
	return fmt.Sprintf(`if boundsChecked {
		if err := %s(%q, %s, %s, %s); err != nil {
			return nil, err
		}
	}
`, wireCheckBoundsFunc(t), boundsLabel(cat, v, field), goVar, lower, upper)
}

// scalarFunc emits the self-contained decode function for a single-field
// variant.
func scalarFunc(cat gen.Category, v gen.Variant) string {
	ft := v.Fields[0].Type
	sig := "data wire.CommandData"
	if v.Bounds != nil {
		sig += ", boundsChecked bool"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "func decode%s(%s) (Command, error) {\n", v.Name, sig)
	fmt.Fprintf(&b, "\tif err := wire.CheckDataType(data, %s); err != nil {\n\t\treturn nil, err\n\t}\n", wireDataTypeConst(ft))

	if ft == gen.Bool {
		if v.AllowToggle {
			b.WriteString("\top := wire.DecodeBoolOperationAllowToggle(data)\n")
		} else {
			b.WriteString("\top, err := wire.DecodeBoolOperation(data)\n\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		}
		b.WriteString("\tv, err := wire.DecodeBool(data.Payload(), data.Bytes())\n\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		fmt.Fprintf(&b, "\treturn %s{Operation: op, Data: v}, nil\n}", v.Name)
		return b.String()
	}

	fmt.Fprintf(&b, "\tv, err := %s(data.Payload(), data.Bytes())\n\tif err != nil {\n\t\treturn nil, err\n\t}\n", wireDecodeFunc(ft))
	if v.Bounds != nil {
		b.WriteString(boundsCheckBlock(cat, v, "", "v", ft))
	}
	fmt.Fprintf(&b, "\treturn %s{Operation: wire.DecodeNumericOperation(data.Operation()), Data: v}, nil\n}", v.Name)
	return b.String()
}

// compositeFunc emits the self-contained decode function for a
// multi-field variant, decoding each field from its byte offset in turn.
func compositeFunc(cat gen.Category, v gen.Variant) string {
	total := 0
	for _, f := range v.Fields {
		total += fieldWidth(f.Type)
	}
	sig := "data wire.CommandData"
	if v.Bounds != nil {
		sig += ", boundsChecked bool"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "func decode%s(%s) (Command, error) {\n", v.Name, sig)
	fmt.Fprintf(&b, "\tif err := wire.CheckDataType(data, %s); err != nil {\n\t\treturn nil, err\n\t}\n", wireDataTypeConst(v.Fields[0].Type))
	b.WriteString("\tp := data.Payload()\n")
	fmt.Fprintf(&b, "\tif len(p) < %d {\n\t\treturn nil, &wire.InvalidCommandDataError{Message: %q, RecordBytes: data.Bytes()}\n\t}\n",
		total, fmt.Sprintf("payload too short for %s", v.Name))

	goVars := make([]string, len(v.Fields))
	offset := 0
	for i, f := range v.Fields {
		w := fieldWidth(f.Type)
		goVar := strings.ToLower(f.Name[:1]) + f.Name[1:]
		goVars[i] = goVar
		fmt.Fprintf(&b, "\t%s, err := %s(p[%d:%d], data.Bytes())\n\tif err != nil {\n\t\treturn nil, err\n\t}\n",
			goVar, wireDecodeFunc(f.Type), offset, offset+w)
		offset += w
	}
	if v.Bounds != nil {
		for i, f := range v.Fields {
			b.WriteString(boundsCheckBlock(cat, v, f.Name, goVars[i], f.Type))
		}
	}

	b.WriteString("\treturn " + v.Name + "{\n")
	fmt.Fprintf(&b, "\t\tOperation: wire.DecodeNumericOperation(data.Operation()),\n")
	b.WriteString("\t\tData: " + structName(v) + "{\n")
	for i, f := range v.Fields {
		fmt.Fprintf(&b, "\t\t\t%s: %s,\n", f.Name, goVars[i])
	}
	b.WriteString("\t\t},\n\t}, nil\n}")
	return b.String()
}

func commaPrefix(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

func render(cat gen.Category) ([]byte, error) {
	needsBounds := requiresBoundsArg(cat)

	var b strings.Builder
	b.WriteString("// Code generated by cmd/gencommand from internal/gen/metadata.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", cat.Package)
	b.WriteString("import \"github.com/ekshore/eldritchwire/wire\"\n\n")

	fmt.Fprintf(&b, "// Parameter bytes for the %s category, as declared in\n// internal/gen/metadata.go.\nconst (\n", cat.Name)
	prev := -1
	for _, v := range cat.Variants {
		if prev >= 0 && int(v.Parameter)-prev > 1 {
			if int(v.Parameter)-prev == 2 {
				fmt.Fprintf(&b, "\t// %#02x is unused/unspecified for this category.\n", prev+1)
			} else {
				fmt.Fprintf(&b, "\t// %#02x-%#02x are unused/unspecified for this category.\n", prev+1, v.Parameter-1)
			}
		}
		fmt.Fprintf(&b, "\tparam%s = %#02x\n", v.Name, v.Parameter)
		prev = int(v.Parameter)
	}
	b.WriteString(")\n\n")

	sig := "data wire.CommandData"
	if needsBounds {
		sig += ", boundsChecked bool"
	}
	if cat.ExtraDecodeArg != "" {
		sig += ", " + cat.ExtraDecodeArg + " bool"
	}
	fmt.Fprintf(&b, "// Decode dispatches %s %s command body to its typed variant based on\n// the parameter byte.", article(cat.Name), cat.Name)
	if cat.ExtraDecodeArgDoc != "" {
		fmt.Fprintf(&b, " %s", cat.ExtraDecodeArgDoc)
	}
	fmt.Fprintf(&b, "\nfunc Decode(%s) (Command, error) {\n\tswitch data.Parameter() {\n", sig)
	for _, v := range cat.Variants {
		fmt.Fprintf(&b, "\tcase param%s:\n", v.Name)
		switch {
		case v.Bespoke:
			fmt.Fprintf(&b, "\t\t%s\n", strings.ReplaceAll(v.BespokeCase, "\n", "\n\t\t"))
		case v.DataType == "":
			fmt.Fprintf(&b, "\t\treturn %s{}, nil\n", v.Name)
		default:
			args := ""
			if v.Bounds != nil {
				args = "boundsChecked"
			}
			fmt.Fprintf(&b, "\t\treturn decode%s(data%s)\n", v.Name, commaPrefix(args))
		}
	}
	fmt.Fprintf(&b, "\tdefault:\n\t\treturn nil, &wire.InvalidCommandDataError{\n\t\t\tMessage:     %q,\n\t\t\tRecordBytes: data.Bytes(),\n\t\t}\n\t}\n}\n\n",
		fmt.Sprintf("unknown %s parameter", cat.Name))

	for _, v := range cat.Variants {
		switch {
		case v.Bespoke:
			b.WriteString(v.BespokeFunc)
			b.WriteString("\n\n")
		case v.DataType == "":
			// Action variants decode inline in the switch; no function.
		case len(v.Fields) == 1:
			b.WriteString(scalarFunc(cat, v))
			b.WriteString("\n\n")
		default:
			b.WriteString(compositeFunc(cat, v))
			b.WriteString("\n\n")
		}
	}

	return format.Source([]byte(b.String()))
}

func main() {
	flag.Parse()
	log := logging.New(logging.Info, os.Stderr, false)

	for _, cat := range gen.Categories {
		src, err := render(cat)
		if err != nil {
			log.Fatal("render category failed", "category", cat.Name, "error", err.Error())
		}
		dir := filepath.Join(*outDir, cat.Package)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("mkdir failed", "dir", dir, "error", err.Error())
		}
		path := filepath.Join(dir, "zz_generated.go")
		if err := os.WriteFile(path, src, 0o644); err != nil {
			log.Fatal("write failed", "path", path, "error", err.Error())
		}
		log.Info("wrote category decoder", "path", path, "variants", fmt.Sprint(len(cat.Variants)))
	}
}
