package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"schema-migrator/internal/legacy"
	"schema-migrator/internal/naming"
)

// Placeholder is written where the legacy module has nothing to say and a
// human has to fill the value in.
const Placeholder = "FIXME"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Namespace prefixes the project key ('<namespace>/<name>').
	Namespace string
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Namespace: "default",
		OutputDir: "converted",
	}
}

// Generator renders TypeScript modules.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated TypeScript source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "Oral_History.ts").
	Filename string
	// Content is the rendered source.
	Content []byte
}

// Filename returns the output file name for a project name.
func Filename(name string) string {
	return naming.FileIdent(name) + ".ts"
}

// Generate renders m as a TypeScript module.
func (g *Generator) Generate(m *legacy.Module) (*GeneratedFile, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, fmt.Errorf("generating module: project name is empty")
	}

	data := g.buildTemplateData(m)

	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedFile{
		Filename: Filename(m.Name),
		Content:  buf.Bytes(),
	}, nil
}

var moduleTemplate = template.Must(template.New("module").Funcs(template.FuncMap{
	"q": tsString,
}).Parse(moduleText + textFieldText + selectText))

const moduleText = `// Code generated by schema-migrator from a FAIMS 2 module. DO NOT EDIT.

import {ProjectUIModel} from './datamodel';

const example_ui_specs: {[key: string]: ProjectUIModel} = {
  {{q .ProjectKey}}: {
    fields: {
{{- range .Fields}}
{{if eq .Component "Select"}}{{template "Select" .}}{{else}}{{template "TextField" .}}{{end}}
{{- end}}
    },
    views: {
{{- range .Views}}
      {{q .ID}}: {
        label: {{q .Label}},
        fields: [{{range $i, $f := .Fields}}{{if $i}}, {{end}}{{q $f}}{{end}}],
        'next-view': {{q $.Placeholder}},
        'next-view-label': {{q $.Placeholder}},
      },
{{- end}}
    },
    viewsets: {
{{- range .Viewsets}}
      {{q .ID}}: {
        label: {{q .Label}},
        views: [{{range $i, $v := .Views}}{{if $i}}, {{end}}{{q $v}}{{end}}],
      },
{{- end}}
    },
    visible_types: [{{range $i, $v := .VisibleTypes}}{{if $i}}, {{end}}{{q $v}}{{end}}],
    start_view: {{q .StartView}},
  },
};

export default example_ui_specs;
`

// textFieldText renders a measure property.
const textFieldText = `{{define "TextField"}}      {{q .Ref}}: {
        'component-namespace': 'formik-material-ui',
        'component-name': 'TextField',
        'type-returned': 'faims-core::String',
        'component-parameters': {
          fullWidth: true,
          name: {{q .Ref}},
          id: {{q .Ref}},
          helperText: {{q .HelperText}},
          variant: 'outlined',
          required: true,
          InputProps: {
            type: 'string',
          },
          SelectProps: {},
          InputLabelProps: {
            label: {{q .Label}},
          },
          FormHelperTextProps: {},
        },
        validationSchema: [['yup.string']],
        initialValue: '',
      },{{end}}`

// selectText renders a vocab property.
const selectText = `{{define "Select"}}      {{q .Ref}}: {
        'component-namespace': 'formik-material-ui',
        'component-name': 'Select',
        'type-returned': 'faims-core::String',
        'component-parameters': {
          fullWidth: true,
          name: {{q .Ref}},
          id: {{q .Ref}},
          helperText: {{q .HelperText}},
          variant: 'outlined',
          required: true,
          select: true,
          InputProps: {
            type: 'string',
          },
          SelectProps: {
            options: [
{{- range .Options}}
              {
                value: {{q .Value}},
                label: {{q .Label}},
              },
{{- end}}
            ],
          },
          InputLabelProps: {
            label: {{q .Label}},
          },
          FormHelperTextProps: {},
        },
        validationSchema: [['yup.string']],
        initialValue: '',
      },{{end}}`
