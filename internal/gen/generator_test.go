package gen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/internal/legacy"
)

const tinyModule = `// Code generated by schema-migrator from a FAIMS 2 module. DO NOT EDIT.

import {ProjectUIModel} from './datamodel';

const example_ui_specs: {[key: string]: ProjectUIModel} = {
  'default/Tiny': {
    fields: {
      'A': {
        'component-namespace': 'formik-material-ui',
        'component-name': 'TextField',
        'type-returned': 'faims-core::String',
        'component-parameters': {
          fullWidth: true,
          name: 'A',
          id: 'A',
          helperText: 'it\'s',
          variant: 'outlined',
          required: true,
          InputProps: {
            type: 'string',
          },
          SelectProps: {},
          InputLabelProps: {
            label: '{A}',
          },
          FormHelperTextProps: {},
        },
        validationSchema: [['yup.string']],
        initialValue: '',
      },
    },
    views: {
      'G/T': {
        label: 'T',
        fields: ['A'],
        'next-view': 'FIXME',
        'next-view-label': 'FIXME',
      },
    },
    viewsets: {
      'G': {
        label: 'G',
        views: ['G/T'],
      },
    },
    visible_types: ['G'],
    start_view: 'G/T',
  },
};

export default example_ui_specs;
`

func TestGenerator_Generate_TextField(t *testing.T) {
	m := &legacy.Module{
		Name: "Tiny",
		Fields: []legacy.Field{
			{Ref: "A", Label: "{A}", Kind: legacy.FieldText, HelperText: "it's"},
		},
		Views:    []legacy.View{{ID: "G/T", Label: "T", Fields: []string{"A"}}},
		Viewsets: []legacy.Viewset{{ID: "G", Label: "G", Views: []string{"G/T"}}},
	}

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(m)
	require.NoError(t, err)

	assert.Equal(t, "Tiny.ts", file.Filename)

	if diff := cmp.Diff(tinyModule, string(file.Content)); diff != "" {
		t.Errorf("generated module mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerator_Generate_SelectOptionsInOrder(t *testing.T) {
	m := &legacy.Module{
		Name: "Things",
		Fields: []legacy.Field{{
			Ref:        "Colour",
			Label:      "{Colour}",
			Kind:       legacy.FieldSelect,
			HelperText: "{Colour}",
			Options:    []legacy.Option{{Value: "A", Label: "A"}, {Value: "B", Label: "B"}},
		}},
	}

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(m)
	require.NoError(t, err)

	code := string(file.Content)

	assert.Contains(t, code, "'component-name': 'Select',")
	assert.Contains(t, code, "select: true,")
	assert.Equal(t, 2, strings.Count(code, "value: "))

	a := strings.Index(code, "value: 'A',")
	b := strings.Index(code, "value: 'B',")
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, a, b)

	assert.Contains(t, code, "start_view: 'FIXME',")
	assert.Contains(t, code, "visible_types: [],")
}

func TestGenerator_Generate_Fixture(t *testing.T) {
	src, err := legacy.LoadDir("../legacy/testdata/oral_history", nil)
	require.NoError(t, err)

	m := legacy.Join(src.Data, src.UI, "Oral History")

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(m)
	require.NoError(t, err)

	code := string(file.Content)

	assert.Equal(t, "Oral_History.ts", file.Filename)
	assert.Contains(t, code, "'default/Oral History': {")
	assert.Equal(t, 1, strings.Count(code, "      'Interview_ID': {"), "shared field is defined once")
	assert.Contains(t, code, "helperText: 'interviewid desc',")
	assert.Contains(t, code, "fields: ['Interview_ID', 'Gender'],")
	assert.Contains(t, code, "visible_types: ['Interview', 'Participant', 'Control'],")
	assert.Contains(t, code, "start_view: 'Interview/Admin',")
	assert.NotContains(t, code, "Recording")
}

func TestGenerator_Generate_Namespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		want      string
	}{
		{name: "default namespace", namespace: "default", want: "  'default/Site': {"},
		{name: "custom namespace", namespace: "legacy", want: "  'legacy/Site': {"},
		{name: "no namespace", namespace: "", want: "  'Site': {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(GeneratorConfig{Namespace: tt.namespace})

			file, err := g.Generate(&legacy.Module{Name: "Site"})
			require.NoError(t, err)
			assert.Contains(t, string(file.Content), tt.want)
		})
	}
}

func TestGenerator_Generate_EmptyName(t *testing.T) {
	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(&legacy.Module{Name: "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name is empty")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Oral_History.ts", Filename("Oral History"))
	assert.Equal(t, "Site_Survey_2_.ts", Filename("Site Survey (2)"))
}

func TestTSString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: `''`},
		{in: "plain", want: `'plain'`},
		{in: "it's", want: `'it\'s'`},
		{in: `back\slash`, want: `'back\\slash'`},
		{in: "two\nlines", want: `'two\nlines'`},
		{in: "tab\there", want: `'tab\there'`},
		{in: "{Gender}", want: `'{Gender}'`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tsString(tt.in))
		})
	}
}
