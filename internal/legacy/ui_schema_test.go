package legacy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUISchema(t *testing.T) {
	ui, err := ParseUISchema(readFixture(t, UISchemaFile))
	require.NoError(t, err)

	assert.Equal(t, "Oral History", ui.Title)
	require.Len(t, ui.TabGroups, 3)

	interview := ui.TabGroups[0]
	assert.Equal(t, "Interview", interview.Ref)
	assert.Equal(t, "Interview", interview.Label)
	assert.Equal(t, "Interview", interview.Entity)
	require.Len(t, interview.Tabs, 2)

	admin := interview.Tabs[0]
	assert.Equal(t, "Admin", admin.Ref)

	wantControls := []Control{
		{Element: "input", Ref: "Interview_ID", Label: "{Interview_ID}", Attribute: "Interview ID"},
		{Element: "input", Ref: "Interview_location", Label: "{Interview_Location}", Attribute: "Interview location"},
		{Element: "input", Ref: "Weather", Label: "{Weather}", Attribute: "Weather"},
		{Element: "upload", Ref: "Recording", Label: "{Recording}", Attribute: "Recording"},
	}
	if diff := cmp.Diff(wantControls, admin.Controls); diff != "" {
		t.Errorf("controls mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, interview.Tabs[1].Controls)
	assert.Equal(t, "Participant Admin", ui.TabGroups[1].Tabs[0].Label)
	assert.Equal(t, "Nonexistent", ui.TabGroups[2].Entity)
}

func TestParseUISchema_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "malformed xml",
			input:   `<h:html xmlns:h="http://www.w3.org/1999/xhtml">`,
			wantErr: "failed to parse ui schema",
		},
		{
			name:    "root outside xhtml namespace",
			input:   `<html><body/></html>`,
			wantErr: "root element is html",
		},
		{
			name:    "missing body",
			input:   `<h:html xmlns:h="http://www.w3.org/1999/xhtml"><h:head/></h:html>`,
			wantErr: "no body element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUISchema([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseUISchema_IgnoresOtherNamespaces(t *testing.T) {
	input := `<h:html xmlns="http://www.w3.org/2002/xforms" xmlns:h="http://www.w3.org/1999/xhtml" xmlns:x="urn:other">
  <h:body>
    <x:group ref="Foreign"><label>Foreign</label></x:group>
    <group ref="Main" faims_archent_type="Thing">
      <label> Main </label>
      <group ref="Tab">
        <label>Tab</label>
        <x:input ref="Skipped" faims_attribute_name="Skipped"/>
        <select ref="Tags" faims_attribute_name="Tags"><label>Tags</label></select>
      </group>
    </group>
  </h:body>
</h:html>`

	ui, err := ParseUISchema([]byte(input))
	require.NoError(t, err)

	require.Len(t, ui.TabGroups, 1)
	assert.Equal(t, "Main", ui.TabGroups[0].Label)

	controls := ui.TabGroups[0].Tabs[0].Controls
	require.Len(t, controls, 1)
	assert.Equal(t, "select", controls[0].Element)
	assert.Equal(t, "Tags", controls[0].Attribute)
}
